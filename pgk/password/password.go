package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt обрезает ввод длиннее 72 байт
const MaxLen = 72

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password too long, max 72 bytes")
	ErrPasswordGenerate = errors.New("password generate error")
)

func HashPassword(password string, passCost int) (string, error) {
	if len(password) < 1 {
		return "", ErrPasswordRequired
	}
	if len(password) > MaxLen {
		return "", ErrPasswordTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passCost)
	if err != nil {
		return "", ErrPasswordGenerate
	}

	return string(bytes), nil
}

// CheckPasswordHash - пустой хеш никогда не совпадает (вход администратора выключен)
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
