package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/password"
)

const (
	minLoginLen = 3
	maxLoginLen = 64
)

var (
	errItemsRequired  = errors.New("order must contain at least one item")
	errInvalidItem    = errors.New("order item must have a name and a non-negative quantity and subtotal")
	errInvalidAmounts = errors.New("order amounts must not be negative")
)

func validateLoginDTO(input model.LoginDTO) error {
	if len(input.Login) < minLoginLen || len(input.Login) > maxLoginLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	if input.Password == "" || len(input.Password) > password.MaxLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validateCreateOrderDTO(input model.CreateOrderDTO) error {
	if len(input.Items) == 0 {
		return errItemsRequired
	}

	for _, item := range input.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity < 0 || item.Subtotal.IsNegative() {
			return errInvalidItem
		}
	}

	if input.Total.IsNegative() || input.ShippingTotal.IsNegative() || input.DiscountTotal.IsNegative() {
		return errInvalidAmounts
	}

	return nil
}

// sanitize - входные поля от браузера и кредитора: обрезаем пробелы
// и выбрасываем невалидный UTF-8.
func sanitize(value string) string {
	value = strings.TrimSpace(value)
	if !utf8.ValidString(value) {
		value = strings.ToValidUTF8(value, "")
	}

	return value
}
