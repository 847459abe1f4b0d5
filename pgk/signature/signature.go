package signature

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
)

// Sign - base64(sha512(body || secret)), подпись из заголовка X-Hook-Signature
func Sign(body []byte, secret string) string {
	h := sha512.New()
	h.Write(body)
	h.Write([]byte(secret))

	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Verify: пустое тело, подпись или секрет никогда не проходят проверку
func Verify(body []byte, signature, secret string) bool {
	if len(body) == 0 || signature == "" || secret == "" {
		return false
	}

	expected := Sign(body, secret)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
