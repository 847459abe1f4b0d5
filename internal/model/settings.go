package model

import "github.com/shopspring/decimal"

const (
	ErrMinTotalMessage = "Minimum order total must be greater or equal to 50"
	ErrMaxTotalMessage = "Maximum order total must be lower or equal to 25,000"
)

var (
	MinOrderTotalFloor   = decimal.NewFromInt(50)
	MaxOrderTotalCeiling = decimal.NewFromInt(25000)
)

type GatewaySettings struct {
	Enabled           bool            `json:"enabled"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	APIKey            string          `json:"api_key,omitempty"`
	TestMode          bool            `json:"test_mode"`
	ManualFulfillment bool            `json:"manual_fulfillment"`
	MinTotal          decimal.Decimal `json:"min_total"`
	MaxTotal          decimal.Decimal `json:"max_total"`
}

type SettingsValidation struct {
	Settings GatewaySettings `json:"settings"`
	Errors   []string        `json:"errors"`
}

// Validate приводит границы суммы заказа к диапазону, который финансирует
// кредитор, и сообщает о каждом исправленном поле
func (s GatewaySettings) Validate() SettingsValidation {
	result := SettingsValidation{
		Settings: s,
		Errors:   make([]string, 0),
	}

	if s.MaxTotal.GreaterThan(MaxOrderTotalCeiling) {
		result.Settings.MaxTotal = MaxOrderTotalCeiling
		result.Errors = append(result.Errors, ErrMaxTotalMessage)
	}

	if s.MinTotal.LessThan(MinOrderTotalFloor) {
		result.Settings.MinTotal = MinOrderTotalFloor
		result.Errors = append(result.Errors, ErrMinTotalMessage)
	}

	return result
}

// NeedsSetup - шлюз не настроен, пока не указан API ключ
func (s GatewaySettings) NeedsSetup() bool {
	return s.APIKey == ""
}
