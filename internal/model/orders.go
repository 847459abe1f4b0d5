package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GatewayID - идентификатор платежного метода, которым оплачиваются заказы в кредит
const GatewayID = "lendingworks"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOnHold, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed:
		return true
	}

	return false
}

// ключи метаданных заказа, которыми владеет шлюз
const (
	MetaOrderToken           = "lendingworks_order_token"
	MetaLoanStatus           = "lendingworks_order_status"
	MetaLoanRequestReference = "lendingworks_order_loan_request_reference"
	MetaFulfilled            = "lendingworks_order_fulfilled"

	FulfilledSentinel = "fulfilled"
)

type LineItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID             int64             `json:"id"`
	Status         OrderStatus       `json:"status"`
	Total          decimal.Decimal   `json:"total"`
	ShippingTotal  decimal.Decimal   `json:"shipping_total"`
	ShippingMethod string            `json:"shipping_method"`
	DiscountTotal  decimal.Decimal   `json:"discount_total"`
	TotalRefunded  decimal.Decimal   `json:"total_refunded"`
	PaymentMethod  string            `json:"payment_method"`
	Items          []LineItem        `json:"items"`
	Meta           map[string]string `json:"-"`
	CreatedAt      time.Time         `json:"created_at"`
}

// GetMeta - для отсутствующего ключа пустая строка
func (o *Order) GetMeta(key string) string {
	if o.Meta == nil {
		return ""
	}

	return o.Meta[key]
}

func (o *Order) SetMeta(key, value string) {
	if o.Meta == nil {
		o.Meta = make(map[string]string)
	}

	o.Meta[key] = value
}

func (o *Order) IsFulfilled() bool {
	return o.GetMeta(MetaFulfilled) == FulfilledSentinel
}

func (o *Order) IsPaidWithGateway() bool {
	return o.PaymentMethod == GatewayID
}

type CreateOrderDTO struct {
	Total          decimal.Decimal `json:"total"`
	ShippingTotal  decimal.Decimal `json:"shipping_total"`
	ShippingMethod string          `json:"shipping_method"`
	DiscountTotal  decimal.Decimal `json:"discount_total"`
	PaymentMethod  string          `json:"payment_method"`
	Items          []LineItem      `json:"items"`
}

type SetOrderStatusDTO struct {
	Status OrderStatus `json:"status"`
	Note   string      `json:"note"`
}

type OrderNote struct {
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderDetails - заказ вместе с состоянием займа для админки
type OrderDetails struct {
	Order
	LoanStatus           string      `json:"loan_status"`
	LoanRequestReference string      `json:"loan_request_reference"`
	Fulfilled            bool        `json:"fulfilled"`
	Notes                []OrderNote `json:"notes"`
}
