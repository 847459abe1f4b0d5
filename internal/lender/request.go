package lender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/shopspring/decimal"
)

const (
	SandboxURL    = "https://retail-sandbox.lendingworks.co.uk/api/v2/"
	ProductionURL = "https://www.lendingworks.co.uk/api/v2/"

	SandboxCheckoutScript    = "https://retail-sandbox.secure.lendingworks.co.uk/checkout.js"
	ProductionCheckoutScript = "https://secure.lendingworks.co.uk/checkout.js"

	createOrderPath = "orders"
	fulfillPath     = "loan-requests/fulfill"
)

func BaseURL(testMode bool) string {
	if testMode {
		return SandboxURL
	}
	return ProductionURL
}

func CheckoutScriptURL(testMode bool) string {
	if testMode {
		return SandboxCheckoutScript
	}
	return ProductionCheckoutScript
}

// Amount кодируется как число JSON, без кавычек
type Amount decimal.Decimal

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*a = Amount(d)
	return nil
}

type Product struct {
	Cost        Amount `json:"cost"`
	Quantity    int64  `json:"quantity"`
	Description string `json:"description"`
}

type CreateOrderPayload struct {
	Amount   Amount    `json:"amount"`
	Products []Product `json:"products"`
}

type FulfillPayload struct {
	Reference string `json:"reference"`
}

// Client собирает запросы к retail API кредитора. Базовый URL должен
// заканчиваться слешем.
type Client struct {
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (c *Client) Headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "RetailApiKey "+c.apiKey)

	return h
}

func (c *Client) CreateOrderURL() string {
	return c.baseURL + createOrderPath
}

func (c *Client) FulfillURL() string {
	return c.baseURL + fulfillPath
}

// BuildCreateOrderPayload раскладывает позиции по цене за единицу, добавляет
// доставку и, если скидка положительная, строку скидки с минусом.
func BuildCreateOrderPayload(order model.Order) CreateOrderPayload {
	products := make([]Product, 0, len(order.Items)+2)

	for _, item := range order.Items {
		cost := item.Subtotal
		if item.Quantity > 0 {
			cost = item.Subtotal.Div(decimal.NewFromInt(item.Quantity))
		}

		products = append(products, Product{
			Cost:        Amount(cost),
			Quantity:    item.Quantity,
			Description: item.Name,
		})
	}

	products = append(products, Product{
		Cost:        Amount(order.ShippingTotal),
		Quantity:    1,
		Description: "Shipping: " + order.ShippingMethod,
	})

	if order.DiscountTotal.IsPositive() {
		products = append(products, Product{
			Cost:        Amount(order.DiscountTotal.Neg()),
			Quantity:    1,
			Description: "Discount",
		})
	}

	return CreateOrderPayload{
		Amount:   Amount(order.Total),
		Products: products,
	}
}

func (c *Client) CreateOrderBody(order model.Order) ([]byte, error) {
	body, err := json.Marshal(BuildCreateOrderPayload(order))
	if err != nil {
		return nil, fmt.Errorf("encode create order payload: %w", err)
	}

	return body, nil
}

func (c *Client) FulfillBody(order model.Order) ([]byte, error) {
	body, err := json.Marshal(FulfillPayload{
		Reference: order.GetMeta(model.MetaLoanRequestReference),
	})
	if err != nil {
		return nil, fmt.Errorf("encode fulfill payload: %w", err)
	}

	return body, nil
}

func (c *Client) NewCreateOrderRequest(ctx context.Context, order model.Order) (*http.Request, error) {
	body, err := c.CreateOrderBody(order)
	if err != nil {
		return nil, err
	}

	return c.newPostRequest(ctx, c.CreateOrderURL(), body)
}

func (c *Client) NewFulfillRequest(ctx context.Context, order model.Order) (*http.Request, error) {
	body, err := c.FulfillBody(order)
	if err != nil {
		return nil, err
	}

	return c.newPostRequest(ctx, c.FulfillURL(), body)
}

func (c *Client) newPostRequest(ctx context.Context, url string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header = c.Headers()

	return req, nil
}
