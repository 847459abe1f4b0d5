package model

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type PaymentResult struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CallbackPayload - тело серверного callback'а от кредитора
type CallbackPayload struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type CallbackInput struct {
	Signature string
	JSON      string
}

// WebhookInput - поля формы, которую отправляет виджет после заполнения заявки
type WebhookInput struct {
	OrderID   string
	Reference string
	Status    string
	Nonce     string
}

type NonceInfo struct {
	OrderID int64 `json:"order_id"`
}

type PayPage struct {
	OrderID    int64  `json:"order_id,omitempty"`
	ScriptURL  string `json:"script_url,omitempty"`
	OrderToken string `json:"order_token,omitempty"`
	Nonce      string `json:"nonce,omitempty"`
	FormAction string `json:"form_action,omitempty"`
	Redirect   string `json:"redirect,omitempty"`
}

type Gateway struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CanRefund   bool   `json:"can_refund"`
}

type Notice struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}

const NoticeLevelError = "error"

type FulfillOption struct {
	OrderID   int64  `json:"order_id"`
	Reference string `json:"reference"`
	Visible   bool   `json:"visible"`
	Disabled  bool   `json:"disabled"`
}
