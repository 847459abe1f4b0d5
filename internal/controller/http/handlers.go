package http

import (
	"net/http"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/shopspring/decimal"
)

const SignatureHeader = "X-Hook-Signature"

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Ping(r.Context()); err != nil {
		c.lg.Errorf("ping error: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// UpdateStatus - подписанный callback кредитора о смене статуса заявки
func (c *Controller) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeMessage(w, c.lg, model.ErrMissingAuthOrPayloadMessage, http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.Callback(r.Context(), model.CallbackInput{
		Signature: r.Header.Get(SignatureHeader),
		JSON:      form.Get("json"),
	})
	if apiErr != nil {
		writeMessage(w, c.lg, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

// Webhook - форма, которую виджет кредитора отправляет из браузера покупателя
func (c *Controller) Webhook(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		form = nil
	}

	result, apiErr := c.service.Webhook(r.Context(), model.WebhookInput{
		OrderID:   form.Get("order_id"),
		Reference: form.Get("reference"),
		Status:    form.Get("status"),
		Nonce:     form.Get("nonce"),
	})
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	http.Redirect(w, r, result.Redirect, http.StatusSeeOther)
}

func (c *Controller) Checkout(w http.ResponseWriter, r *http.Request) {
	orderID, apiErr := orderIDParam(r)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	result, apiErr := c.service.Checkout(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, result, http.StatusOK)
}

func (c *Controller) PayPage(w http.ResponseWriter, r *http.Request) {
	orderID, apiErr := orderIDParam(r)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	page, apiErr := c.service.PayPage(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	if page.Redirect != "" {
		http.Redirect(w, r, page.Redirect, http.StatusSeeOther)
		return
	}

	writeJSON(w, c.lg, page, http.StatusOK)
}

func (c *Controller) Gateways(w http.ResponseWriter, r *http.Request) {
	total, err := decimal.NewFromString(r.URL.Query().Get("total"))
	if err != nil {
		http.Error(w, "invalid order total", http.StatusBadRequest)
		return
	}

	gateway, apiErr := c.service.AvailableGateway(r.Context(), total)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	if gateway == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, c.lg, gateway, http.StatusOK)
}

func (c *Controller) Notices(w http.ResponseWriter, r *http.Request) {
	notices, apiErr := c.service.PopNotices(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	if notices == nil {
		notices = []model.Notice{}
	}

	writeJSON(w, c.lg, notices, http.StatusOK)
}
