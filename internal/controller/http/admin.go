package http

import (
	"net/http"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/internal/service"
)

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	bearerToken, apiErr := c.service.Login(body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

// FulfillOrder - кнопка ручного fulfill в карточке заказа
func (c *Controller) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeJSON(w, c.lg, model.AjaxResponse{Data: model.ErrOrderIDRequiredMessage}, http.StatusBadRequest)
		return
	}

	orderID, apiErr := service.ParseOrderID(form.Get("order_id"))
	if apiErr != nil {
		writeJSON(w, c.lg, model.AjaxResponse{Data: apiErr.Message}, apiErr.Code)
		return
	}

	message, apiErr := c.service.ManualFulfill(r.Context(), orderID)
	if apiErr != nil {
		writeJSON(w, c.lg, model.AjaxResponse{Data: apiErr.Message}, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, model.AjaxResponse{Success: true, Data: message}, http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, apiErr := c.service.CreateOrder(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, model.CreateOrderResponse{ID: id}, http.StatusCreated)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, apiErr := orderIDParam(r)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	order, apiErr := c.service.GetOrder(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) FulfillOption(w http.ResponseWriter, r *http.Request) {
	orderID, apiErr := orderIDParam(r)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	option, apiErr := c.service.FulfillOption(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, option, http.StatusOK)
}

func (c *Controller) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, apiErr := orderIDParam(r)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	body, err := readBody[model.SetOrderStatusDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.SetOrderStatus(r.Context(), orderID, body); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) ValidateSettings(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.GatewaySettings](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	writeJSON(w, c.lg, c.service.ValidateSettings(body), http.StatusOK)
}
