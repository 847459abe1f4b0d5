package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ibeloyar/loangateway/internal/metrics"
	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/signature"
)

// applyLoanStatus - общая часть callback'а: записать статус займа
// и перевести заказ по результату классификации.
func (s *Service) applyLoanStatus(ctx context.Context, order *model.Order, status string) error {
	if err := s.storage.SetMeta(ctx, order.ID, model.MetaLoanStatus, status); err != nil {
		return err
	}
	order.SetMeta(model.MetaLoanStatus, status)

	switch outcome := model.ClassifyLoanStatus(status); {
	case outcome.IsAccepted():
		return s.transition(ctx, order, model.OrderStatusProcessing, model.NoteLoanAccepted)
	case outcome.IsCancelled():
		return s.transition(ctx, order, model.OrderStatusPending, model.NoteLoanCancelled)
	case outcome.IsDeclined():
		return s.transition(ctx, order, model.OrderStatusFailed, model.NoteLoanDeclined)
	}

	s.lg.Warnf("order %d: invalid loan status %q recorded without transition", order.ID, status)
	return nil
}

// Callback обрабатывает подписанное уведомление кредитора о смене статуса заявки.
func (s *Service) Callback(ctx context.Context, in model.CallbackInput) (*model.MessageResponse, *model.APIError) {
	if in.Signature == "" || in.JSON == "" {
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceCallback, "missing_input").Inc()
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrMissingAuthOrPayloadMessage,
		}
	}

	sig := sanitize(in.Signature)
	payload := sanitize(in.JSON)

	if !signature.Verify([]byte(payload), sig, s.settings.APIKey) {
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceCallback, "invalid_signature").Inc()
		return nil, &model.APIError{
			Code:    http.StatusForbidden,
			Message: model.ErrInvalidCredentialsMessage,
		}
	}

	var body model.CallbackPayload
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		s.lg.Errorf("callback payload decode error: %v", err)
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceCallback, "malformed").Inc()
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrMalformedPayloadMessage,
		}
	}

	var orders []model.Order
	if body.Reference != "" {
		var err error
		orders, err = s.storage.GetOrdersByMeta(ctx, model.MetaLoanRequestReference, body.Reference)
		if err != nil {
			s.lg.Errorf("find order by reference %s error: %v", body.Reference, err)
			return nil, internalError()
		}
	}

	if len(orders) == 0 {
		s.lg.Infof("callback for unknown loan request reference %q", body.Reference)
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceCallback, "no_order").Inc()
		return &model.MessageResponse{Message: model.NoOrderFoundMessage}, nil
	}

	orderID := orders[0].ID
	unlock := s.locks.Lock(orderID)
	defer unlock()

	// перечитываем под блокировкой, чтобы переход шел от актуального статуса
	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := s.applyLoanStatus(ctx, order, body.Status); err != nil {
		s.lg.Errorf("apply loan status to order %d error: %v", orderID, err)
		return nil, internalError()
	}

	metrics.CallbacksTotal.WithLabelValues(metrics.SourceCallback, "updated").Inc()

	return &model.MessageResponse{
		Message: fmt.Sprintf("Order status for loan request reference %s updated", body.Reference),
	}, nil
}
