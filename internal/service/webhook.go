package service

import (
	"context"
	"net/http"

	"github.com/ibeloyar/loangateway/internal/metrics"
	"github.com/ibeloyar/loangateway/internal/model"
)

// Webhook обрабатывает форму, которую виджет кредитора отправляет из браузера
// покупателя. Результат всегда содержит адрес для редиректа. Пустой reference
// допустим: виджет присылает поле, даже если заявка еще не создана.
func (s *Service) Webhook(ctx context.Context, in model.WebhookInput) (*model.PaymentResult, *model.APIError) {
	toCheckout := &model.PaymentResult{
		Result:   model.ResultFailure,
		Redirect: s.links.checkout(),
	}

	if in.OrderID == "" || in.Status == "" || in.Nonce == "" {
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceWebhook, "missing_input").Inc()
		s.notify(ctx, model.NoticeLoanApplicationProblem)
		return toCheckout, nil
	}

	reference := sanitize(in.Reference)
	status := sanitize(in.Status)
	nonce := sanitize(in.Nonce)

	orderID, apiErr := ParseOrderID(sanitize(in.OrderID))
	if apiErr != nil {
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceWebhook, metrics.OutcomeUnknownOrder).Inc()
		return toCheckout, nil
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		if apiErr.Code != http.StatusNotFound {
			return nil, apiErr
		}
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceWebhook, metrics.OutcomeUnknownOrder).Inc()
		return toCheckout, nil
	}

	if !s.verifyNonce(order, nonce) {
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceWebhook, metrics.OutcomeInvalidNonce).Inc()
		return toCheckout, nil
	}

	outcome := model.ClassifyLoanStatus(status)
	if !outcome.IsValid() {
		s.lg.Warnf("webhook for order %d: invalid loan status %q", orderID, status)
		metrics.CallbacksTotal.WithLabelValues(metrics.SourceWebhook, "invalid_status").Inc()
		s.notify(ctx, model.NoticeStatusInvalid)
		return toCheckout, nil
	}

	if err := s.storage.SetMeta(ctx, orderID, model.MetaLoanStatus, status); err != nil {
		s.lg.Errorf("save loan status for order %d error: %v", orderID, err)
		return nil, internalError()
	}
	order.SetMeta(model.MetaLoanStatus, status)

	if reference != "" {
		if err := s.storage.SetMeta(ctx, orderID, model.MetaLoanRequestReference, reference); err != nil {
			s.lg.Errorf("save loan reference for order %d error: %v", orderID, err)
			return nil, internalError()
		}
		order.SetMeta(model.MetaLoanRequestReference, reference)
	}

	metrics.CallbacksTotal.WithLabelValues(metrics.SourceWebhook, outcome.String()).Inc()

	var err error
	switch {
	case outcome.IsAccepted():
		if err = s.paymentComplete(ctx, order); err == nil {
			return &model.PaymentResult{
				Result:   model.ResultSuccess,
				Redirect: s.links.orderReceived(orderID),
			}, nil
		}
	case outcome.IsCancelled():
		if err = s.transition(ctx, order, model.OrderStatusPending, model.NoteLoanCancelled); err == nil {
			s.notify(ctx, model.NoticeLoanCancelled)
		}
	case outcome.IsDeclined():
		if err = s.transition(ctx, order, model.OrderStatusFailed, model.NoteLoanDeclined); err == nil {
			s.notify(ctx, model.NoticeLoanDeclined)
		}
	}
	if err != nil {
		s.lg.Errorf("webhook transition for order %d error: %v", orderID, err)
		return nil, internalError()
	}

	return toCheckout, nil
}

// paymentComplete отмечает заказ оплаченным. Уже оплаченный заказ не трогаем.
func (s *Service) paymentComplete(ctx context.Context, order *model.Order) error {
	switch order.Status {
	case model.OrderStatusProcessing, model.OrderStatusCompleted:
		return nil
	}

	return s.transition(ctx, order, model.OrderStatusProcessing, model.NotePaymentComplete)
}
