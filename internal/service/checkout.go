package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/auth"
	"github.com/ibeloyar/loangateway/pgk/session"
	"github.com/shopspring/decimal"
)

type links struct {
	base string
}

func (l links) checkout() string {
	return l.base + "/checkout"
}

// payment - страница оплаты заказа; confirm=true показывает виджет кредитора
func (l links) payment(orderID int64, confirm bool) string {
	url := fmt.Sprintf("%s/checkout/order-pay/%d", l.base, orderID)
	if confirm {
		url += "?confirm=true"
	}
	return url
}

func (l links) orderReceived(orderID int64) string {
	return fmt.Sprintf("%s/checkout/order-received/%d", l.base, orderID)
}

func (l links) webhook() string {
	return l.base + "/wc-api/" + model.GatewayID
}

func (s *Service) notify(ctx context.Context, message string) {
	err := s.sessions.AddNotice(ctx, session.FromContext(ctx), model.Notice{
		Message: message,
		Level:   model.NoticeLevelError,
	})
	if err != nil {
		s.lg.Errorf("add notice error: %v", err)
	}
}

// Checkout создает заказ у кредитора и переводит локальный заказ в ожидание одобрения займа.
func (s *Service) Checkout(ctx context.Context, orderID int64) (*model.PaymentResult, *model.APIError) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return nil, apiErr
	}

	// покупатель видит только ответ кредитора, ошибки транспорта и разбора уходят в лог
	failure := func(notice string, cause error) (*model.PaymentResult, *model.APIError) {
		s.lg.Errorf("checkout order %d failed: %v", orderID, cause)
		s.notify(ctx, notice)

		return &model.PaymentResult{
			Result:   model.ResultFailure,
			Redirect: s.links.payment(orderID, false),
		}, nil
	}

	resp := s.remote.Create(ctx, *order)
	if resp.IsError() {
		message, err := resp.ErrorMessage()
		switch {
		case resp.IsTransportError():
			return failure(model.NoticeLenderUnavailable, errors.New(message))
		case err != nil:
			return failure(model.NoticeLenderUnavailable, err)
		}
		return failure(message, errors.New(message))
	}

	token, err := resp.OrderToken()
	if err != nil {
		return failure(model.NoticeLenderUnavailable, err)
	}

	if err := s.storage.SetMeta(ctx, orderID, model.MetaOrderToken, token); err != nil {
		s.lg.Errorf("save order token for order %d error: %v", orderID, err)
		return nil, internalError()
	}
	order.SetMeta(model.MetaOrderToken, token)

	if err := s.transition(ctx, order, model.OrderStatusPending, model.NoteAwaitingApproval); err != nil {
		s.lg.Errorf("set order %d pending error: %v", orderID, err)
		return nil, internalError()
	}

	return &model.PaymentResult{
		Result:   model.ResultSuccess,
		Redirect: s.links.payment(orderID, true),
	}, nil
}

// DisableGateway скрывает шлюз для текущего покупателя
func (s *Service) DisableGateway(ctx context.Context) error {
	return s.sessions.DisableGateway(ctx, session.FromContext(ctx))
}

func (s *Service) newNonce(order *model.Order) (string, error) {
	return auth.GenerateToken(model.NonceInfo{OrderID: order.ID}, s.nonceLifetime, s.secretKey+order.GetMeta(model.MetaOrderToken))
}

// verifyNonce проверяет, что nonce выдан для этого заказа и его order token
func (s *Service) verifyNonce(order *model.Order, nonce string) bool {
	token := order.GetMeta(model.MetaOrderToken)
	if token == "" || nonce == "" {
		return false
	}

	info, err := auth.VerifyToken[model.NonceInfo](nonce, s.secretKey+token)
	if err != nil {
		return false
	}

	return info.OrderID == order.ID
}

// PayPage - данные для страницы оплаты с виджетом кредитора
func (s *Service) PayPage(ctx context.Context, orderID int64) (*model.PayPage, *model.APIError) {
	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return nil, apiErr
	}

	status := order.GetMeta(model.MetaLoanStatus)
	if status != "" && !model.ClassifyLoanStatus(status).IsCancelled() {
		s.notify(ctx, model.NoticeAlreadyPaid)
		return &model.PayPage{Redirect: s.links.checkout()}, nil
	}

	if order.GetMeta(model.MetaOrderToken) == "" {
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrOrderNotCheckedOutMessage,
		}
	}

	nonce, err := s.newNonce(order)
	if err != nil {
		s.lg.Errorf("nonce for order %d error: %v", orderID, err)
		return nil, internalError()
	}

	return &model.PayPage{
		OrderID:    orderID,
		ScriptURL:  s.scriptURL,
		OrderToken: order.GetMeta(model.MetaOrderToken),
		Nonce:      nonce,
		FormAction: s.links.webhook(),
	}, nil
}

// AvailableGateway возвращает nil, если шлюз нельзя предложить для этой суммы или покупателя.
func (s *Service) AvailableGateway(ctx context.Context, total decimal.Decimal) (*model.Gateway, *model.APIError) {
	if !s.settings.Enabled || s.settings.NeedsSetup() {
		return nil, nil
	}

	if total.LessThan(s.settings.MinTotal) || total.GreaterThan(s.settings.MaxTotal) {
		return nil, nil
	}

	disabled, err := s.sessions.IsGatewayDisabled(ctx, session.FromContext(ctx))
	if err != nil {
		s.lg.Errorf("gateway disabled flag error: %v", err)
		return nil, internalError()
	}
	if disabled {
		return nil, nil
	}

	return &model.Gateway{
		ID:          model.GatewayID,
		Title:       s.settings.Title,
		Description: s.settings.Description,
		CanRefund:   false,
	}, nil
}

func (s *Service) PopNotices(ctx context.Context) ([]model.Notice, *model.APIError) {
	notices, err := s.sessions.PopNotices(ctx, session.FromContext(ctx))
	if err != nil {
		s.lg.Errorf("pop notices error: %v", err)
		return nil, internalError()
	}

	return notices, nil
}
