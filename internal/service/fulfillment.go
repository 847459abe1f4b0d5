package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ibeloyar/loangateway/internal/metrics"
	"github.com/ibeloyar/loangateway/internal/model"
)

// FulfillOrder сообщает кредитору об отгрузке. Успех и ответ "заявка уже
// исполнена" одинаково ставят флаг fulfilled. Параллельные вызовы для одного
// заказа делят один запрос к кредитору.
func (s *Service) FulfillOrder(ctx context.Context, order *model.Order) error {
	key := strconv.FormatInt(order.ID, 10)

	_, err, _ := s.fulfill.Do(key, func() (any, error) {
		err := s.remote.Fulfill(ctx, *order).Err()
		if err != nil && !errors.Is(err, model.ErrAlreadyFulfilled) {
			metrics.FulfillmentsTotal.WithLabelValues("failed").Inc()
			return nil, err
		}

		if errors.Is(err, model.ErrAlreadyFulfilled) {
			s.lg.Infof("loan request for order %d is already fulfilled", order.ID)
			metrics.FulfillmentsTotal.WithLabelValues("already_fulfilled").Inc()
		} else {
			metrics.FulfillmentsTotal.WithLabelValues("fulfilled").Inc()
		}

		if err := s.storage.SetMeta(ctx, order.ID, model.MetaFulfilled, model.FulfilledSentinel); err != nil {
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		return err
	}

	order.SetMeta(model.MetaFulfilled, model.FulfilledSentinel)
	return nil
}

// ManualFulfill - действие оператора из админки
func (s *Service) ManualFulfill(ctx context.Context, orderID int64) (string, *model.APIError) {
	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return "", apiErr
	}

	if err := s.FulfillOrder(ctx, order); err != nil {
		s.lg.Errorf("fulfill order %d error: %v", orderID, err)
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return model.OrderFulfilledMessage, nil
}

// CompleteOrder - автоматический fulfill при завершении заказа. Пропускается,
// если магазин выбрал ручной fulfill или заказ уже исполнен.
func (s *Service) CompleteOrder(ctx context.Context, order *model.Order) error {
	if s.settings.ManualFulfillment || order.IsFulfilled() {
		return nil
	}

	return s.FulfillOrder(ctx, order)
}

// FulfillOption - видимость и доступность кнопки fulfill в админке
func (s *Service) FulfillOption(ctx context.Context, orderID int64) (*model.FulfillOption, *model.APIError) {
	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return nil, apiErr
	}

	return &model.FulfillOption{
		OrderID:   orderID,
		Reference: order.GetMeta(model.MetaLoanRequestReference),
		Visible: s.settings.ManualFulfillment &&
			order.IsPaidWithGateway() &&
			order.TotalRefunded.IsZero(),
		Disabled: order.Status != model.OrderStatusProcessing || order.IsFulfilled(),
	}, nil
}
