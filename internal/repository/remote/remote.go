package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/ibeloyar/loangateway/internal/lender"
	"github.com/ibeloyar/loangateway/internal/metrics"
	"github.com/ibeloyar/loangateway/internal/model"
)

const (
	operationCreate  = "create_order"
	operationFulfill = "fulfill"
)

type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Repository отправляет заказы кредитору. Ошибки HTTP и транспорта не
// возвращаются как error: они упакованы в ответ, который решает вызывающий.
type Repository struct {
	client *lender.Client
	http   HTTPDoer
}

func New(client *lender.Client, doer HTTPDoer) *Repository {
	return &Repository{
		client: client,
		http:   doer,
	}
}

func (r *Repository) Create(ctx context.Context, order model.Order) *lender.CreateResponse {
	req, err := r.client.NewCreateOrderRequest(ctx, order)
	if err != nil {
		return lender.NewCreateResponse(nil, err)
	}

	resp, err := r.do(ctx, operationCreate, req)
	result := lender.NewCreateResponse(resp, err)
	metrics.LenderRequestsTotal.WithLabelValues(operationCreate, result.Outcome()).Inc()

	return result
}

func (r *Repository) Fulfill(ctx context.Context, order model.Order) *lender.FulfillResponse {
	req, err := r.client.NewFulfillRequest(ctx, order)
	if err != nil {
		return lender.NewFulfillResponse(nil, err)
	}

	resp, err := r.do(ctx, operationFulfill, req)
	result := lender.NewFulfillResponse(resp, err)
	metrics.LenderRequestsTotal.WithLabelValues(operationFulfill, result.Outcome()).Inc()

	return result
}

func (r *Repository) do(ctx context.Context, operation string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	defer func() {
		metrics.LenderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	return r.http.Do(ctx, req)
}
