package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loangateway_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loangateway_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LenderRequestsTotal - исход: ok, transport_error, rejected
	LenderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loangateway_lender_requests_total",
		Help: "Requests sent to the lender API",
	}, []string{"operation", "outcome"})

	LenderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loangateway_lender_request_duration_seconds",
		Help:    "Lender API latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	CallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loangateway_callbacks_total",
		Help: "Inbound lender notifications by source and result",
	}, []string{"source", "result"})

	FulfillmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loangateway_fulfillments_total",
		Help: "Loan fulfillment attempts by result",
	}, []string{"result"})
)

const (
	SourceCallback = "callback"
	SourceWebhook  = "webhook"
)

// результаты входящих уведомлений, не связанные со статусом займа
const (
	OutcomeInvalidNonce = "invalid_nonce"
	OutcomeUnknownOrder = "unknown_order"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware считает запросы по шаблону маршрута chi, а не по сырому URI,
// чтобы id заказов не раздували кардинальность.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
