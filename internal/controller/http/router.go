package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/auth"
	"github.com/ibeloyar/loangateway/pgk/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	// SecretKey подписывает bearer токены администратора
	SecretKey string
	// InboundLimiter ограничивает запросы кредитора и виджета по IP; nil - без ограничений
	InboundLimiter func(http.Handler) http.Handler
	SecureCookies  bool
}

func InitRoutes(r *chi.Mux, c *Controller, opts RouterOptions) *chi.Mux {
	limit := opts.InboundLimiter
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	r.Get("/ping", c.Ping)
	r.Handle("/metrics", promhttp.Handler())

	// callback кредитора: сессии покупателя здесь нет
	r.With(limit).Put("/lendingworks/orders/update-status", c.UpdateStatus)
	r.With(limit).Patch("/lendingworks/orders/update-status", c.UpdateStatus)

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(opts.SecureCookies))

		r.With(limit).Post("/wc-api/"+model.GatewayID, c.Webhook)

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/gateways", c.Gateways)
			r.Get("/notices", c.Notices)
			r.Post("/{orderID}", c.Checkout)
			r.Get("/order-pay/{orderID}", c.PayPage)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", c.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthBearerMiddlewareInit[model.TokenInfo](opts.SecretKey))

			r.Post("/fulfill-order", c.FulfillOrder)
			r.Post("/orders", c.CreateOrder)
			r.Get("/orders/{orderID}", c.GetOrder)
			r.Get("/orders/{orderID}/fulfill-option", c.FulfillOption)
			r.Post("/orders/{orderID}/status", c.SetOrderStatus)
			r.Post("/settings/validate", c.ValidateSettings)
		})
	})

	return r
}
