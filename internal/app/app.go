package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/loangateway/internal/config"
	"github.com/ibeloyar/loangateway/internal/lender"
	"github.com/ibeloyar/loangateway/internal/metrics"
	"github.com/ibeloyar/loangateway/internal/repository/pg"
	"github.com/ibeloyar/loangateway/internal/repository/remote"
	"github.com/ibeloyar/loangateway/internal/repository/session"
	"github.com/ibeloyar/loangateway/internal/service"
	"github.com/ibeloyar/loangateway/pgk/logger"
	"github.com/ibeloyar/loangateway/pgk/ratelimit"
	"github.com/ibeloyar/loangateway/pgk/retryablehttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/loangateway/internal/controller/http"
	sessionMiddleware "github.com/ibeloyar/loangateway/pgk/session"
)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := pg.New(signalCtx, cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := rdb.Ping(signalCtx).Err(); err != nil {
		return fmt.Errorf("redis ping error: %w", err)
	}

	settings := cfg.Gateway()
	if validation := settings.Validate(); len(validation.Errors) > 0 {
		// как и при сохранении настроек в админке: значения вне границ зажимаются
		for _, msg := range validation.Errors {
			lg.Warnf("gateway settings: %s", msg)
		}
		settings = validation.Settings
	}
	if settings.NeedsSetup() {
		lg.Warn("gateway settings: API key is empty, the gateway will not be offered")
	}

	transport := retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{
		MaxRetries: cfg.LenderMaxRetries,
		Timeout:    cfg.LenderTimeout,
	})
	lenderRepo := remote.New(lender.NewClient(cfg.LenderBaseURL(), settings.APIKey), transport)

	s := service.New(storage, lenderRepo, session.New(rdb, sessionMiddleware.CookieTTL), service.Options{
		Settings:           settings,
		CheckoutScriptURL:  cfg.CheckoutScriptURL(),
		StoreBaseURL:       cfg.StoreBaseURL,
		SecretKey:          cfg.SecretKey,
		NonceLifetime:      cfg.NonceLifetime,
		AdminLogin:         cfg.AdminLogin,
		AdminPasswordHash:  cfg.AdminPasswordHash,
		AdminTokenLifetime: cfg.AdminTokenLifetime,
	}, lg)

	limiter := ratelimit.New(cfg.InboundRPS, cfg.InboundBurst)
	go limiter.Cleanup(signalCtx)

	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers, httpController.RouterOptions{
		SecretKey:      cfg.SecretKey,
		InboundLimiter: limiter.Middleware,
		SecureCookies:  cfg.SecureCookies(),
	})

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lg.Infof("starting server on %s (sandbox: %t)", cfg.RunAddress, cfg.TestMode)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := rdb.Close(); err != nil {
		return fmt.Errorf("shutdown (redis) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
