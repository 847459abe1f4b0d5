package retryablehttp

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

type RetryConfig struct {
	MaxRetries int           // Повторные попытки после первой (0 - без повторов)
	Timeout    time.Duration // Таймаут одной попытки (по умолчанию 5s)
	BaseDelay  time.Duration // Базовая задержка (по умолчанию 100ms)
	MaxDelay   time.Duration // Максимальная задержка (по умолчанию 5s)
	MaxJitter  time.Duration // Максимальный jitter (по умолчанию 100ms)
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}

	return &RetryableClient{
		client:      &http.Client{Timeout: config.Timeout},
		retryConfig: config,
	}
}

// isRetryable определяет, нужно ли делать retry
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		// Сетевые ошибки всегда retry
		return true
	}

	if resp == nil {
		return false
	}

	// Retry для серверных ошибок и rate limiting
	statusCode := resp.StatusCode
	return statusCode == 0 || // Неизвестная ошибка
		(statusCode >= 500 && statusCode <= 599) || // 5xx, 502 Bad Gateway, 503 Service Unavailable, 504 Gateway Timeout etc
		statusCode == 429 || // Too Many Requests
		statusCode == 408 // Request Timeout
}

// Do выполняет запрос с повторами. Если повторы исчерпаны на retryable статусе,
// возвращается последний ответ без ошибки: решать, что это отказ, должен вызывающий.
// Ошибка возвращается только для сетевых сбоев и отмены контекста.
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		// Проверка отмены контекста
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		attemptReq, rerr := rewind(ctx, req, attempt)
		if rerr != nil {
			return nil, rerr
		}

		resp, err = c.client.Do(attemptReq)

		// Успех
		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Последняя попытка - отдаем то, что получили
		if attempt == c.retryConfig.MaxRetries {
			if err != nil {
				return nil, fmt.Errorf("последняя попытка failed: %w", err)
			}
			return resp, nil
		}

		// Закрываем тело ответа при retry
		if resp != nil && resp.Body != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		// Exponential backoff + jitter
		delay := c.backoffDelay(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("unexpected error")
}

// rewind - каждая попытка получает свежую копию тела запроса
func rewind(ctx context.Context, req *http.Request, attempt int) (*http.Request, error) {
	out := req.WithContext(ctx)
	if attempt == 0 || req.Body == nil || req.Body == http.NoBody {
		return out, nil
	}

	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("rewind request body: %w", err)
	}
	out.Body = body

	return out, nil
}

// backoffDelay вычисляет задержку с экспоненциальным ростом и jitter
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}
