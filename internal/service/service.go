package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ibeloyar/loangateway/internal/lender"
	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/auth"
	"github.com/ibeloyar/loangateway/pgk/password"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type OrderStore interface {
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrdersByMeta(ctx context.Context, key, value string) ([]model.Order, error)
	SetMeta(ctx context.Context, orderID int64, key, value string) error
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note string) error
	GetNotes(ctx context.Context, orderID int64) ([]model.OrderNote, error)
	CreateOrder(ctx context.Context, dto model.CreateOrderDTO) (int64, error)
	Ping(ctx context.Context) error
}

type RemoteOrders interface {
	Create(ctx context.Context, order model.Order) *lender.CreateResponse
	Fulfill(ctx context.Context, order model.Order) *lender.FulfillResponse
}

type SessionStore interface {
	DisableGateway(ctx context.Context, sessionID string) error
	IsGatewayDisabled(ctx context.Context, sessionID string) (bool, error)
	AddNotice(ctx context.Context, sessionID string, notice model.Notice) error
	PopNotices(ctx context.Context, sessionID string) ([]model.Notice, error)
}

type Options struct {
	Settings          model.GatewaySettings
	CheckoutScriptURL string
	StoreBaseURL      string

	SecretKey     string
	NonceLifetime time.Duration

	AdminLogin         string
	AdminPasswordHash  string
	AdminTokenLifetime time.Duration
}

type Service struct {
	storage  OrderStore
	remote   RemoteOrders
	sessions SessionStore

	settings  model.GatewaySettings
	scriptURL string
	links     links

	secretKey     string
	nonceLifetime time.Duration

	adminLogin         string
	adminPasswordHash  string
	adminTokenLifetime time.Duration

	events  Events
	locks   *keyedMutex
	fulfill singleflight.Group

	lg *zap.SugaredLogger
}

func New(s OrderStore, r RemoteOrders, ss SessionStore, opts Options, lg *zap.SugaredLogger) *Service {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	svc := &Service{
		storage:  s,
		remote:   r,
		sessions: ss,

		settings:  opts.Settings,
		scriptURL: opts.CheckoutScriptURL,
		links:     links{base: strings.TrimSuffix(opts.StoreBaseURL, "/")},

		secretKey:     opts.SecretKey,
		nonceLifetime: opts.NonceLifetime,

		adminLogin:         opts.AdminLogin,
		adminPasswordHash:  opts.AdminPasswordHash,
		adminTokenLifetime: opts.AdminTokenLifetime,

		locks: newKeyedMutex(),
		lg:    lg,
	}

	svc.events = make(Events)
	svc.events.On(model.OrderStatusPending, model.OrderStatusFailed, svc.onLoanDeclined)
	svc.events.On(model.OrderStatusProcessing, model.OrderStatusCompleted, svc.onOrderCompleted)

	return svc
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}

// getOrder переводит ошибки хранилища в ответ клиенту
func (s *Service) getOrder(ctx context.Context, id int64) (*model.Order, *model.APIError) {
	order, err := s.storage.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		}

		s.lg.Errorf("get order %d error: %v", id, err)
		return nil, internalError()
	}

	return order, nil
}

func ParseOrderID(raw string) (int64, *model.APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderIDRequiredMessage,
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderNotFoundMessage,
		}
	}

	return id, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

func (s *Service) Login(input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	if s.adminLogin == "" || input.Login != s.adminLogin ||
		!password.CheckPasswordHash(input.Password, s.adminPasswordHash) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		Login: input.Login,
	}, s.adminTokenLifetime, s.secretKey)
	if err != nil {
		return "", internalError()
	}

	return token, nil
}

func (s *Service) CreateOrder(ctx context.Context, input model.CreateOrderDTO) (int64, *model.APIError) {
	if err := validateCreateOrderDTO(input); err != nil {
		return 0, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	id, err := s.storage.CreateOrder(ctx, input)
	if err != nil {
		s.lg.Errorf("create order error: %v", err)
		return 0, internalError()
	}

	return id, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*model.OrderDetails, *model.APIError) {
	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return nil, apiErr
	}

	notes, err := s.storage.GetNotes(ctx, orderID)
	if err != nil {
		s.lg.Errorf("get notes for order %d error: %v", orderID, err)
		return nil, internalError()
	}

	return &model.OrderDetails{
		Order:                *order,
		LoanStatus:           order.GetMeta(model.MetaLoanStatus),
		LoanRequestReference: order.GetMeta(model.MetaLoanRequestReference),
		Fulfilled:            order.IsFulfilled(),
		Notes:                notes,
	}, nil
}

// SetOrderStatus - смена статуса оператором; события переходов срабатывают так же,
// как при смене статуса кредитором.
func (s *Service) SetOrderStatus(ctx context.Context, orderID int64, input model.SetOrderStatusDTO) *model.APIError {
	if !input.Status.IsValid() {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidOrderStatusMessage,
		}
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, apiErr := s.getOrder(ctx, orderID)
	if apiErr != nil {
		return apiErr
	}

	if err := s.transition(ctx, order, input.Status, input.Note); err != nil {
		s.lg.Errorf("set order %d status error: %v", orderID, err)
		return internalError()
	}

	return nil
}

// ValidateSettings - ключ API в ответ не возвращается
func (s *Service) ValidateSettings(input model.GatewaySettings) model.SettingsValidation {
	result := input.Validate()
	result.Settings.APIKey = ""

	return result
}
