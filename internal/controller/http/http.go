package http

import (
	"context"

	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Ping(ctx context.Context) error

	// кредитор и виджет оплаты
	Callback(ctx context.Context, in model.CallbackInput) (*model.MessageResponse, *model.APIError)
	Webhook(ctx context.Context, in model.WebhookInput) (*model.PaymentResult, *model.APIError)

	// покупатель
	Checkout(ctx context.Context, orderID int64) (*model.PaymentResult, *model.APIError)
	PayPage(ctx context.Context, orderID int64) (*model.PayPage, *model.APIError)
	AvailableGateway(ctx context.Context, total decimal.Decimal) (*model.Gateway, *model.APIError)
	PopNotices(ctx context.Context) ([]model.Notice, *model.APIError)

	// оператор
	Login(input model.LoginDTO) (string, *model.APIError)
	CreateOrder(ctx context.Context, input model.CreateOrderDTO) (int64, *model.APIError)
	GetOrder(ctx context.Context, orderID int64) (*model.OrderDetails, *model.APIError)
	ManualFulfill(ctx context.Context, orderID int64) (string, *model.APIError)
	FulfillOption(ctx context.Context, orderID int64) (*model.FulfillOption, *model.APIError)
	SetOrderStatus(ctx context.Context, orderID int64, input model.SetOrderStatusDTO) *model.APIError
	ValidateSettings(input model.GatewaySettings) model.SettingsValidation
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Controller{
		lg:      lg,
		service: s,
	}
}
