package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/ibeloyar/loangateway/pgk/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedCallback(payload string) model.CallbackInput {
	return model.CallbackInput{
		Signature: signature.Sign([]byte(payload), testAPIKey),
		JSON:      payload,
	}
}

func TestService_Callback_MissingInput(t *testing.T) {
	svc, _ := newTestService(t, testSettings())

	for _, in := range []model.CallbackInput{
		{},
		{Signature: "abc"},
		{JSON: `{"reference":"LR-1","status":"approved"}`},
	} {
		resp, apiErr := svc.Callback(context.Background(), in)

		assert.Nil(t, resp)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		assert.Equal(t, model.ErrMissingAuthOrPayloadMessage, apiErr.Message)
	}
}

func TestService_Callback_InvalidSignature(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	deps.storage.EXPECT().GetOrdersByMeta(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	payload := `{"reference":"LR-1","status":"approved"}`

	resp, apiErr := svc.Callback(context.Background(), model.CallbackInput{
		Signature: signature.Sign([]byte(payload), "wrong-key"),
		JSON:      payload,
	})

	assert.Nil(t, resp)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
	assert.Equal(t, model.ErrInvalidCredentialsMessage, apiErr.Message)
}

func TestService_Callback_NotConfigured(t *testing.T) {
	settings := testSettings()
	settings.APIKey = ""
	svc, _ := newTestService(t, settings)

	payload := `{"reference":"LR-1","status":"approved"}`

	_, apiErr := svc.Callback(context.Background(), model.CallbackInput{
		Signature: signature.Sign([]byte(payload), ""),
		JSON:      payload,
	})

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestService_Callback_MalformedPayload(t *testing.T) {
	svc, _ := newTestService(t, testSettings())

	resp, apiErr := svc.Callback(context.Background(), signedCallback(`{"reference":`))

	assert.Nil(t, resp)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrMalformedPayloadMessage, apiErr.Message)
}

func TestService_Callback_NoReference(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	deps.storage.EXPECT().GetOrdersByMeta(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp, apiErr := svc.Callback(context.Background(), signedCallback(`{"status":"approved"}`))

	require.Nil(t, apiErr)
	assert.Equal(t, model.NoOrderFoundMessage, resp.Message)
}

func TestService_Callback_NoMatchingOrder(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	deps.storage.EXPECT().
		GetOrdersByMeta(gomock.Any(), model.MetaLoanRequestReference, "LR-404").
		Return(nil, nil)
	deps.storage.EXPECT().SetMeta(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp, apiErr := svc.Callback(context.Background(), signedCallback(`{"reference":"LR-404","status":"approved"}`))

	require.Nil(t, apiErr)
	assert.Equal(t, model.NoOrderFoundMessage, resp.Message)
}

func TestService_Callback_LookupError(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	deps.storage.EXPECT().
		GetOrdersByMeta(gomock.Any(), model.MetaLoanRequestReference, "LR-1").
		Return(nil, errors.New("connection reset"))

	_, apiErr := svc.Callback(context.Background(), signedCallback(`{"reference":"LR-1","status":"approved"}`))

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestService_Callback_Transitions(t *testing.T) {
	tests := []struct {
		status    string
		from      model.OrderStatus
		to        model.OrderStatus
		note      string
		disableGW bool
	}{
		{status: "approved", from: model.OrderStatusPending, to: model.OrderStatusProcessing, note: model.NoteLoanAccepted},
		{status: "referred", from: model.OrderStatusPending, to: model.OrderStatusProcessing, note: model.NoteLoanAccepted},
		{status: "expired", from: model.OrderStatusProcessing, to: model.OrderStatusPending, note: model.NoteLoanCancelled},
		{status: "declined", from: model.OrderStatusPending, to: model.OrderStatusFailed, note: model.NoteLoanDeclined, disableGW: true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			svc, deps := newTestService(t, testSettings())

			payload := `{"reference":"LR-1","status":"` + tt.status + `"}`

			deps.storage.EXPECT().
				GetOrdersByMeta(gomock.Any(), model.MetaLoanRequestReference, "LR-1").
				Return([]model.Order{*testOrder(9, tt.from)}, nil)
			deps.storage.EXPECT().GetOrder(gomock.Any(), int64(9)).Return(testOrder(9, tt.from), nil)
			deps.storage.EXPECT().SetMeta(gomock.Any(), int64(9), model.MetaLoanStatus, tt.status).Return(nil)
			deps.storage.EXPECT().UpdateStatus(gomock.Any(), int64(9), tt.to, tt.note).Return(nil)
			if tt.disableGW {
				// у callback'а кредитора нет сессии покупателя
				deps.sessions.EXPECT().DisableGateway(gomock.Any(), "").Return(nil)
			}

			resp, apiErr := svc.Callback(context.Background(), signedCallback(payload))

			require.Nil(t, apiErr)
			assert.Equal(t, "Order status for loan request reference LR-1 updated", resp.Message)
		})
	}
}

func TestService_Callback_InvalidStatusRecordedOnly(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	deps.storage.EXPECT().
		GetOrdersByMeta(gomock.Any(), model.MetaLoanRequestReference, "LR-1").
		Return([]model.Order{*testOrder(9, model.OrderStatusPending)}, nil)
	deps.storage.EXPECT().GetOrder(gomock.Any(), int64(9)).Return(testOrder(9, model.OrderStatusPending), nil)
	deps.storage.EXPECT().SetMeta(gomock.Any(), int64(9), model.MetaLoanStatus, "on-hold").Return(nil)
	deps.storage.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp, apiErr := svc.Callback(context.Background(), signedCallback(`{"reference":"LR-1","status":"on-hold"}`))

	require.Nil(t, apiErr)
	assert.Equal(t, "Order status for loan request reference LR-1 updated", resp.Message)
}

func TestService_Callback_SanitizesInput(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	payload := `{"reference":"LR-1","status":"approved"}`

	deps.storage.EXPECT().
		GetOrdersByMeta(gomock.Any(), model.MetaLoanRequestReference, "LR-1").
		Return([]model.Order{*testOrder(9, model.OrderStatusPending)}, nil)
	deps.storage.EXPECT().GetOrder(gomock.Any(), int64(9)).Return(testOrder(9, model.OrderStatusPending), nil)
	deps.storage.EXPECT().SetMeta(gomock.Any(), int64(9), model.MetaLoanStatus, "approved").Return(nil)
	deps.storage.EXPECT().UpdateStatus(gomock.Any(), int64(9), model.OrderStatusProcessing, model.NoteLoanAccepted).Return(nil)

	_, apiErr := svc.Callback(context.Background(), model.CallbackInput{
		Signature: " " + signature.Sign([]byte(payload), testAPIKey) + "\n",
		JSON:      "\t" + payload + " ",
	})

	assert.Nil(t, apiErr)
}

func TestService_Callback_OrderVanished(t *testing.T) {
	svc, deps := newTestService(t, testSettings())

	deps.storage.EXPECT().
		GetOrdersByMeta(gomock.Any(), model.MetaLoanRequestReference, "LR-1").
		Return([]model.Order{*testOrder(9, model.OrderStatusPending)}, nil)
	deps.storage.EXPECT().GetOrder(gomock.Any(), int64(9)).Return(nil, model.ErrOrderNotFound)

	_, apiErr := svc.Callback(context.Background(), signedCallback(`{"reference":"LR-1","status":"approved"}`))

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}
