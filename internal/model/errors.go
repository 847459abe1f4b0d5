package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrOrderNotFoundMessage          = "order not found"
	ErrOrderIDRequiredMessage        = "order id is required"
	ErrInvalidOrderStatusMessage     = "invalid order status"
	ErrOrderNotCheckedOutMessage     = "order has not been sent to the lender"

	// callback
	ErrMissingAuthOrPayloadMessage = "Missing authentication or payload"
	ErrInvalidCredentialsMessage   = "Invalid credentials."
	ErrMalformedPayloadMessage     = "Malformed payload."
	NoOrderFoundMessage            = "No order found."

	// уведомления покупателя
	NoticeLoanApplicationProblem = "There was a problem with your loan application. Please try again."
	NoticeStatusInvalid          = "Status invalid"
	NoticeLoanCancelled          = "Your Loan quote was cancelled or expired."
	NoticeLoanDeclined           = "Please use an alternative payment method."
	NoticeAlreadyPaid            = "Your order has already been paid."
	NoticeLenderUnavailable      = "We could not reach Lending Works. Please try again or use another payment method."

	// заметки к заказу
	NoteAwaitingApproval = "Awaiting loan approval."
	NoteLoanAccepted     = "Loan accepted"
	NoteLoanCancelled    = "Loan cancelled or expired"
	NoteLoanDeclined     = "Loan declined"
	NotePaymentComplete  = "Payment complete."

	OrderFulfilledMessage = "Order fulfilled"
)

var (
	ErrOrderNotFound = errors.New(ErrOrderNotFoundMessage)

	// ErrMalformedResponse - тело ответа кредитора не является валидным JSON
	// или не содержит обязательного поля
	ErrMalformedResponse = errors.New("malformed lender response")

	// ErrAlreadyFulfilled - кредитор отклонил повторный fulfill той же заявки
	ErrAlreadyFulfilled = errors.New("loan request is already fulfilled")
)
