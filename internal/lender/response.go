package lender

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ibeloyar/loangateway/internal/model"
)

const (
	// сначала сверяем AlreadyFulfilledCode, текст - для старых версий API,
	// которые присылают только сообщение
	AlreadyFulfilledCode    = "loan_request_already_fulfilled"
	AlreadyFulfilledMessage = "Loan request is already fulfilled."

	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeRejected       = "rejected"
)

// Response - сырой ответ кредитора. Тело разбирается лениво: битый JSON
// возвращает только тот метод, которому он нужен.
type Response struct {
	statusCode int
	statusText string
	body       []byte
	err        error
}

type CreateResponse struct {
	Response
}

type FulfillResponse struct {
	Response
}

func NewCreateResponse(resp *http.Response, err error) *CreateResponse {
	return &CreateResponse{Response: newResponse(resp, err)}
}

func NewFulfillResponse(resp *http.Response, err error) *FulfillResponse {
	return &FulfillResponse{Response: newResponse(resp, err)}
}

func newResponse(resp *http.Response, err error) Response {
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return Response{err: err}
	}

	if resp == nil {
		return Response{err: fmt.Errorf("empty lender response")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{err: fmt.Errorf("failed to read lender response: %w", err)}
	}

	return Response{
		statusCode: resp.StatusCode,
		statusText: reasonPhrase(resp),
		body:       body,
	}
}

// reasonPhrase - текст статуса, присланный сервером ("Bad Request" из "400 Bad Request")
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return http.StatusText(resp.StatusCode)
	}

	return phrase
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

// IsError - ошибка транспорта или HTTP статус 400 и выше
func (r *Response) IsError() bool {
	return r.err != nil || r.statusCode > 399
}

func (r *Response) IsTransportError() bool {
	return r.err != nil
}

func (r *Response) Outcome() string {
	switch {
	case r.err != nil:
		return OutcomeTransportError
	case r.statusCode > 399:
		return OutcomeRejected
	}

	return OutcomeOK
}

// ErrorMessage: ошибка транспорта, затем поле "message" тела, затем
// reason phrase HTTP статуса
func (r *Response) ErrorMessage() (string, error) {
	if r.err != nil {
		return r.err.Error(), nil
	}

	body, err := r.decode()
	if err != nil {
		return "", err
	}

	if msg, ok := body["message"]; ok && msg != nil {
		if s, ok := msg.(string); ok {
			return s, nil
		}
		return fmt.Sprint(msg), nil
	}

	return r.statusText, nil
}

func (r *Response) decode() (map[string]any, error) {
	var body map[string]any

	if err := json.Unmarshal(r.body, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: empty body", model.ErrMalformedResponse)
	}

	return body, nil
}

func (r *CreateResponse) OrderToken() (string, error) {
	body, err := r.decode()
	if err != nil {
		return "", err
	}

	token, ok := body["token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("%w: order token is missing", model.ErrMalformedResponse)
	}

	return token, nil
}

// AlreadyFulfilled - отказ кредитора на повторный fulfill той же заявки
func (r *FulfillResponse) AlreadyFulfilled() bool {
	if r.err != nil || r.statusCode <= 399 {
		return false
	}

	body, err := r.decode()
	if err != nil {
		return false
	}

	if code, ok := body["code"].(string); ok && code == AlreadyFulfilledCode {
		return true
	}

	msg, _ := body["message"].(string)
	return msg == AlreadyFulfilledMessage
}

// Err: nil при успехе, model.ErrAlreadyFulfilled для повтора, иначе
// сообщение кредитора или ошибка разбора тела
func (r *FulfillResponse) Err() error {
	if !r.IsError() {
		return nil
	}

	if r.AlreadyFulfilled() {
		return model.ErrAlreadyFulfilled
	}

	msg, err := r.ErrorMessage()
	if err != nil {
		return err
	}

	return errors.New(msg)
}
