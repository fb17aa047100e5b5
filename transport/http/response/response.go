package response

import (
	"aircon/shared/constant"
	"aircon/shared/failure"
	"aircon/shared/logger"
	"encoding/json"
	"net/http"
)

// Data wraps staff-facing payloads as {"data": ...}.
type Data[T any] struct {
	Data T `json:"data"`
}

// Error is the body of every failed request. Message is the status text and Error the detail a
// client may act on.
type Error struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

// WithJSON sends payload inside the data envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: payload})
}

// WithPayload sends payload as the whole body.
func WithPayload(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, payload)
}

// WithError reports err with the status it carries. Only client errors expose their message,
// everything else reads as a generic internal error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	detail := constant.ResponseErrorInternal

	if failure.IsClientError(err) {
		detail = err.Error()
	}

	write(writer, code, Error{Message: http.StatusText(code), Error: detail})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
