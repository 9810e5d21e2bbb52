package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/curbside-pickup/internal/domain"
)

const (
	msgInternalError    = "Something went wrong. Please try again."
	msgValidationFailed = "Validation failed"

	maxBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string              `json:"error"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

// MessageResponse тело ответа с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса. Неизвестные поля и тело больше 1 МБ отклоняются.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет ответ в JSON
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondValidationError 400 с ошибками по полям
func RespondValidationError(w http.ResponseWriter, err *domain.ValidationError) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  msgValidationFailed,
		Errors: err.Fields,
	})
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondDomainError отвечает на ошибки бизнес-правил.
// Возвращает false, если ошибка не из domain и ее должен обработать вызывающий.
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var (
		validationErr *domain.ValidationError
		dateErr       *domain.DateError
		transitionErr *domain.TransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		RespondValidationError(w, validationErr)
	case errors.As(err, &dateErr):
		RespondBadRequest(w, dateErr.Reason)
	case errors.As(err, &transitionErr):
		RespondBadRequest(w, transitionErr.Reason)
	default:
		return false
	}
	return true
}
