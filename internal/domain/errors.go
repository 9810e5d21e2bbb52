package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput некорректные входные данные (детали в *ValidationError)
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate дата в прошлом, выходной день или слот уже нельзя забронировать сегодня
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotTaken слот уже занят другим бронированием
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrNotFound бронирование не найдено
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidTransition переход статуса недопустим
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyProcessed бронирование уже находится в целевом статусе
	ErrAlreadyProcessed = errors.New("booking already processed")
)

// FieldError ошибка одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError набор ошибок полей. errors.Is(err, ErrInvalidInput) == true.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError создает ошибку для одного поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add добавляет ошибку поля
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors проверяет, есть ли ошибки
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DateError причина, по которой дата недоступна для бронирования
type DateError struct {
	Reason string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidDate, e.Reason)
}

func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDate
}
