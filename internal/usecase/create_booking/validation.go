package create_booking

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из JSON запроса
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})

	v.RegisterStructValidationMapRules(map[string]string{
		"CustomerName":        fmt.Sprintf("required,max=%d", domain.MaxCustomerNameLength),
		"CustomerEmail":       "required,email",
		"CustomerPhone":       fmt.Sprintf("required,max=%d", domain.MaxCustomerPhoneLength),
		"BookingDate":         "required,datetime=" + domain.DateFormat,
		"StartTime":           "required,datetime=" + domain.TimeFormat,
		"SpecialInstructions": fmt.Sprintf("omitempty,max=%d", domain.MaxSpecialInstructionsLength),
		"ItemsDescription":    fmt.Sprintf("omitempty,max=%d", domain.MaxItemsDescriptionLength),
	}, Request{})

	return v
}

// normalizeRequest обрезает пробелы, пустые необязательные поля превращает в nil
func normalizeRequest(req *Request) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.BookingDate = strings.TrimSpace(req.BookingDate)
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.SpecialInstructions = trimOptional(req.SpecialInstructions)
	req.ItemsDescription = trimOptional(req.ItemsDescription)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateRequest проверяет поля запроса и возвращает *domain.ValidationError со всеми ошибками
func validateRequest(req *Request) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: validate request: %v", ErrInternal, err)
	}

	validationErr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		validationErr.Add(fe.Field(), fieldMessage(fe))
	}
	return validationErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "datetime":
		if fe.Param() == domain.TimeFormat {
			return "must be a time in HH:MM format"
		}
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}

// parseSlot разбирает дату и время после успешной валидации формата
func parseSlot(req *Request) (time.Time, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, req.BookingDate)
	if err != nil {
		return time.Time{}, "", domain.NewValidationError("bookingDate", "must be a date in YYYY-MM-DD format")
	}

	parsed, err := time.Parse(domain.TimeFormat, req.StartTime)
	if err != nil {
		return time.Time{}, "", domain.NewValidationError("startTime", "must be a time in HH:MM format")
	}

	return date, types.NewTimeString(parsed), nil
}
