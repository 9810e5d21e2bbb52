package bookings

import "errors"

// ErrInternal возвращается при внутренних ошибках сервиса.
// Остальные ошибки возвращаются как ошибки domain: ErrNotFound, ErrInvalidInput, ErrInvalidTransition.
var ErrInternal = errors.New("service: internal error")
