package get_available_slots

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase.
// Ошибки бизнес-правил возвращаются как ошибки domain (ErrInvalidDate, ErrInvalidInput).
var ErrInternal = errors.New("get_available_slots: internal error")
