package create_booking

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase.
// Ошибки бизнес-правил возвращаются как ошибки domain:
// ErrInvalidInput, ErrInvalidDate, ErrSlotTaken.
var ErrInternal = errors.New("create_booking: internal error")
