package review_booking

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("review_booking: internal error")
