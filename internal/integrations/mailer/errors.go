package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, если письмо нельзя собрать (нет получателей, плохой адрес)
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrSend возвращается при ошибке соединения или отправки через SMTP
	ErrSend = errors.New("mailer: failed to send message")
)
