package notifications

import (
	"context"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/integrations/mailer"
)

// Mailer транспорт отправки писем
type Mailer interface {
	Send(ctx context.Context, message mailer.Message) error
}

// FlagRepository сохраняет флаги отправленных уведомлений
type FlagRepository interface {
	MarkEmailSent(ctx context.Context, id int64, kind domain.EmailKind) error
}

// Metrics счетчики отправленных писем
type Metrics interface {
	IncEmailSent(kind string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
