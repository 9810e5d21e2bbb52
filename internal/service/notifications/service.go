package notifications

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/integrations/mailer"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Settings данные бизнеса и ссылки, которые попадают в письма
type Settings struct {
	BusinessName    string
	BusinessAddress string
	FrontendURL     string
	StaffEmails     []string
	SendTimeout     time.Duration
}

// Service отправляет уведомления по бронированию.
// Ошибка отправки не возвращается вызывающему: она логируется, а флаг письма остается false.
type Service struct {
	mailer    Mailer
	flags     FlagRepository
	metrics   Metrics
	templates *template.Template
	settings  Settings
	logger    Logger
}

// NewService создает сервис уведомлений
func NewService(mailer Mailer, flags FlagRepository, metrics Metrics, settings Settings, logger Logger) (*Service, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	settings.FrontendURL = strings.TrimRight(settings.FrontendURL, "/")

	return &Service{
		mailer:    mailer,
		flags:     flags,
		metrics:   metrics,
		templates: templates,
		settings:  settings,
		logger:    logger,
	}, nil
}

type emailData struct {
	BusinessName        string
	BusinessAddress     string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	Date                string
	StartTime           string
	EndTime             string
	StatusDisplay       string
	SpecialInstructions string
	ItemsDescription    string
	TrackURL            string
	AcceptURL           string
	DeclineURL          string
}

// SendCustomerConfirmation письмо клиенту о получении заявки
func (s *Service) SendCustomerConfirmation(ctx context.Context, booking *domain.Booking) bool {
	return s.send(ctx, booking, domain.EmailCustomerConfirmation,
		[]string{booking.CustomerEmail},
		fmt.Sprintf("Your Curbside Pickup Booking - %s", s.settings.BusinessName))
}

// SendStaffNotification письмо персоналу со ссылками на подтверждение и отклонение
func (s *Service) SendStaffNotification(ctx context.Context, booking *domain.Booking) bool {
	if len(s.settings.StaffEmails) == 0 {
		s.logger.Warn("Notifications: no staff emails configured, staff notification for booking id=%d skipped", booking.ID)
		return false
	}
	return s.send(ctx, booking, domain.EmailStaffNotification,
		s.settings.StaffEmails,
		"New Curbside Pickup Booking - Action Required")
}

// SendFinalConfirmation письмо клиенту о подтверждении
func (s *Service) SendFinalConfirmation(ctx context.Context, booking *domain.Booking) bool {
	return s.send(ctx, booking, domain.EmailFinalConfirmation,
		[]string{booking.CustomerEmail},
		fmt.Sprintf("Booking Confirmed - %s", s.settings.BusinessName))
}

// SendDeclineNotification письмо клиенту об отклонении
func (s *Service) SendDeclineNotification(ctx context.Context, booking *domain.Booking) bool {
	return s.send(ctx, booking, domain.EmailDeclineNotification,
		[]string{booking.CustomerEmail},
		fmt.Sprintf("Booking Update - %s", s.settings.BusinessName))
}

func (s *Service) send(ctx context.Context, booking *domain.Booking, kind domain.EmailKind, to []string, subject string) bool {
	// Запрос клиента мог уже завершиться, письмо все равно отправляем
	ctx = context.WithoutCancel(ctx)
	if s.settings.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.SendTimeout)
		defer cancel()
	}

	body, err := s.render(kind, booking)
	if err != nil {
		s.logger.Error("Notifications: failed to render %s for booking id=%d: %v", kind, booking.ID, err)
		s.metrics.IncEmailSent(string(kind), false)
		return false
	}

	if err := s.mailer.Send(ctx, mailer.Message{To: to, Subject: subject, HTMLBody: body}); err != nil {
		s.logger.Error("Notifications: failed to send %s for booking id=%d: %v", kind, booking.ID, err)
		s.metrics.IncEmailSent(string(kind), false)
		return false
	}
	s.metrics.IncEmailSent(string(kind), true)

	if err := s.flags.MarkEmailSent(ctx, booking.ID, kind); err != nil {
		s.logger.Error("Notifications: %s sent but flag not saved for booking id=%d: %v", kind, booking.ID, err)
		return false
	}
	booking.MarkEmailSent(kind)

	s.logger.Info("Notifications: %s sent for booking id=%d", kind, booking.ID)
	return true
}

func (s *Service) render(kind domain.EmailKind, booking *domain.Booking) (string, error) {
	data := emailData{
		BusinessName:    s.settings.BusinessName,
		BusinessAddress: s.settings.BusinessAddress,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		Date:            booking.BookingDate.Format(domain.LongDateFormat),
		StartTime:       booking.StartTime.String(),
		EndTime:         booking.EndTime.String(),
		StatusDisplay:   booking.Status.Display(),
		TrackURL:        s.settings.FrontendURL + "/track/" + booking.BookingToken,
	}
	if booking.SpecialInstructions != nil {
		data.SpecialInstructions = *booking.SpecialInstructions
	}
	if booking.ItemsDescription != nil {
		data.ItemsDescription = *booking.ItemsDescription
	}
	if kind == domain.EmailStaffNotification {
		data.AcceptURL = s.settings.FrontendURL + "/admin/accept/" + booking.AdminToken
		data.DeclineURL = s.settings.FrontendURL + "/admin/decline/" + booking.AdminToken
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
