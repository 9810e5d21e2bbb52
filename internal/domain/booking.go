package domain

import (
	"time"

	"github.com/m04kA/curbside-pickup/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus проверяет, что строка является известным статусом
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	_, ok := statusDisplay[status]
	return status, ok
}

// Display текст статуса для клиента
func (s BookingStatus) Display() string {
	if text, ok := statusDisplay[s]; ok {
		return text
	}
	return string(s)
}

var statusDisplay = map[BookingStatus]string{
	StatusPending:   "Pending Review",
	StatusConfirmed: "Confirmed",
	StatusDeclined:  "Declined",
	StatusCancelled: "Cancelled",
}

// SlotHoldingStatuses статусы, при которых бронирование занимает слот.
// Отклоненное бронирование слот не освобождает.
var SlotHoldingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusDeclined,
}

// HoldsSlot проверяет, занимает ли бронирование слот
func (s BookingStatus) HoldsSlot() bool {
	return s != StatusCancelled
}

// EmailKind тип уведомления. У каждого типа свой флаг отправки в бронировании.
type EmailKind string

const (
	EmailCustomerConfirmation EmailKind = "customer_confirmation"
	EmailStaffNotification    EmailKind = "staff_notification"
	EmailFinalConfirmation    EmailKind = "final_confirmation"
	EmailDeclineNotification  EmailKind = "decline_notification"
)

// Booking бронирование слота самовывоза
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   time.Time // дата без времени (UTC полночь)
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        BookingStatus

	// Токены-капабилити, генерируются один раз при создании
	BookingToken string
	AdminToken   string

	SpecialInstructions *string
	ItemsDescription    *string

	CustomerConfirmationSent bool
	StaffNotificationSent    bool
	FinalConfirmationSent    bool
	DeclineNotificationSent  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmailSent возвращает флаг отправки уведомления указанного типа
func (b *Booking) EmailSent(kind EmailKind) bool {
	switch kind {
	case EmailCustomerConfirmation:
		return b.CustomerConfirmationSent
	case EmailStaffNotification:
		return b.StaffNotificationSent
	case EmailFinalConfirmation:
		return b.FinalConfirmationSent
	case EmailDeclineNotification:
		return b.DeclineNotificationSent
	}
	return false
}

// MarkEmailSent выставляет флаг отправки уведомления
func (b *Booking) MarkEmailSent(kind EmailKind) {
	switch kind {
	case EmailCustomerConfirmation:
		b.CustomerConfirmationSent = true
	case EmailStaffNotification:
		b.StaffNotificationSent = true
	case EmailFinalConfirmation:
		b.FinalConfirmationSent = true
	case EmailDeclineNotification:
		b.DeclineNotificationSent = true
	}
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	Status   *BookingStatus // nil - все статусы
	DateFrom *time.Time     // включительно
	DateTo   *time.Time     // включительно
	Offset   uint64
	Limit    uint64 // 0 - без ограничения
}

// BookingStats сводка для админки
type BookingStats struct {
	Total     int
	Today     int
	Pending   int
	Confirmed int
	Upcoming  int // today <= date < today + StatsUpcomingDays
}
