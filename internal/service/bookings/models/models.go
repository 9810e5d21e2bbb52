package models

import (
	"math"
	"strings"
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
)

// Request модели

// ListBookingsRequest запрос списка бронирований в админке
type ListBookingsRequest struct {
	Status string // "all", пусто или статус
	Date   string // YYYY-MM-DD, опционально
	Page   int    // 0 - по умолчанию 1
	Limit  int    // 0 - по умолчанию domain.DefaultPageLimit
}

// ToDomainFilter конвертирует request в domain фильтр и нормализует пагинацию
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter
	validationErr := &domain.ValidationError{}

	status := strings.TrimSpace(r.Status)
	if status != "" && status != "all" {
		s, ok := domain.ParseBookingStatus(status)
		if !ok {
			validationErr.Add("status", "must be all, pending, confirmed, declined or cancelled")
		} else {
			filter.Status = &s
		}
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			validationErr.Add("date", "must be a date in YYYY-MM-DD format")
		} else {
			filter.DateFrom = &date
			filter.DateTo = &date
		}
	}

	if r.Page == 0 {
		r.Page = 1
	}
	if r.Page < 0 {
		validationErr.Add("page", "must be a positive number")
	}

	if r.Limit == 0 {
		r.Limit = domain.DefaultPageLimit
	}
	if r.Limit < 0 || r.Limit > domain.MaxPageLimit {
		validationErr.Add("limit", "must be between 1 and 100")
	}

	if validationErr.HasErrors() {
		return filter, validationErr
	}

	filter.Offset = uint64((r.Page - 1) * r.Limit)
	filter.Limit = uint64(r.Limit)
	return filter, nil
}

// Response модели

// TrackResponse данные бронирования для клиента по токену отслеживания
type TrackResponse struct {
	ID                  int64     `json:"id"`
	CustomerName        string    `json:"customerName"`
	BookingDate         string    `json:"bookingDate"` // "Monday, March 17, 2025"
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	Status              string    `json:"status"`
	StatusDisplay       string    `json:"statusDisplay"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
	ItemsDescription    *string   `json:"itemsDescription,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// BookingResponse бронирование в списке админки. Токены не возвращаются.
type BookingResponse struct {
	ID                  int64     `json:"id"`
	CustomerName        string    `json:"customerName"`
	CustomerEmail       string    `json:"customerEmail"`
	CustomerPhone       string    `json:"customerPhone"`
	BookingDate         string    `json:"bookingDate"` // "2025-03-17"
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	Status              string    `json:"status"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
	ItemsDescription    *string   `json:"itemsDescription,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Pagination параметры страницы
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

// EmailFlags флаги отправленных уведомлений
type EmailFlags struct {
	CustomerConfirmation bool `json:"customerConfirmation"`
	StaffNotification    bool `json:"staffNotification"`
	FinalConfirmation    bool `json:"finalConfirmation"`
	DeclineNotification  bool `json:"declineNotification"`
}

// BookingDetailsResponse подробности бронирования для персонала
type BookingDetailsResponse struct {
	BookingResponse
	BookingDateDisplay string     `json:"bookingDateDisplay"`
	StatusDisplay      string     `json:"statusDisplay"`
	EmailSent          EmailFlags `json:"emailSent"`
}

// StatsResponse сводка для админки
type StatsResponse struct {
	TotalBookings     int `json:"totalBookings"`
	TodayBookings     int `json:"todayBookings"`
	PendingBookings   int `json:"pendingBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	NextWeekBookings  int `json:"nextWeekBookings"`
}

// Методы конвертации

// FromDomainTrack конвертирует бронирование в ответ для клиента
func FromDomainTrack(b *domain.Booking) *TrackResponse {
	return &TrackResponse{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		BookingDate:         b.BookingDate.Format(domain.LongDateFormat),
		StartTime:           b.StartTime.String(),
		EndTime:             b.EndTime.String(),
		Status:              string(b.Status),
		StatusDisplay:       b.Status.Display(),
		SpecialInstructions: b.SpecialInstructions,
		ItemsDescription:    b.ItemsDescription,
		CreatedAt:           b.CreatedAt,
	}
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		BookingDate:         b.BookingDate.Format(domain.DateFormat),
		StartTime:           b.StartTime.String(),
		EndTime:             b.EndTime.String(),
		Status:              string(b.Status),
		SpecialInstructions: b.SpecialInstructions,
		ItemsDescription:    b.ItemsDescription,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// FromDomainDetails конвертирует бронирование в подробный ответ для персонала
func FromDomainDetails(b *domain.Booking) *BookingDetailsResponse {
	return &BookingDetailsResponse{
		BookingResponse:    FromDomainBooking(b),
		BookingDateDisplay: b.BookingDate.Format(domain.LongDateFormat),
		StatusDisplay:      b.Status.Display(),
		EmailSent: EmailFlags{
			CustomerConfirmation: b.CustomerConfirmationSent,
			StaffNotification:    b.StaffNotificationSent,
			FinalConfirmation:    b.FinalConfirmationSent,
			DeclineNotification:  b.DeclineNotificationSent,
		},
	}
}

// FromDomainBookingList конвертирует страницу бронирований в DTO
func FromDomainBookingList(bookings []*domain.Booking, page, limit, total int) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b))
	}

	return resp
}

// FromDomainStats конвертирует сводку
func FromDomainStats(s *domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		TotalBookings:     s.Total,
		TodayBookings:     s.Today,
		PendingBookings:   s.Pending,
		ConfirmedBookings: s.Confirmed,
		NextWeekBookings:  s.Upcoming,
	}
}
