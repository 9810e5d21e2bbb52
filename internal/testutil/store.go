// Package testutil содержит in-memory реализации хранилища и транспорта для тестов HTTP-слоя.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	bookingRepo "github.com/m04kA/curbside-pickup/internal/infra/storage/booking"
	"github.com/m04kA/curbside-pickup/internal/integrations/mailer"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

// Store хранилище бронирований в памяти с теми же гарантиями, что и PostgreSQL:
// одно активное бронирование на слот и условная смена статуса.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*domain.Booking
}

func NewStore() *Store {
	return &Store{nextID: 1, bookings: make(map[int64]*domain.Booking)}
}

func (s *Store) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotHeld(booking.BookingDate, booking.StartTime) {
		return nil, bookingRepo.ErrSlotTaken
	}

	created := *booking
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.nextID++
	s.bookings[created.ID] = &created

	out := created
	return &out, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	return s.find(func(b *domain.Booking) bool { return b.ID == id })
}

func (s *Store) GetByBookingToken(_ context.Context, token string) (*domain.Booking, error) {
	return s.find(func(b *domain.Booking) bool { return b.BookingToken == token })
}

func (s *Store) GetByAdminToken(_ context.Context, token string) (*domain.Booking, error) {
	return s.find(func(b *domain.Booking) bool { return b.AdminToken == token })
}

func (s *Store) ExistsActiveAtSlot(_ context.Context, date time.Time, start types.TimeString) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slotHeld(date, start), nil
}

func (s *Store) GetOccupiedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	occupied, err := s.GetOccupiedTimesInRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	return occupied[date.Format(domain.DateFormat)], nil
}

func (s *Store) GetOccupiedTimesInRange(_ context.Context, from, to time.Time) (map[string][]types.TimeString, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromKey, toKey := from.Format(domain.DateFormat), to.Format(domain.DateFormat)
	occupied := make(map[string][]types.TimeString)
	for _, b := range s.bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		if key < fromKey || key > toKey || !b.Status.HoldsSlot() {
			continue
		}
		occupied[key] = append(occupied[key], b.StartTime)
	}
	for key := range occupied {
		sort.Slice(occupied[key], func(i, j int) bool { return occupied[key][i] < occupied[key][j] })
	}
	return occupied, nil
}

func (s *Store) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := s.filter(filter)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.BookingDate.Equal(b.BookingDate) {
			return a.BookingDate.Before(b.BookingDate)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})

	if filter.Offset >= uint64(len(matched)) {
		return []*domain.Booking{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && uint64(len(matched)) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *Store) Count(_ context.Context, filter domain.BookingsFilter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filter(filter)), nil
}

func (s *Store) Stats(_ context.Context, today time.Time) (*domain.BookingStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todayKey := today.Format(domain.DateFormat)
	upcomingEnd := today.AddDate(0, 0, domain.StatsUpcomingDays).Format(domain.DateFormat)

	stats := &domain.BookingStats{}
	for _, b := range s.bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		stats.Total++
		if key == todayKey {
			stats.Today++
		}
		if key >= todayKey && key < upcomingEnd {
			stats.Upcoming++
		}
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		}
	}
	return stats, nil
}

func (s *Store) TransitionStatus(_ context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	return true, nil
}

func (s *Store) MarkEmailSent(_ context.Context, id int64, kind domain.EmailKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.MarkEmailSent(kind)
	return nil
}

// All возвращает копии всех бронирований по возрастанию ID
func (s *Store) All() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) find(match func(b *domain.Booking) bool) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if match(b) {
			out := *b
			return &out, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *Store) slotHeld(date time.Time, start types.TimeString) bool {
	key := date.Format(domain.DateFormat)
	for _, b := range s.bookings {
		if b.BookingDate.Format(domain.DateFormat) == key && b.StartTime == start && b.Status.HoldsSlot() {
			return true
		}
	}
	return false
}

func (s *Store) filter(filter domain.BookingsFilter) []*domain.Booking {
	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		key := b.BookingDate.Format(domain.DateFormat)
		if filter.DateFrom != nil && key < filter.DateFrom.Format(domain.DateFormat) {
			continue
		}
		if filter.DateTo != nil && key > filter.DateTo.Format(domain.DateFormat) {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out
}

// TxManager выполняет функцию без транзакции: Store сам сериализует доступ
type TxManager struct{}

func (TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Mailer запоминает отправленные письма
type Mailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *Mailer) Send(_ context.Context, message mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, message)
	return nil
}

// Sent возвращает копию отправленных писем
func (m *Mailer) Sent() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.sent...)
}

// Pinger всегда доступная БД
type Pinger struct{}

func (Pinger) PingContext(context.Context) error {
	return nil
}
