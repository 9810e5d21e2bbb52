package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/curbside-pickup/pkg/types"
)

// Schedule рабочие часы и правила бронирования.
// Все сравнения "сегодня/прошлое" выполняются в часовом поясе Location.
type Schedule struct {
	OpeningHour         int
	ClosingHour         int
	SlotDurationMinutes int
	LeadTime            time.Duration
	Location            *time.Location
	ClosedDays          []time.Weekday
}

// Slots возвращает все слоты рабочего дня [OpeningHour:00, ClosingHour:00) с шагом SlotDurationMinutes
func (s Schedule) Slots() []types.TimeString {
	start := s.OpeningHour * 60
	end := s.ClosingHour * 60

	slots := make([]types.TimeString, 0, (end-start)/s.SlotDurationMinutes)
	for m := start; m < end; m += s.SlotDurationMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// IsOnGrid проверяет, что время совпадает с началом одного из слотов
func (s Schedule) IsOnGrid(t types.TimeString) bool {
	m := t.Minutes()
	if m < 0 {
		return false
	}
	return m >= s.OpeningHour*60 && m < s.ClosingHour*60 && (m-s.OpeningHour*60)%s.SlotDurationMinutes == 0
}

// EndTime время окончания слота
func (s Schedule) EndTime(start types.TimeString) (types.TimeString, error) {
	return start.AddMinutes(s.SlotDurationMinutes)
}

// DateOf календарная дата (UTC полночь) момента t в часовом поясе бизнеса
func (s Schedule) DateOf(t time.Time) time.Time {
	y, m, d := t.In(s.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today текущая дата в часовом поясе бизнеса
func (s Schedule) Today(now time.Time) time.Time {
	return s.DateOf(now)
}

// IsToday проверяет, что date совпадает с текущей датой бизнеса
func (s Schedule) IsToday(date, now time.Time) bool {
	return NormalizeDate(date).Equal(s.Today(now))
}

// IsClosed проверяет, что date выходной день
func (s Schedule) IsClosed(date time.Time) bool {
	weekday := NormalizeDate(date).Weekday()
	for _, d := range s.ClosedDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// OpenDays рабочие дни недели начиная с понедельника
func (s Schedule) OpenDays() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for i := 1; i <= 7; i++ {
		day := time.Weekday(i % 7)
		if !s.IsClosed(time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC)) {
			days = append(days, day)
		}
	}
	return days
}

// CheckDate отклоняет выходные и прошедшие даты
func (s Schedule) CheckDate(date, now time.Time) error {
	date = NormalizeDate(date)

	if s.IsClosed(date) {
		return &DateError{Reason: fmt.Sprintf("We are closed on %ss", date.Weekday())}
	}
	if date.Before(s.Today(now)) {
		return &DateError{Reason: "Cannot book dates in the past"}
	}
	return nil
}

// FilterAvailable возвращает свободные слоты на дату.
// Занятые слоты исключаются всегда, а на сегодня дополнительно исключаются
// слоты, которые начинаются не позже now + LeadTime.
func (s Schedule) FilterAvailable(date, now time.Time, occupied []types.TimeString) ([]types.TimeString, error) {
	if err := s.CheckDate(date, now); err != nil {
		return nil, err
	}

	taken := make(map[int]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t.Minutes()] = struct{}{}
	}

	today := s.IsToday(date, now)
	cutoff := now.Add(s.LeadTime)

	available := make([]types.TimeString, 0)
	for _, slot := range s.Slots() {
		if _, ok := taken[slot.Minutes()]; ok {
			continue
		}
		if today && !slot.On(date, s.Location).After(cutoff) {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// CheckBookable проверяет, что слот start на дату date можно забронировать сейчас
// (без учета занятости)
func (s Schedule) CheckBookable(date time.Time, start types.TimeString, now time.Time) error {
	if !s.IsOnGrid(start) {
		return NewValidationError("startTime",
			fmt.Sprintf("must be a %d-minute slot between %02d:00 and %02d:00",
				s.SlotDurationMinutes, s.OpeningHour, s.ClosingHour))
	}
	if err := s.CheckDate(date, now); err != nil {
		return err
	}
	if s.IsToday(date, now) && !start.On(date, s.Location).After(now.Add(s.LeadTime)) {
		return &DateError{Reason: fmt.Sprintf("Bookings for today must be at least %d minutes in advance",
			int(s.LeadTime.Minutes()))}
	}
	return nil
}

// NormalizeDate отбрасывает время и часовой пояс, оставляя календарную дату (UTC полночь)
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
