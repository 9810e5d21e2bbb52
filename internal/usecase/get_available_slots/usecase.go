package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	cache        OccupiedCache
	metrics      CacheMetrics
	schedule     domain.Schedule
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cache OccupiedCache,
	metrics CacheMetrics,
	schedule domain.Schedule,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cache:        cache,
		metrics:      metrics,
		schedule:     schedule,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает свободные слоты на одну дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := domain.NormalizeDate(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Выходные и прошедшие даты отклоняем до обращения к БД
	if err := uc.schedule.CheckDate(date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s rejected: %v", date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 3. Получаем занятые слоты (кэш, затем БД)
	occupied, err := uc.loadOccupied(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load occupied slots for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}

	// 4. Фильтруем сетку слотов
	slots, err := uc.schedule.FilterAvailable(date, now, occupied)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: %d slots available on %s", len(slots), date.Format(domain.DateFormat))
	return &Response{
		Date:       date,
		Slots:      slots,
		TotalSlots: len(slots),
		IsToday:    uc.schedule.IsToday(date, now),
	}, nil
}

// ExecuteRange возвращает свободные слоты по каждому рабочему дню диапазона
func (uc *UseCase) ExecuteRange(ctx context.Context, req *RangeRequest) (*RangeResponse, error) {
	start := domain.NormalizeDate(req.StartDate)
	end := domain.NormalizeDate(req.EndDate)
	uc.logger.Info("GetAvailableSlotsRange: %s..%s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	// 1. Валидация диапазона
	if err := uc.validateRange(start, end); err != nil {
		uc.logger.Warn("GetAvailableSlotsRange: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Занятые слоты за весь диапазон одним запросом
	occupied, err := uc.bookingRepo.GetOccupiedTimesInRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetAvailableSlotsRange: failed to load occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}

	// 3. Считаем доступность по дням, пропуская выходные и прошедшие
	days := make([]domain.DayAvailability, 0)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day, ok := uc.dayAvailability(date, now, occupied[date.Format(domain.DateFormat)])
		if !ok {
			continue
		}
		days = append(days, day)
	}

	return &RangeResponse{Days: days}, nil
}

// NextAvailable ищет ближайшие дни со свободными слотами начиная с сегодняшнего
func (uc *UseCase) NextAvailable(ctx context.Context) (*NextAvailableResponse, error) {
	now := uc.timeProvider.Now()
	today := uc.schedule.Today(now)
	last := today.AddDate(0, 0, domain.NextAvailableScanDays-1)

	occupied, err := uc.bookingRepo.GetOccupiedTimesInRange(ctx, today, last)
	if err != nil {
		uc.logger.Error("NextAvailable: failed to load occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}

	days := make([]NextAvailableDay, 0, domain.NextAvailableMaxDays)
	for date := today; !date.After(last) && len(days) < domain.NextAvailableMaxDays; date = date.AddDate(0, 0, 1) {
		day, ok := uc.dayAvailability(date, now, occupied[date.Format(domain.DateFormat)])
		if !ok || !day.HasAvailability() {
			continue
		}

		first := day.Slots
		if len(first) > domain.NextAvailableSlotsPerDay {
			first = first[:domain.NextAvailableSlotsPerDay]
		}
		days = append(days, NextAvailableDay{
			Date:           day.Date,
			Slots:          first,
			AvailableCount: len(day.Slots),
			IsToday:        day.IsToday,
		})
	}

	uc.logger.Info("NextAvailable: found %d days with free slots", len(days))
	return &NextAvailableResponse{Days: days}, nil
}

func (uc *UseCase) dayAvailability(date, now time.Time, occupied []types.TimeString) (domain.DayAvailability, bool) {
	slots, err := uc.schedule.FilterAvailable(date, now, occupied)
	if err != nil {
		return domain.DayAvailability{}, false
	}
	return domain.DayAvailability{
		Date:       date,
		Slots:      slots,
		TotalSlots: len(slots),
		IsToday:    uc.schedule.IsToday(date, now),
	}, true
}

func (uc *UseCase) validateRange(start, end time.Time) error {
	if end.Before(start) {
		return domain.NewValidationError("endDate", "must not be before startDate")
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > uc.maxRangeDays {
		return domain.NewValidationError("endDate", fmt.Sprintf("range must not exceed %d days", uc.maxRangeDays))
	}
	return nil
}

// loadOccupied читает занятые слоты из кэша, при промахе из БД с записью в кэш.
// Ошибки кэша не фатальны.
func (uc *UseCase) loadOccupied(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	occupied, found, err := uc.cache.GetOccupied(ctx, date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: cache read failed, falling back to database: %v", err)
	}
	if found {
		uc.metrics.IncSlotCache(true)
		return occupied, nil
	}
	uc.metrics.IncSlotCache(false)

	occupied, err = uc.bookingRepo.GetOccupiedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetOccupied(ctx, date, occupied); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache write failed: %v", err)
	}
	return occupied, nil
}
