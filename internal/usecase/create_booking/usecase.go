package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/curbside-pickup/internal/domain"
	bookingRepo "github.com/m04kA/curbside-pickup/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	tokenIssuer  TokenIssuer
	cache        SlotCache
	notifier     Notifier
	metrics      Metrics
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	tokenIssuer TokenIssuer,
	cache SlotCache,
	notifier Notifier,
	metrics Metrics,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		tokenIssuer:  tokenIssuer,
		cache:        cache,
		notifier:     notifier,
		metrics:      metrics,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции,
// письма отправляются после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date, start, err := parseSlot(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: date=%s, time=%s", date.Format(domain.DateFormat), start)

	// 2. Проверяем дату и время по расписанию
	now := uc.timeProvider.Now()
	if err := uc.schedule.CheckBookable(date, start, now); err != nil {
		uc.logger.Warn("CreateBooking: slot %s %s rejected: %v", date.Format(domain.DateFormat), start, err)
		return nil, err
	}

	end, err := uc.schedule.EndTime(start)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate end time for %s: %v", start, err)
		return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
	}

	// 3. Выпускаем токены
	pair, err := uc.tokenIssuer.Issue()
	if err != nil {
		uc.logger.Error("CreateBooking: failed to issue tokens: %v", err)
		return nil, fmt.Errorf("%w: failed to issue tokens: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		BookingDate:         date,
		StartTime:           start,
		EndTime:             end,
		Status:              domain.StatusPending,
		BookingToken:        pair.BookingToken,
		AdminToken:          pair.AdminToken,
		SpecialInstructions: req.SpecialInstructions,
		ItemsDescription:    req.ItemsDescription,
	}

	var result *domain.Booking

	// 4. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот занимают pending, confirmed и declined бронирования
		exists, err := uc.bookingRepo.ExistsActiveAtSlot(txCtx, date, start)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if exists {
			return domain.ErrSlotTaken
		}

		// 4.2. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return domain.ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурентная транзакция заняла слот раньше нас
		if errors.Is(err, domain.ErrSlotTaken) || bookingRepo.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: slot %s %s is already taken", date.Format(domain.DateFormat), start)
			return nil, domain.ErrSlotTaken
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	uc.metrics.IncBookingCreated()

	// 5. Занятость даты изменилась
	if err := uc.cache.Invalidate(ctx, date); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate slot cache for %s: %v", date.Format(domain.DateFormat), err)
	}

	// 6. Уведомления. Ошибки отправки не влияют на результат.
	uc.notifier.SendCustomerConfirmation(ctx, result)
	uc.notifier.SendStaffNotification(ctx, result)

	return &Response{
		ID:           result.ID,
		CustomerName: result.CustomerName,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       result.Status,
		CreatedAt:    result.CreatedAt,
	}, nil
}
