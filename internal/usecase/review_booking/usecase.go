package review_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/curbside-pickup/internal/domain"
	bookingRepo "github.com/m04kA/curbside-pickup/internal/infra/storage/booking"
)

// UseCase use case для подтверждения и отклонения бронирования персоналом
type UseCase struct {
	bookingRepo BookingRepository
	notifier    Notifier
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Preview возвращает бронирование и возможность выполнить действие. Статус не меняется.
func (uc *UseCase) Preview(ctx context.Context, req *Request) (*PreviewResponse, error) {
	if err := validateAction(req.Action); err != nil {
		return nil, err
	}

	booking, err := uc.load(ctx, "ReviewPreview", req.AdminToken)
	if err != nil {
		return nil, err
	}

	resp := &PreviewResponse{
		Booking:    toSummary(booking),
		Action:     req.Action,
		CanPerform: true,
	}

	var transitionErr *domain.TransitionError
	if _, err := domain.CheckTransition(req.Action, booking.Status); errors.As(err, &transitionErr) {
		resp.CanPerform = false
		resp.Reason = transitionErr.Reason
	}

	return resp, nil
}

// Execute выполняет действие персонала.
// Статус меняется условным UPDATE, поэтому из двух одновременных действий проходит одно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация действия
	if err := validateAction(req.Action); err != nil {
		return nil, err
	}

	// 2. Получаем бронирование по токену персонала
	booking, err := uc.load(ctx, "ReviewBooking", req.AdminToken)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReviewBooking: action=%s, booking id=%d, status=%s", req.Action, booking.ID, booking.Status)

	// 3. Проверяем переход по текущему статусу
	to, err := domain.CheckTransition(req.Action, booking.Status)
	if err != nil {
		uc.logger.Warn("ReviewBooking: booking id=%d: %v", booking.ID, err)
		return nil, err
	}

	// 4. Условный переход pending -> to
	ok, err := uc.bookingRepo.TransitionStatus(ctx, booking.ID, booking.Status, to)
	if err != nil {
		uc.logger.Error("ReviewBooking: failed to update booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}
	if !ok {
		return nil, uc.lostRace(ctx, req)
	}

	booking.Status = to
	uc.metrics.IncBookingTransition(string(to))
	uc.logger.Info("ReviewBooking: booking id=%d is now %s", booking.ID, to)

	// 5. Письмо клиенту после фиксации статуса
	switch to {
	case domain.StatusConfirmed:
		uc.notifier.SendFinalConfirmation(ctx, booking)
	case domain.StatusDeclined:
		uc.notifier.SendDeclineNotification(ctx, booking)
	}

	return &Response{Booking: toSummary(booking)}, nil
}

// lostRace перечитывает бронирование после неудачного условного UPDATE
// и возвращает причину по актуальному статусу
func (uc *UseCase) lostRace(ctx context.Context, req *Request) error {
	current, err := uc.load(ctx, "ReviewBooking", req.AdminToken)
	if err != nil {
		return err
	}

	_, err = domain.CheckTransition(req.Action, current.Status)
	if err == nil {
		// Статус снова pending быть не может, переходы из терминальных статусов запрещены
		uc.logger.Error("ReviewBooking: booking id=%d not updated but still %s", current.ID, current.Status)
		return fmt.Errorf("%w: conditional update for booking id=%d affected no rows", ErrInternal, current.ID)
	}

	uc.logger.Warn("ReviewBooking: booking id=%d changed concurrently: %v", current.ID, err)
	return err
}

func (uc *UseCase) load(ctx context.Context, method, token string) (*domain.Booking, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}

	booking, err := uc.bookingRepo.GetByAdminToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("%s: booking not found by admin token", method)
			return nil, domain.ErrNotFound
		}
		uc.logger.Error("%s: failed to get booking: %v", method, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func validateAction(action domain.Action) error {
	if _, ok := domain.ParseAction(string(action)); !ok {
		return domain.NewValidationError("action", "must be accept or decline")
	}
	return nil
}
