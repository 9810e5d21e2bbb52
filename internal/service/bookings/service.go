package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/curbside-pickup/internal/domain"
	bookingRepo "github.com/m04kA/curbside-pickup/internal/infra/storage/booking"
	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: отслеживание и отмена клиентом, просмотр персоналом
type Service struct {
	bookingRepo  BookingRepository
	cache        SlotCache
	metrics      Metrics
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	cache SlotCache,
	metrics Metrics,
	schedule domain.Schedule,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		cache:        cache,
		metrics:      metrics,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Track возвращает бронирование по токену клиента
func (s *Service) Track(ctx context.Context, token string) (*models.TrackResponse, error) {
	booking, err := s.getByToken(ctx, "Track", token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Track: booking id=%d, status=%s", booking.ID, booking.Status)
	return models.FromDomainTrack(booking), nil
}

// Cancel отменяет бронирование по токену клиента.
// Отменить можно только pending; подтвержденное бронирование отменяет персонал.
func (s *Service) Cancel(ctx context.Context, token string) error {
	booking, err := s.getByToken(ctx, "Cancel", token)
	if err != nil {
		return err
	}

	to, err := domain.CheckTransition(domain.ActionCancel, booking.Status)
	if err != nil {
		s.logger.Warn("Cancel: booking id=%d: %v", booking.ID, err)
		return err
	}

	ok, err := s.bookingRepo.TransitionStatus(ctx, booking.ID, booking.Status, to)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !ok {
		// Статус изменился между чтением и записью
		current, err := s.getByToken(ctx, "Cancel", token)
		if err != nil {
			return err
		}
		if _, err := domain.CheckTransition(domain.ActionCancel, current.Status); err != nil {
			s.logger.Warn("Cancel: booking id=%d changed concurrently: %v", current.ID, err)
			return err
		}
		return fmt.Errorf("%w: Cancel - conditional update for booking id=%d affected no rows", ErrInternal, current.ID)
	}

	s.metrics.IncBookingTransition(string(to))

	// Отмена освобождает слот
	if err := s.cache.Invalidate(ctx, booking.BookingDate); err != nil {
		s.logger.Warn("Cancel: failed to invalidate slot cache for %s: %v",
			booking.BookingDate.Format(domain.DateFormat), err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", booking.ID)
	return nil
}

// List возвращает страницу бронирований по фильтру, по возрастанию даты и времени
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: status=%q, date=%q, page=%d, limit=%d", req.Status, req.Date, req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(list), total)
	return models.FromDomainBookingList(list, req.Page, req.Limit, total), nil
}

// GetByID возвращает подробности бронирования для персонала
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingDetailsResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetails(booking), nil
}

// Stats возвращает сводку относительно текущей даты в часовом поясе бизнеса
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	today := s.schedule.Today(s.timeProvider.Now())

	stats, err := s.bookingRepo.Stats(ctx, today)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}

func (s *Service) getByToken(ctx context.Context, method, token string) (*domain.Booking, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}

	booking, err := s.bookingRepo.GetByBookingToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking not found by token", method)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}
