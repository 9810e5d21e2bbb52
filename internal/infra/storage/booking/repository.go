package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/dbmetrics"
	"github.com/m04kA/curbside-pickup/pkg/psqlbuilder"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"booking_token",
	"admin_token",
	"special_instructions",
	"items_description",
	"customer_confirmation_sent",
	"staff_notification_sent",
	"final_confirmation_sent",
	"decline_notification_sent",
	"created_at",
	"updated_at",
}

var emailFlagColumns = map[domain.EmailKind]string{
	domain.EmailCustomerConfirmation: "customer_confirmation_sent",
	domain.EmailStaffNotification:    "staff_notification_sent",
	domain.EmailFinalConfirmation:    "final_confirmation_sent",
	domain.EmailDeclineNotification:  "decline_notification_sent",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Нарушение уникального индекса по активному слоту возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"booking_token",
			"admin_token",
			"special_instructions",
			"items_description",
		).
		Values(
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.BookingToken,
			booking.AdminToken,
			booking.SpecialInstructions,
			booking.ItemsDescription,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) || IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: Create - %s %s: %v", ErrSlotTaken,
				booking.BookingDate.Format(domain.DateFormat), booking.StartTime, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByBookingToken получает бронирование по токену клиента
func (r *Repository) GetByBookingToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByBookingToken", squirrel.Eq{"booking_token": token})
}

// GetByAdminToken получает бронирование по токену персонала
func (r *Repository) GetByAdminToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByAdminToken", squirrel.Eq{"admin_token": token})
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	return booking, nil
}

// ExistsActiveAtSlot проверяет, есть ли бронирование, занимающее слот (pending, confirmed, declined).
// Внутри транзакции найденные строки блокируются (FOR UPDATE).
func (r *Repository) ExistsActiveAtSlot(ctx context.Context, date time.Time, start types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From(bookingsTable).
		Where(squirrel.Eq{
			"booking_date": date.Format(domain.DateFormat),
			"start_time":   start,
			"status":       statusStrings(domain.SlotHoldingStatuses),
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAtSlot - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// GetOccupiedTimes возвращает занятые времена начала на дату, по возрастанию
func (r *Repository) GetOccupiedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	occupied, err := r.GetOccupiedTimesInRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	return occupied[date.Format(domain.DateFormat)], nil
}

// GetOccupiedTimesInRange возвращает занятые времена по датам [from, to] одним запросом.
// Ключ - дата в формате domain.DateFormat.
func (r *Repository) GetOccupiedTimesInRange(ctx context.Context, from, to time.Time) (map[string][]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_date", "start_time").
		From(bookingsTable).
		Where(squirrel.GtOrEq{"booking_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"booking_date": to.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": statusStrings(domain.SlotHoldingStatuses)}).
		OrderBy("booking_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimesInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimesInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupied := make(map[string][]types.TimeString)
	for rows.Next() {
		var date time.Time
		var start types.TimeString
		if err := rows.Scan(&date, &start); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedTimesInRange - scan row: %v", ErrScanRow, err)
		}
		key := date.Format(domain.DateFormat)
		occupied[key] = append(occupied[key], start)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimesInRange - rows error: %v", ErrScanRow, err)
	}

	return occupied, nil
}

// List возвращает бронирования по фильтру, отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From(bookingsTable), filter).
		OrderBy("booking_date ASC", "start_time ASC", "id ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Count возвращает количество бронирований по фильтру (без учета пагинации)
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(bookingsTable), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Stats считает сводку одним запросом относительно даты today
func (r *Repository) Stats(ctx context.Context, today time.Time) (*domain.BookingStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	todayStr := today.Format(domain.DateFormat)
	upcomingEnd := today.AddDate(0, 0, domain.StatsUpcomingDays).Format(domain.DateFormat)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE booking_date = ?)", todayStr)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.StatusPending)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.StatusConfirmed)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE booking_date >= ? AND booking_date < ?)", todayStr, upcomingEnd)).
		From(bookingsTable).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.BookingStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Today,
		&stats.Pending,
		&stats.Confirmed,
		&stats.Upcoming,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - execute query: %v", ErrExecQuery, err)
	}

	return &stats, nil
}

// TransitionStatus переводит бронирование из статуса from в статус to одним условным UPDATE.
// Возвращает false, если статус к моменту записи уже не равен from (или бронирования нет).
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: TransitionStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: TransitionStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// MarkEmailSent выставляет флаг отправки уведомления
func (r *Repository) MarkEmailSent(ctx context.Context, id int64, kind domain.EmailKind) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	column, ok := emailFlagColumns[kind]
	if !ok {
		return fmt.Errorf("%w: MarkEmailSent - unknown email kind %q", ErrBuildQuery, kind)
	}

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set(column, true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkEmailSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkEmailSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkEmailSent - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		b = b.Where(squirrel.GtOrEq{"booking_date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		b = b.Where(squirrel.LtOrEq{"booking_date": filter.DateTo.Format(domain.DateFormat)})
	}
	return b
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.BookingToken,
		&booking.AdminToken,
		&booking.SpecialInstructions,
		&booking.ItemsDescription,
		&booking.CustomerConfirmationSent,
		&booking.StaffNotificationSent,
		&booking.FinalConfirmationSent,
		&booking.DeclineNotificationSent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = domain.NormalizeDate(booking.BookingDate)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
