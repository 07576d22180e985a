package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/pkg/dberrors"
	"github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/OtoCare-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"booking_date",
	"garage_id",
	"time_slot_id",
	"customer_phone",
	"package_id",
	"notes",
	"created_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db  DBExecutor
	now func() time.Time
}

// NewRepository создает новый репозиторий бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

// ListBookedSlotIDs возвращает занятые слоты гаража на дату по возрастанию.
// Оба фильтра проверяются на точное совпадение
func (r *Repository) ListBookedSlotIDs(ctx context.Context, date, garageID string) ([]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("time_slot_id").
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"garage_id":    garageID,
		}).
		OrderBy("time_slot_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int, 0, domain.SlotsPerDay)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListBookedSlotIDs - scan slot id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlotIDs - iterate rows: %v", ErrExecQuery, err)
	}

	return ids, nil
}

// CreateIfSlotFree вставляет бронь, если слот свободен.
// Проверка и запись выполняются одним запросом под индексом bookings_slot_uidx:
// из конкурентных вызовов на один слот успешен ровно один, остальные получают ErrSlotTaken
func (r *Repository) CreateIfSlotFree(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	createdAt := r.now().UTC().Truncate(time.Microsecond)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"garage_id",
			"time_slot_id",
			"customer_phone",
			"package_id",
			"notes",
			"created_at",
		).
		Values(
			booking.Date,
			booking.GarageID,
			booking.TimeSlotID,
			booking.CustomerPhone,
			booking.PackageID,
			booking.Notes,
			createdAt,
		).
		Suffix("ON CONFLICT (booking_date, garage_id, time_slot_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateIfSlotFree - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// ON CONFLICT DO NOTHING не возвращает строку
		return nil, ErrSlotTaken
	case dberrors.IsUniqueViolation(err):
		return nil, ErrSlotTaken
	case err != nil:
		return nil, fmt.Errorf("%w: CreateIfSlotFree - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt
	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByCustomer возвращает бронирования клиента, новые первыми
func (r *Repository) ListByCustomer(ctx context.Context, phone string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("booking_date DESC", "time_slot_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, "ListByCustomer", query, args)
}

// ListByGarageAndDate возвращает брони гаража на день, упорядоченные по слоту
func (r *Repository) ListByGarageAndDate(ctx context.Context, garageID, date string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"garage_id":    garageID,
		}).
		OrderBy("time_slot_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGarageAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, "ListByGarageAndDate", query, args)
}

func (r *Repository) list(ctx context.Context, op, query string, args []interface{}) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		packageID sql.NullString
		notes     sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.GarageID,
		&booking.TimeSlotID,
		&booking.CustomerPhone,
		&packageID,
		&notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.PackageID = nullString(packageID)
	booking.Notes = nullString(notes)
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
