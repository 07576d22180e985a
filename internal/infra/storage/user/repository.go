package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/OtoCare-BookingService/pkg/psqlbuilder"
)

// Repository хранит клиентов по номеру телефона
type Repository struct {
	db  DBExecutor
	now func() time.Time
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, now: time.Now}
}

// GetByPhone возвращает пользователя по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone", "name", "email", "created_at").
		From("users").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var (
		user      domain.User
		email     sql.NullString
		createdAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.Phone, &user.Name, &email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan user: %v", ErrScanRow, err)
	}

	if email.Valid {
		user.Email = &email.String
	}
	user.CreatedAt = createdAt.Time

	return &user, nil
}

// Upsert создаёт пользователя или обновляет имя и email существующего.
// CreatedAt существующего пользователя не меняется
func (r *Repository) Upsert(ctx context.Context, user *domain.User) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("phone", "name", "email", "created_at").
		Values(user.Phone, user.Name, user.Email, r.now().UTC().Truncate(time.Microsecond)).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = excluded.name, email = excluded.email").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
