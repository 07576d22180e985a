package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/OtoCare-BookingService/pkg/psqlbuilder"
)

// Repository читает справочные данные, которые показываются до бронирования
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCities возвращает отсортированные города, в которых есть хотя бы один гараж
func (r *Repository) ListCities(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("c.name").
		Distinct().
		From("cities c").
		Join("garages g ON g.city = c.name").
		OrderBy("c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	cities := make([]string, 0)
	err = r.query(ctx, "ListCities", query, args, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		cities = append(cities, name)
		return nil
	})
	return cities, err
}

// ListGaragesByCity возвращает гаражи города, отсортированные по имени
func (r *Repository) ListGaragesByCity(ctx context.Context, city string) ([]*domain.Garage, error) {
	query, args, err := psqlbuilder.Select("id", "city", "name", "address", "phone").
		From("garages").
		Where(squirrel.Eq{"city": city}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGaragesByCity - build select query: %v", ErrBuildQuery, err)
	}

	garages := make([]*domain.Garage, 0)
	err = r.query(ctx, "ListGaragesByCity", query, args, func(rows *sql.Rows) error {
		var (
			g     domain.Garage
			phone sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.City, &g.Name, &g.Address, &phone); err != nil {
			return err
		}
		if phone.Valid {
			g.Phone = &phone.String
		}
		garages = append(garages, &g)
		return nil
	})
	return garages, err
}

// ListWorkingHours возвращает часы работы, упорядоченные по id
func (r *Repository) ListWorkingHours(ctx context.Context) ([]*domain.WorkingHours, error) {
	query, args, err := psqlbuilder.Select("id", "day_label", "open_time", "close_time").
		From("working_hours").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	hours := make([]*domain.WorkingHours, 0)
	err = r.query(ctx, "ListWorkingHours", query, args, func(rows *sql.Rows) error {
		var h domain.WorkingHours
		if err := rows.Scan(&h.ID, &h.DayLabel, &h.OpenTime, &h.CloseTime); err != nil {
			return err
		}
		hours = append(hours, &h)
		return nil
	})
	return hours, err
}

// ListPackages возвращает все пакеты услуг, упорядоченные по цене
func (r *Repository) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	query, args, err := psqlbuilder.Select("id", "name", "description", "price").
		From("packages").
		OrderBy("price", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - build select query: %v", ErrBuildQuery, err)
	}

	packages := make([]*domain.Package, 0)
	err = r.query(ctx, "ListPackages", query, args, func(rows *sql.Rows) error {
		var (
			p           domain.Package
			description sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Price); err != nil {
			return err
		}
		if description.Valid {
			p.Description = &description.String
		}
		packages = append(packages, &p)
		return nil
	})
	return packages, err
}

// ListBanners возвращает баннеры одного типа в порядке показа
func (r *Repository) ListBanners(ctx context.Context, kind domain.BannerKind) ([]*domain.Banner, error) {
	query, args, err := psqlbuilder.Select("id", "kind", "image_url", "title", "sort_order").
		From("banners").
		Where(squirrel.Eq{"kind": string(kind)}).
		OrderBy("sort_order", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBanners - build select query: %v", ErrBuildQuery, err)
	}

	banners := make([]*domain.Banner, 0)
	err = r.query(ctx, "ListBanners", query, args, func(rows *sql.Rows) error {
		var (
			b     domain.Banner
			kind  string
			title sql.NullString
		)
		if err := rows.Scan(&b.ID, &kind, &b.ImageURL, &title, &b.SortOrder); err != nil {
			return err
		}
		b.Kind = domain.BannerKind(kind)
		if title.Valid {
			b.Title = &title.String
		}
		banners = append(banners, &b)
		return nil
	})
	return banners, err
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}, scan func(rows *sql.Rows) error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrScanRow, op, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}
	return nil
}
