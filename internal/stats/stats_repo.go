package stats

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=stats_repo.go -destination=mock/stats_repo_mock.go -package=mock
type Repository interface {
	MedianAge(ctx context.Context) (*float64, error)
	MedianSalary(ctx context.Context) (*float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// PERCENTILE_CONT(0.5) = continuous percentile: nilai tengah untuk n ganjil,
// rata-rata dua nilai tengah untuk n genap. NULL bila tabel kosong.
func (r *repository) MedianAge(ctx context.Context) (*float64, error) {
	return r.median(ctx, `
		SELECT PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY age) AS median_age
		FROM employees
	`)
}

func (r *repository) MedianSalary(ctx context.Context) (*float64, error) {
	return r.median(ctx, `
		SELECT PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY salary) AS median_salary
		FROM employees
	`)
}

func (r *repository) median(ctx context.Context, query string) (*float64, error) {
	var value sql.NullFloat64
	err := r.db.WithContext(ctx).Raw(query).Scan(&value).Error
	if err != nil {
		return nil, err
	}
	if !value.Valid {
		return nil, nil
	}
	return &value.Float64, nil
}
