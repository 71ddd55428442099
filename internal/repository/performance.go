package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type performanceRepository struct {
	db *sqlx.DB
}

func newPerformanceRepository(db *sqlx.DB) *performanceRepository {
	return &performanceRepository{
		db: db,
	}
}

// GetDates returns the distinct recorded days, newest first.
func (r *performanceRepository) GetDates(ctx context.Context) ([]domain.Date, error) {
	const query = `SELECT DISTINCT recorded_on FROM performance ORDER BY recorded_on DESC;`

	dates := []domain.Date{}
	if err := r.db.SelectContext(ctx, &dates, query); err != nil {
		return nil, fmt.Errorf("select performance dates failed: %w", err)
	}
	return dates, nil
}

func (r *performanceRepository) GetByDate(ctx context.Context, date domain.Date) (*domain.Performance, error) {
	const query = `
	SELECT id, recorded_on, cpu_usage, memory_usage, network_usage, disk_usage
	FROM performance WHERE recorded_on = ?;
	`
	var perf domain.Performance
	if err := r.db.GetContext(ctx, &perf, query, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select performance by date failed: %w", err)
	}
	return &perf, nil
}

func (r *performanceRepository) Create(ctx context.Context, perf *domain.Performance) (int64, error) {
	const query = `
	INSERT INTO performance (recorded_on, cpu_usage, memory_usage, network_usage, disk_usage)
	VALUES (?, ?, ?, ?, ?);
	`
	return insert(ctx, r.db, "performance", query,
		perf.RecordedOn,
		perf.CPUUsage,
		perf.MemoryUsage,
		perf.NetworkUsage,
		perf.DiskUsage,
	)
}

func (r *performanceRepository) Update(ctx context.Context, date domain.Date, upd domain.PerformanceUpdate) error {
	var b updateBuilder
	setIf(&b, "cpu_usage", upd.CPUUsage)
	setIf(&b, "memory_usage", upd.MemoryUsage)
	setIf(&b, "network_usage", upd.NetworkUsage)
	setIf(&b, "disk_usage", upd.DiskUsage)
	return b.exec(ctx, r.db, "performance", "recorded_on = ?", date)
}

func (r *performanceRepository) Delete(ctx context.Context, date domain.Date) error {
	const query = `DELETE FROM performance WHERE recorded_on = ?;`
	return remove(ctx, r.db, "performance", query, date)
}
