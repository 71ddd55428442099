package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

const subletColumns = `id, housing_id, subletter_id, start_date, end_date`

type subletRepository struct {
	db *sqlx.DB
}

func newSubletRepository(db *sqlx.DB) *subletRepository {
	return &subletRepository{
		db: db,
	}
}

func (r *subletRepository) GetAll(ctx context.Context) ([]domain.Sublet, error) {
	const query = `SELECT ` + subletColumns + ` FROM sublet ORDER BY start_date ASC, id ASC;`
	return r.selectSublets(ctx, "all", query)
}

func (r *subletRepository) GetOneByID(ctx context.Context, id int64) (*domain.Sublet, error) {
	const query = `SELECT ` + subletColumns + ` FROM sublet WHERE id = ?;`

	var sublet domain.Sublet
	if err := r.db.GetContext(ctx, &sublet, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from sublet by id failed: %w", err)
	}
	return &sublet, nil
}

func (r *subletRepository) GetBySubletter(ctx context.Context, userID int64) ([]domain.Sublet, error) {
	const query = `SELECT ` + subletColumns + ` FROM sublet WHERE subletter_id = ? ORDER BY start_date ASC, id ASC;`
	return r.selectSublets(ctx, "subletter", query, userID)
}

// GetWithin lists sublets that start on or after start and end on or before end.
func (r *subletRepository) GetWithin(ctx context.Context, start, end domain.Date) ([]domain.Sublet, error) {
	const query = `
	SELECT ` + subletColumns + ` FROM sublet
	WHERE start_date >= ? AND end_date <= ?
	ORDER BY start_date ASC, id ASC;
	`
	return r.selectSublets(ctx, "dates", query, start, end)
}

func (r *subletRepository) Create(ctx context.Context, sublet *domain.Sublet) (int64, error) {
	const query = `
	INSERT INTO sublet (housing_id, subletter_id, start_date, end_date)
	VALUES (?, ?, ?, ?);
	`
	return insert(ctx, r.db, "sublet", query,
		sublet.HousingID,
		sublet.SubletterID,
		sublet.StartDate,
		sublet.EndDate,
	)
}

func (r *subletRepository) Update(ctx context.Context, id int64, upd domain.SubletUpdate) error {
	var b updateBuilder
	setIf(&b, "housing_id", upd.HousingID)
	setIf(&b, "start_date", upd.StartDate)
	setIf(&b, "end_date", upd.EndDate)
	return b.exec(ctx, r.db, "sublet", "id = ?", id)
}

func (r *subletRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM sublet WHERE id = ?;`
	return remove(ctx, r.db, "sublet", query, id)
}

func (r *subletRepository) selectSublets(ctx context.Context, by, query string, args ...interface{}) ([]domain.Sublet, error) {
	sublets := []domain.Sublet{}
	if err := r.db.SelectContext(ctx, &sublets, query, args...); err != nil {
		return nil, fmt.Errorf("select sublets by %s failed: %w", by, err)
	}
	return sublets, nil
}
