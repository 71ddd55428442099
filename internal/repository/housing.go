package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/db"
	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type housingRepository struct {
	db *sqlx.DB
}

func newHousingRepository(db *sqlx.DB) *housingRepository {
	return &housingRepository{
		db: db,
	}
}

func (r *housingRepository) GetAll(ctx context.Context) ([]domain.Housing, error) {
	const query = `SELECT id, city_id, zip, address, rent, sq_ft FROM housing ORDER BY id ASC;`

	housing := []domain.Housing{}
	if err := r.db.SelectContext(ctx, &housing, query); err != nil {
		return nil, fmt.Errorf("select from housing failed: %w", err)
	}
	return housing, nil
}

func (r *housingRepository) GetOneByID(ctx context.Context, id int64) (*domain.Housing, error) {
	const query = `SELECT id, city_id, zip, address, rent, sq_ft FROM housing WHERE id = ?;`

	var housing domain.Housing
	if err := r.db.GetContext(ctx, &housing, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from housing by id failed: %w", err)
	}
	return &housing, nil
}

// Create resolves cityName and inserts the row in one transaction. An unknown
// city yields domain.ErrReferenceNotFound.
func (r *housingRepository) Create(ctx context.Context, housing *domain.Housing, cityName string) (int64, error) {
	const query = `
	INSERT INTO housing (city_id, zip, address, rent, sq_ft)
	VALUES (?, ?, ?, ?, ?);
	`
	var id int64
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		cityID, err := cityIDByName(ctx, tx, cityName)
		if err != nil {
			return err
		}
		housing.CityID = cityID

		id, err = insert(ctx, tx, "housing", query,
			housing.CityID,
			housing.Zip,
			housing.Address,
			housing.Rent,
			housing.SqFt,
		)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies the supplied fields. When CityName is set it is resolved to
// a city id inside the same transaction.
func (r *housingRepository) Update(ctx context.Context, id int64, upd domain.HousingUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var b updateBuilder
		if upd.CityName != nil {
			cityID, err := cityIDByName(ctx, tx, *upd.CityName)
			if err != nil {
				return err
			}
			b.set("city_id", cityID)
		}
		setIf(&b, "zip", upd.Zip)
		setIf(&b, "address", upd.Address)
		setIf(&b, "rent", upd.Rent)
		setIf(&b, "sq_ft", upd.SqFt)
		return b.exec(ctx, tx, "housing", "id = ?", id)
	})
}

func (r *housingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM housing WHERE id = ?;`
	return remove(ctx, r.db, "housing", query, id)
}

func cityIDByName(ctx context.Context, q db.Querier, name string) (int64, error) {
	const query = `SELECT id FROM city WHERE name = ?;`

	var id int64
	if err := q.GetContext(ctx, &id, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrReferenceNotFound
		}
		return 0, fmt.Errorf("select city id by name failed: %w", err)
	}
	return id, nil
}
