package repository

import (
	"context"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

const (
	hospitalTable = "hospital"
	airportTable  = "airport"
)

// facilityRepository serves the hospital and airport tables, which share a shape.
type facilityRepository struct {
	db    *sqlx.DB
	table string
}

func newFacilityRepository(db *sqlx.DB, table string) *facilityRepository {
	return &facilityRepository{
		db:    db,
		table: table,
	}
}

func (r *facilityRepository) GetAll(ctx context.Context) ([]domain.Facility, error) {
	query := `SELECT id, name, city_id, zip FROM ` + r.table + ` ORDER BY name ASC, id ASC;`
	return r.selectFacilities(ctx, "all", query)
}

func (r *facilityRepository) GetByCityID(ctx context.Context, cityID int64) ([]domain.Facility, error) {
	query := `SELECT id, name, city_id, zip FROM ` + r.table + ` WHERE city_id = ? ORDER BY name ASC, id ASC;`
	return r.selectFacilities(ctx, "city id", query, cityID)
}

func (r *facilityRepository) GetByCityName(ctx context.Context, cityName string) ([]domain.Facility, error) {
	query := `
	SELECT f.id, f.name, f.city_id, f.zip FROM ` + r.table + ` f
	JOIN city c ON c.id = f.city_id
	WHERE c.name = ?
	ORDER BY f.name ASC, f.id ASC;
	`
	return r.selectFacilities(ctx, "city name", query, cityName)
}

func (r *facilityRepository) Create(ctx context.Context, facility *domain.Facility) (int64, error) {
	query := `INSERT INTO ` + r.table + ` (name, city_id, zip) VALUES (?, ?, ?);`
	return insert(ctx, r.db, r.table, query, facility.Name, facility.CityID, facility.Zip)
}

func (r *facilityRepository) Update(ctx context.Context, id int64, upd domain.FacilityUpdate) error {
	var b updateBuilder
	setIf(&b, "name", upd.Name)
	setIf(&b, "city_id", upd.CityID)
	setIf(&b, "zip", upd.Zip)
	return b.exec(ctx, r.db, r.table, "id = ?", id)
}

func (r *facilityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM ` + r.table + ` WHERE id = ?;`
	return remove(ctx, r.db, r.table, query, id)
}

func (r *facilityRepository) selectFacilities(ctx context.Context, by, query string, args ...interface{}) ([]domain.Facility, error) {
	facilities := []domain.Facility{}
	if err := r.db.SelectContext(ctx, &facilities, query, args...); err != nil {
		return nil, fmt.Errorf("select from %s by %s failed: %w", r.table, by, err)
	}
	return facilities, nil
}
