package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type locationRepository struct {
	db *sqlx.DB
}

func newLocationRepository(db *sqlx.DB) *locationRepository {
	return &locationRepository{
		db: db,
	}
}

func (r *locationRepository) GetAll(ctx context.Context) ([]domain.Location, error) {
	const query = `SELECT zip, city_id, student_population, safety_rating FROM location ORDER BY zip ASC;`

	locations := []domain.Location{}
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("select from location failed: %w", err)
	}
	return locations, nil
}

func (r *locationRepository) GetOneByZip(ctx context.Context, zip string) (*domain.Location, error) {
	const query = `SELECT zip, city_id, student_population, safety_rating FROM location WHERE zip = ?;`

	var location domain.Location
	if err := r.db.GetContext(ctx, &location, query, zip); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from location by zip failed: %w", err)
	}
	return &location, nil
}

func (r *locationRepository) GetZipCodes(ctx context.Context) ([]string, error) {
	const query = `SELECT zip FROM location ORDER BY zip ASC;`

	zips := []string{}
	if err := r.db.SelectContext(ctx, &zips, query); err != nil {
		return nil, fmt.Errorf("select zip codes failed: %w", err)
	}
	return zips, nil
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	const query = `
	INSERT INTO location (zip, city_id, student_population, safety_rating)
	VALUES (?, ?, ?, ?);
	`
	_, err := insert(ctx, r.db, "location", query,
		location.Zip,
		location.CityID,
		location.StudentPopulation,
		location.SafetyRating,
	)
	return err
}

func (r *locationRepository) Update(ctx context.Context, zip string, upd domain.LocationUpdate) error {
	var b updateBuilder
	setIf(&b, "city_id", upd.CityID)
	setIf(&b, "student_population", upd.StudentPopulation)
	setIf(&b, "safety_rating", upd.SafetyRating)
	return b.exec(ctx, r.db, "location", "zip = ?", zip)
}

func (r *locationRepository) Delete(ctx context.Context, zip string) error {
	const query = `DELETE FROM location WHERE zip = ?;`
	return remove(ctx, r.db, "location", query, zip)
}

func (r *locationRepository) GetSafetyRatingsByCityName(ctx context.Context, cityName string) ([]domain.ZipSafetyRating, error) {
	const query = `
	SELECT l.zip, l.safety_rating
	FROM location l
	JOIN city c ON c.id = l.city_id
	WHERE c.name = ?
	ORDER BY l.zip ASC;
	`
	ratings := []domain.ZipSafetyRating{}
	if err := r.db.SelectContext(ctx, &ratings, query, cityName); err != nil {
		return nil, fmt.Errorf("select safety ratings by city failed: %w", err)
	}
	return ratings, nil
}

func (r *locationRepository) GetStudentPopulationsByCityName(ctx context.Context, cityName string) ([]domain.ZipStudentPopulation, error) {
	const query = `
	SELECT l.zip, l.student_population
	FROM location l
	JOIN city c ON c.id = l.city_id
	WHERE c.name = ?
	ORDER BY l.zip ASC;
	`
	populations := []domain.ZipStudentPopulation{}
	if err := r.db.SelectContext(ctx, &populations, query, cityName); err != nil {
		return nil, fmt.Errorf("select student populations by city failed: %w", err)
	}
	return populations, nil
}

// SumStudentPopulationByCityName returns domain.ErrNotFound when the city has
// no zip codes.
func (r *locationRepository) SumStudentPopulationByCityName(ctx context.Context, cityName string) (int64, error) {
	const query = `
	SELECT SUM(l.student_population)
	FROM location l
	JOIN city c ON c.id = l.city_id
	WHERE c.name = ?;
	`
	var total sql.NullInt64
	if err := r.db.GetContext(ctx, &total, query, cityName); err != nil {
		return 0, fmt.Errorf("sum student population failed: %w", err)
	}
	if !total.Valid {
		return 0, domain.ErrNotFound
	}
	return total.Int64, nil
}
