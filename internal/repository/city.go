package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

const cityColumns = `id, name, avg_cost_of_living, avg_rent, avg_wage, population, prop_hybrid_workers`

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) GetAll(ctx context.Context) ([]domain.City, error) {
	const query = `SELECT ` + cityColumns + ` FROM city ORDER BY name ASC;`

	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("select from city failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	const query = `SELECT ` + cityColumns + ` FROM city WHERE id = ?;`

	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) (int64, error) {
	const query = `
	INSERT INTO city (name, avg_cost_of_living, avg_rent, avg_wage, population, prop_hybrid_workers)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	return insert(ctx, r.db, "city", query,
		city.Name,
		city.AvgCostOfLiving,
		city.AvgRent,
		city.AvgWage,
		city.Population,
		city.PropHybridWorkers,
	)
}

func (r *cityRepository) Update(ctx context.Context, id int64, upd domain.CityUpdate) error {
	var b updateBuilder
	setIf(&b, "name", upd.Name)
	setIf(&b, "avg_cost_of_living", upd.AvgCostOfLiving)
	setIf(&b, "avg_rent", upd.AvgRent)
	setIf(&b, "avg_wage", upd.AvgWage)
	setIf(&b, "population", upd.Population)
	setIf(&b, "prop_hybrid_workers", upd.PropHybridWorkers)
	return b.exec(ctx, r.db, "city", "id = ?", id)
}

func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM city WHERE id = ?;`
	return remove(ctx, r.db, "city", query, id)
}

// GetByCostRange returns cities whose cost of living lies in [low, high],
// closest to target first.
func (r *cityRepository) GetByCostRange(ctx context.Context, target, low, high float64, limit int) ([]domain.City, error) {
	const query = `
	SELECT ` + cityColumns + ` FROM city
	WHERE avg_cost_of_living BETWEEN ? AND ?
	ORDER BY ABS(avg_cost_of_living - ?) ASC, id ASC
	LIMIT ?;
	`
	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, query, low, high, target, limit); err != nil {
		return nil, fmt.Errorf("select city by cost range failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) GetNationalAverages(ctx context.Context) (*domain.NationalAverages, error) {
	const query = `
	SELECT
		COALESCE(AVG(avg_cost_of_living), 0) AS avg_cost_of_living,
		COALESCE(AVG(avg_rent), 0) AS avg_rent,
		COALESCE(AVG(avg_wage), 0) AS avg_wage
	FROM city;
	`
	var avg domain.NationalAverages
	if err := r.db.GetContext(ctx, &avg, query); err != nil {
		return nil, fmt.Errorf("select national averages failed: %w", err)
	}
	return &avg, nil
}

// proportionEpsilon absorbs float error at the edge of the tolerance window,
// so |0.7-0.8| and |0.7-0.6| both count as 0.1.
const proportionEpsilon = 1e-9

// GetByHybridProportion returns cities whose stored proportion of hybrid
// workers is within tolerance of target, closest first.
func (r *cityRepository) GetByHybridProportion(ctx context.Context, target, tolerance float64) ([]domain.CityHybridMatch, error) {
	const query = `
	SELECT id, name, prop_hybrid_workers, ABS(prop_hybrid_workers - ?) AS difference
	FROM city
	WHERE prop_hybrid_workers IS NOT NULL AND ABS(prop_hybrid_workers - ?) <= ?
	ORDER BY difference ASC, id ASC;
	`
	matches := []domain.CityHybridMatch{}
	if err := r.db.SelectContext(ctx, &matches, query, target, target, tolerance+proportionEpsilon); err != nil {
		return nil, fmt.Errorf("select city by hybrid proportion failed: %w", err)
	}
	return matches, nil
}
