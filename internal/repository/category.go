package repository

import (
	"context"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type categoryRepository struct {
	db *sqlx.DB
}

func newCategoryRepository(db *sqlx.DB) *categoryRepository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT id, name FROM category ORDER BY id ASC;`

	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("select from category failed: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, name string) (int64, error) {
	const query = `INSERT INTO category (name) VALUES (?);`
	return insert(ctx, r.db, "category", query, name)
}
