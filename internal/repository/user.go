package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userWithCategorySelect = `
	SELECT u.id, u.name, u.email, u.phone_number, u.category_id, u.current_city_id,
		u.created_at, u.last_login_at, c.name AS category_name
	FROM user u
	JOIN category c ON c.id = u.category_id
`

type userRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.UserWithCategory, error) {
	const query = userWithCategorySelect + ` ORDER BY u.id ASC;`
	return r.selectUsers(ctx, "all", query)
}

func (r *userRepository) GetOneByID(ctx context.Context, id int64) (*domain.UserWithCategory, error) {
	const query = userWithCategorySelect + ` WHERE u.id = ?;`
	return r.getUser(ctx, "id", query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.UserWithCategory, error) {
	const query = userWithCategorySelect + ` WHERE u.email = ?;`
	return r.getUser(ctx, "email", query, email)
}

// Search matches term as a substring of the name or email.
func (r *userRepository) Search(ctx context.Context, term string) ([]domain.UserWithCategory, error) {
	const query = userWithCategorySelect + ` WHERE u.name LIKE ? OR u.email LIKE ? ORDER BY u.name ASC;`
	pattern := "%" + term + "%"
	return r.selectUsers(ctx, "search", query, pattern, pattern)
}

func (r *userRepository) GetByCategory(ctx context.Context, category string) ([]domain.UserWithCategory, error) {
	const query = userWithCategorySelect + ` WHERE c.name = ? ORDER BY u.id ASC;`
	return r.selectUsers(ctx, "category", query, category)
}

// GetByCity lists users living in a city. An empty category matches every category.
func (r *userRepository) GetByCity(ctx context.Context, cityID int64, category string) ([]domain.UserWithCategory, error) {
	if category == "" {
		const query = userWithCategorySelect + ` WHERE u.current_city_id = ? ORDER BY u.id ASC;`
		return r.selectUsers(ctx, "city", query, cityID)
	}
	const query = userWithCategorySelect + ` WHERE u.current_city_id = ? AND c.name = ? ORDER BY u.id ASC;`
	return r.selectUsers(ctx, "city and category", query, cityID, category)
}

func (r *userRepository) GetCreatedAfter(ctx context.Context, after time.Time) ([]domain.UserWithCategory, error) {
	const query = userWithCategorySelect + ` WHERE u.created_at > ? ORDER BY u.created_at ASC;`
	return r.selectUsers(ctx, "created after", query, after.UTC())
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	const query = `
	INSERT INTO user (name, email, phone_number, category_id, current_city_id, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC().Truncate(time.Second)
	}
	return insert(ctx, r.db, "user", query,
		user.Name,
		user.Email,
		user.PhoneNumber,
		user.CategoryID,
		user.CurrentCityID,
		createdAt,
	)
}

func (r *userRepository) Update(ctx context.Context, id int64, upd domain.UserUpdate) error {
	var b updateBuilder
	setIf(&b, "name", upd.Name)
	setIf(&b, "email", upd.Email)
	setIf(&b, "phone_number", upd.PhoneNumber)
	setIf(&b, "category_id", upd.CategoryID)
	setIf(&b, "current_city_id", upd.CurrentCityID)
	return b.exec(ctx, r.db, "user", "id = ?", id)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM user WHERE id = ?;`
	return remove(ctx, r.db, "user", query, id)
}

func (r *userRepository) getUser(ctx context.Context, by, query string, arg interface{}) (*domain.UserWithCategory, error) {
	var user domain.UserWithCategory
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by %s failed: %w", by, err)
	}
	return &user, nil
}

func (r *userRepository) selectUsers(ctx context.Context, by, query string, args ...interface{}) ([]domain.UserWithCategory, error) {
	users := []domain.UserWithCategory{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("select users by %s failed: %w", by, err)
	}
	return users, nil
}
