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

const jobPostingColumns = `id, title, bio, compensation, location_id, user_id`

type jobPostingRepository struct {
	db *sqlx.DB
}

func newJobPostingRepository(db *sqlx.DB) *jobPostingRepository {
	return &jobPostingRepository{
		db: db,
	}
}

func (r *jobPostingRepository) GetAll(ctx context.Context) ([]domain.JobPosting, error) {
	const query = `SELECT ` + jobPostingColumns + ` FROM job_posting ORDER BY id ASC;`
	return r.selectPostings(ctx, "all", query)
}

func (r *jobPostingRepository) GetOneByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	const query = `SELECT ` + jobPostingColumns + ` FROM job_posting WHERE id = ?;`

	var posting domain.JobPosting
	if err := r.db.GetContext(ctx, &posting, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from job_posting by id failed: %w", err)
	}
	return &posting, nil
}

func (r *jobPostingRepository) GetByUser(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	const query = `SELECT ` + jobPostingColumns + ` FROM job_posting WHERE user_id = ? ORDER BY id ASC;`
	return r.selectPostings(ctx, "user", query, userID)
}

func (r *jobPostingRepository) GetByLocation(ctx context.Context, zip string) ([]domain.JobPosting, error) {
	const query = `SELECT ` + jobPostingColumns + ` FROM job_posting WHERE location_id = ? ORDER BY id ASC;`
	return r.selectPostings(ctx, "location", query, zip)
}

// GetNotAppliedBy lists postings the student has not applied to yet.
func (r *jobPostingRepository) GetNotAppliedBy(ctx context.Context, studentID int64) ([]domain.JobPosting, error) {
	const query = `
	SELECT ` + jobPostingColumns + ` FROM job_posting jp
	WHERE NOT EXISTS (
		SELECT 1 FROM application a WHERE a.job_posting_id = jp.id AND a.student_id = ?
	)
	ORDER BY jp.id ASC;
	`
	return r.selectPostings(ctx, "not applied", query, studentID)
}

// Create resolves the owner by email and inserts the posting in one
// transaction. An unknown email yields domain.ErrReferenceNotFound.
func (r *jobPostingRepository) Create(ctx context.Context, posting *domain.JobPosting, userEmail string) (int64, error) {
	const (
		userQuery   = `SELECT id FROM user WHERE email = ?;`
		insertQuery = `
		INSERT INTO job_posting (title, bio, compensation, location_id, user_id)
		VALUES (?, ?, ?, ?, ?);
		`
	)
	var id int64
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var userID int64
		if err := tx.GetContext(ctx, &userID, userQuery, userEmail); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrReferenceNotFound
			}
			return fmt.Errorf("select user id by email failed: %w", err)
		}
		posting.UserID = userID

		var err error
		id, err = insert(ctx, tx, "job_posting", insertQuery,
			posting.Title,
			posting.Bio,
			posting.Compensation,
			posting.LocationID,
			posting.UserID,
		)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *jobPostingRepository) Update(ctx context.Context, id int64, upd domain.JobPostingUpdate) error {
	var b updateBuilder
	setIf(&b, "title", upd.Title)
	setIf(&b, "bio", upd.Bio)
	setIf(&b, "compensation", upd.Compensation)
	setIf(&b, "location_id", upd.LocationID)
	return b.exec(ctx, r.db, "job_posting", "id = ?", id)
}

func (r *jobPostingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM job_posting WHERE id = ?;`
	return remove(ctx, r.db, "job_posting", query, id)
}

func (r *jobPostingRepository) selectPostings(ctx context.Context, by, query string, args ...interface{}) ([]domain.JobPosting, error) {
	postings := []domain.JobPosting{}
	if err := r.db.SelectContext(ctx, &postings, query, args...); err != nil {
		return nil, fmt.Errorf("select job postings by %s failed: %w", by, err)
	}
	return postings, nil
}
