package repository

import (
	"context"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type applicationRepository struct {
	db *sqlx.DB
}

func newApplicationRepository(db *sqlx.DB) *applicationRepository {
	return &applicationRepository{
		db: db,
	}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) (int64, error) {
	const query = `
	INSERT INTO application (student_id, job_posting_id, status)
	VALUES (?, ?, ?);
	`
	return insert(ctx, r.db, "application", query,
		application.StudentID,
		application.JobPostingID,
		application.Status,
	)
}

func (r *applicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]domain.ApplicationWithTitle, error) {
	const query = `
	SELECT a.id, a.student_id, a.job_posting_id, a.status, jp.title AS job_title
	FROM application a
	JOIN job_posting jp ON jp.id = a.job_posting_id
	WHERE a.student_id = ?
	ORDER BY a.id ASC;
	`
	applications := []domain.ApplicationWithTitle{}
	if err := r.db.SelectContext(ctx, &applications, query, studentID); err != nil {
		return nil, fmt.Errorf("select applications by student failed: %w", err)
	}
	return applications, nil
}

// Delete removes an application only when it belongs to the student.
func (r *applicationRepository) Delete(ctx context.Context, studentID, applicationID int64) error {
	const query = `DELETE FROM application WHERE id = ? AND student_id = ?;`
	return remove(ctx, r.db, "application", query, applicationID, studentID)
}
