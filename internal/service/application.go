package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type applicationService struct {
	applicationRepository repository.Applications
	jobPostingRepository  repository.JobPostings
	userRepository        repository.Users
}

func newApplicationService(
	applicationRepository repository.Applications,
	jobPostingRepository repository.JobPostings,
	userRepository repository.Users,
) *applicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		jobPostingRepository:  jobPostingRepository,
		userRepository:        userRepository,
	}
}

// GetOpenJobs lists postings the student has not applied to yet.
func (s *applicationService) GetOpenJobs(ctx context.Context, studentID int64) ([]domain.JobPosting, error) {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.jobPostingRepository.GetNotAppliedBy(ctx, studentID)
}

// Apply records a pending application of the student to a posting.
func (s *applicationService) Apply(ctx context.Context, studentID, jobPostingID int64) (int64, error) {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return 0, err
	}
	if _, err := s.jobPostingRepository.GetOneByID(ctx, jobPostingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, ErrJobPostingNotFound
		}
		return 0, fmt.Errorf("get job posting by id failed: %w", err)
	}

	id, err := s.applicationRepository.Create(ctx, &domain.Application{
		StudentID:    studentID,
		JobPostingID: jobPostingID,
		Status:       domain.ApplicationStatusPending,
	})
	// the posting can be deleted between the lookup and the insert
	if errors.Is(err, domain.ErrMissingParent) {
		return 0, ErrJobPostingNotFound
	}
	return id, err
}

func (s *applicationService) GetByStudent(ctx context.Context, studentID int64) ([]domain.ApplicationWithTitle, error) {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.applicationRepository.GetByStudent(ctx, studentID)
}

// Withdraw deletes an application. It must belong to the student.
func (s *applicationService) Withdraw(ctx context.Context, studentID, applicationID int64) error {
	return notFound(s.applicationRepository.Delete(ctx, studentID, applicationID), ErrApplicationNotFound)
}

func (s *applicationService) ensureStudent(ctx context.Context, studentID int64) error {
	if _, err := s.userRepository.GetOneByID(ctx, studentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id failed: %w", err)
	}
	return nil
}
