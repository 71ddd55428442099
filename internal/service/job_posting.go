package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type jobPostingService struct {
	jobPostingRepository repository.JobPostings
	userRepository       repository.Users
}

func newJobPostingService(jobPostingRepository repository.JobPostings, userRepository repository.Users) *jobPostingService {
	return &jobPostingService{
		jobPostingRepository: jobPostingRepository,
		userRepository:       userRepository,
	}
}

func (s *jobPostingService) GetAll(ctx context.Context) ([]domain.JobPosting, error) {
	return s.jobPostingRepository.GetAll(ctx)
}

func (s *jobPostingService) GetOneByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	posting, err := s.jobPostingRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrJobPostingNotFound)
	}
	return posting, nil
}

// GetByUser lists the postings owned by a user. An unknown user is
// ErrUserNotFound, a known user without postings is an empty list.
func (s *jobPostingService) GetByUser(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	if _, err := s.userRepository.GetOneByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}
	return s.jobPostingRepository.GetByUser(ctx, userID)
}

func (s *jobPostingService) GetByLocation(ctx context.Context, zip string) ([]domain.JobPosting, error) {
	return s.jobPostingRepository.GetByLocation(ctx, zip)
}

func (s *jobPostingService) Create(ctx context.Context, posting *domain.JobPosting, userEmail string) (int64, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return 0, domain.NewValidationError("user_email", "is required")
	}
	id, err := s.jobPostingRepository.Create(ctx, posting, userEmail)
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return 0, ErrUserNotFound
	}
	return id, err
}

func (s *jobPostingService) Update(ctx context.Context, id int64, upd domain.JobPostingUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	return notFound(s.jobPostingRepository.Update(ctx, id, upd), ErrJobPostingNotFound)
}

func (s *jobPostingService) Delete(ctx context.Context, id int64) error {
	return notFound(s.jobPostingRepository.Delete(ctx, id), ErrJobPostingNotFound)
}
