package service

import (
	"context"
	"strings"
	"time"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type userService struct {
	userRepository repository.Users
}

func newUserService(userRepository repository.Users) *userService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]domain.UserWithCategory, error) {
	return s.userRepository.GetAll(ctx)
}

func (s *userService) GetOneByID(ctx context.Context, id int64) (*domain.UserWithCategory, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.UserWithCategory, error) {
	user, err := s.userRepository.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) Search(ctx context.Context, term string) ([]domain.UserWithCategory, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("query", "is required")
	}
	return s.userRepository.Search(ctx, term)
}

func (s *userService) GetByCategory(ctx context.Context, category string) ([]domain.UserWithCategory, error) {
	return s.userRepository.GetByCategory(ctx, category)
}

func (s *userService) GetByCity(ctx context.Context, cityID int64, category string) ([]domain.UserWithCategory, error) {
	return s.userRepository.GetByCity(ctx, cityID, strings.TrimSpace(category))
}

func (s *userService) GetCreatedAfter(ctx context.Context, after time.Time) ([]domain.UserWithCategory, error) {
	return s.userRepository.GetCreatedAfter(ctx, after)
}

func (s *userService) Create(ctx context.Context, user *domain.User) (int64, error) {
	user.Email = strings.TrimSpace(user.Email)
	return s.userRepository.Create(ctx, user)
}

func (s *userService) Update(ctx context.Context, id int64, upd domain.UserUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	return notFound(s.userRepository.Update(ctx, id, upd), ErrUserNotFound)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return notFound(s.userRepository.Delete(ctx, id), ErrUserNotFound)
}
