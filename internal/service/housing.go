package service

import (
	"context"
	"errors"
	"strings"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type housingService struct {
	housingRepository repository.Housing
}

func newHousingService(housingRepository repository.Housing) *housingService {
	return &housingService{
		housingRepository: housingRepository,
	}
}

func (s *housingService) GetAll(ctx context.Context) ([]domain.Housing, error) {
	return s.housingRepository.GetAll(ctx)
}

func (s *housingService) GetOneByID(ctx context.Context, id int64) (*domain.Housing, error) {
	housing, err := s.housingRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrHousingNotFound)
	}
	return housing, nil
}

func (s *housingService) Create(ctx context.Context, housing *domain.Housing, cityName string) (int64, error) {
	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return 0, domain.NewValidationError("city_name", "is required")
	}
	id, err := s.housingRepository.Create(ctx, housing, cityName)
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return 0, ErrCityNotFound
	}
	return id, err
}

func (s *housingService) Update(ctx context.Context, id int64, upd domain.HousingUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	err := s.housingRepository.Update(ctx, id, upd)
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return ErrCityNotFound
	}
	return notFound(err, ErrHousingNotFound)
}

func (s *housingService) Delete(ctx context.Context, id int64) error {
	return notFound(s.housingRepository.Delete(ctx, id), ErrHousingNotFound)
}
