package service

import (
	"context"
	"fmt"
	"math"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type cityService struct {
	cityRepository repository.Cities
}

func newCityService(cityRepository repository.Cities) *cityService {
	return &cityService{
		cityRepository: cityRepository,
	}
}

func (s *cityService) GetAll(ctx context.Context) ([]domain.City, error) {
	return s.cityRepository.GetAll(ctx)
}

func (s *cityService) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	city, err := s.cityRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCityNotFound)
	}
	return city, nil
}

func (s *cityService) Create(ctx context.Context, city *domain.City) (int64, error) {
	if err := validateCity(city.AvgWage, city.PropHybridWorkers); err != nil {
		return 0, err
	}
	return s.cityRepository.Create(ctx, city)
}

func (s *cityService) Update(ctx context.Context, id int64, upd domain.CityUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	if upd.AvgWage != nil {
		if err := validateCity(*upd.AvgWage, upd.PropHybridWorkers); err != nil {
			return err
		}
	} else if err := validateProportion("prop_hybrid_workers", upd.PropHybridWorkers); err != nil {
		return err
	}
	return notFound(s.cityRepository.Update(ctx, id, upd), ErrCityNotFound)
}

func (s *cityService) Delete(ctx context.Context, id int64) error {
	return notFound(s.cityRepository.Delete(ctx, id), ErrCityNotFound)
}

// SearchByCost returns up to domain.CostSearchLimit cities whose cost of living
// is within the search margin of targetCost, each with its cost metrics.
func (s *cityService) SearchByCost(ctx context.Context, targetCost float64) ([]domain.CityCostMatch, error) {
	if targetCost < 0 || math.IsNaN(targetCost) || math.IsInf(targetCost, 0) {
		return nil, domain.NewValidationError("target_cost", "must be a non-negative number")
	}

	low, high := domain.CostWindow(targetCost)
	cities, err := s.cityRepository.GetByCostRange(ctx, targetCost, low, high, domain.CostSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("get cities by cost range failed: %w", err)
	}
	if len(cities) == 0 {
		return nil, ErrNoCitiesInCostRange
	}

	avg, err := s.cityRepository.GetNationalAverages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get national averages failed: %w", err)
	}

	matches := make([]domain.CityCostMatch, 0, len(cities))
	for _, city := range cities {
		matches = append(matches, domain.NewCityCostMatch(city, targetCost, *avg))
	}
	return matches, nil
}

func (s *cityService) SearchByHybridProportion(ctx context.Context, proportion float64) ([]domain.CityHybridMatch, error) {
	if err := validateProportion("proportion", &proportion); err != nil {
		return nil, err
	}
	return s.cityRepository.GetByHybridProportion(ctx, proportion, domain.HybridSearchTolerance)
}

func validateCity(avgWage float64, proportion *float64) error {
	if avgWage <= 0 {
		return domain.NewValidationError("avg_wage", "must be greater than zero")
	}
	return validateProportion("prop_hybrid_workers", proportion)
}

func validateProportion(field string, p *float64) error {
	if p != nil && (math.IsNaN(*p) || *p < 0 || *p > 1) {
		return domain.NewValidationError(field, "must be between 0 and 1")
	}
	return nil
}
