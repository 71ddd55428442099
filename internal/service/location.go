package service

import (
	"context"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type locationService struct {
	locationRepository repository.Locations
}

func newLocationService(locationRepository repository.Locations) *locationService {
	return &locationService{
		locationRepository: locationRepository,
	}
}

func (s *locationService) GetAll(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepository.GetAll(ctx)
}

func (s *locationService) GetOneByZip(ctx context.Context, zip string) (*domain.Location, error) {
	location, err := s.locationRepository.GetOneByZip(ctx, zip)
	if err != nil {
		return nil, notFound(err, ErrLocationNotFound)
	}
	return location, nil
}

func (s *locationService) GetZipCodes(ctx context.Context) ([]string, error) {
	return s.locationRepository.GetZipCodes(ctx)
}

func (s *locationService) Create(ctx context.Context, location *domain.Location) error {
	return s.locationRepository.Create(ctx, location)
}

func (s *locationService) Update(ctx context.Context, zip string, upd domain.LocationUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	return notFound(s.locationRepository.Update(ctx, zip, upd), ErrLocationNotFound)
}

func (s *locationService) Delete(ctx context.Context, zip string) error {
	return notFound(s.locationRepository.Delete(ctx, zip), ErrLocationNotFound)
}

// GetCityStudentPopulation sums student population over the zip codes of a
// city. A city without zip codes is reported as ErrCityNotFound.
func (s *locationService) GetCityStudentPopulation(ctx context.Context, cityName string) (*domain.CityStudentPopulation, error) {
	total, err := s.locationRepository.SumStudentPopulationByCityName(ctx, cityName)
	if err != nil {
		return nil, notFound(err, ErrCityNotFound)
	}
	return &domain.CityStudentPopulation{CityName: cityName, StudentPopulation: total}, nil
}

func (s *locationService) GetCitySafetyRatings(ctx context.Context, cityName string) ([]domain.ZipSafetyRating, error) {
	return s.locationRepository.GetSafetyRatingsByCityName(ctx, cityName)
}

func (s *locationService) GetCityZipCodes(ctx context.Context, cityName string) ([]domain.ZipStudentPopulation, error) {
	return s.locationRepository.GetStudentPopulationsByCityName(ctx, cityName)
}
