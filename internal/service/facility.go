package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

// facilityService serves hospitals and airports. errNotFound is the error
// reported for a missing row of the wrapped table.
type facilityService struct {
	facilityRepository repository.Facilities
	errNotFound        error
}

func newFacilityService(facilityRepository repository.Facilities, errNotFound error) *facilityService {
	return &facilityService{
		facilityRepository: facilityRepository,
		errNotFound:        errNotFound,
	}
}

func (s *facilityService) GetAll(ctx context.Context) ([]domain.Facility, error) {
	return s.facilityRepository.GetAll(ctx)
}

// GetByCity accepts a numeric city id or a city name.
func (s *facilityService) GetByCity(ctx context.Context, city string) ([]domain.Facility, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.NewValidationError("city", "is required")
	}
	if id, err := strconv.ParseInt(city, 10, 64); err == nil {
		return s.facilityRepository.GetByCityID(ctx, id)
	}
	return s.facilityRepository.GetByCityName(ctx, city)
}

func (s *facilityService) Create(ctx context.Context, facility *domain.Facility) (int64, error) {
	return s.facilityRepository.Create(ctx, facility)
}

func (s *facilityService) Update(ctx context.Context, id int64, upd domain.FacilityUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	return notFound(s.facilityRepository.Update(ctx, id, upd), s.errNotFound)
}

func (s *facilityService) Delete(ctx context.Context, id int64) error {
	return notFound(s.facilityRepository.Delete(ctx, id), s.errNotFound)
}
