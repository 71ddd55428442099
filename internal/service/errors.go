package service

import (
	"errors"

	"github.com/coopconnect/backend/internal/domain"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCityNotFound        = errors.New("city not found")
	ErrLocationNotFound    = errors.New("location not found")
	ErrHousingNotFound     = errors.New("housing not found")
	ErrJobPostingNotFound  = errors.New("job posting not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSubletNotFound      = errors.New("sublet not found")
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrAirportNotFound     = errors.New("airport not found")
	ErrPerformanceNotFound = errors.New("performance data not found")

	ErrNoCitiesInCostRange = errors.New("no cities found within the target cost range")
)

// notFound replaces domain.ErrNotFound with the entity specific error.
func notFound(err, target error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return target
	}
	return err
}
