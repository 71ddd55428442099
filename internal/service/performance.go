package service

import (
	"context"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type performanceService struct {
	performanceRepository repository.Performance
}

func newPerformanceService(performanceRepository repository.Performance) *performanceService {
	return &performanceService{
		performanceRepository: performanceRepository,
	}
}

func (s *performanceService) GetDates(ctx context.Context) ([]domain.Date, error) {
	return s.performanceRepository.GetDates(ctx)
}

func (s *performanceService) GetByDate(ctx context.Context, date domain.Date) (*domain.Performance, error) {
	perf, err := s.performanceRepository.GetByDate(ctx, date)
	if err != nil {
		return nil, notFound(err, ErrPerformanceNotFound)
	}
	return perf, nil
}

func (s *performanceService) Create(ctx context.Context, perf *domain.Performance) (int64, error) {
	for field, v := range map[string]float64{
		"cpu_usage":     perf.CPUUsage,
		"memory_usage":  perf.MemoryUsage,
		"network_usage": perf.NetworkUsage,
		"disk_usage":    perf.DiskUsage,
	} {
		if v < 0 {
			return 0, domain.NewValidationError(field, "must not be negative")
		}
	}
	return s.performanceRepository.Create(ctx, perf)
}

func (s *performanceService) Update(ctx context.Context, date domain.Date, upd domain.PerformanceUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}
	return notFound(s.performanceRepository.Update(ctx, date, upd), ErrPerformanceNotFound)
}

func (s *performanceService) Delete(ctx context.Context, date domain.Date) error {
	return notFound(s.performanceRepository.Delete(ctx, date), ErrPerformanceNotFound)
}
