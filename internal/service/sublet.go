package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/repository"
)

type subletService struct {
	subletRepository repository.Sublets
}

func newSubletService(subletRepository repository.Sublets) *subletService {
	return &subletService{
		subletRepository: subletRepository,
	}
}

func (s *subletService) GetAll(ctx context.Context) ([]domain.Sublet, error) {
	return s.subletRepository.GetAll(ctx)
}

func (s *subletService) GetBySubletter(ctx context.Context, userID int64) ([]domain.Sublet, error) {
	return s.subletRepository.GetBySubletter(ctx, userID)
}

func (s *subletService) GetWithin(ctx context.Context, start, end domain.Date) ([]domain.Sublet, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}
	return s.subletRepository.GetWithin(ctx, start, end)
}

func (s *subletService) Create(ctx context.Context, sublet *domain.Sublet) (int64, error) {
	if err := validateDateRange(sublet.StartDate, sublet.EndDate); err != nil {
		return 0, err
	}
	return s.subletRepository.Create(ctx, sublet)
}

// Update checks the resulting date range against the stored row when only one
// side of it changes.
func (s *subletService) Update(ctx context.Context, id int64, upd domain.SubletUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}

	if upd.StartDate != nil || upd.EndDate != nil {
		var start, end domain.Date
		if upd.StartDate == nil || upd.EndDate == nil {
			current, err := s.subletRepository.GetOneByID(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return ErrSubletNotFound
				}
				return fmt.Errorf("get sublet by id failed: %w", err)
			}
			start, end = current.StartDate, current.EndDate
		}
		if upd.StartDate != nil {
			start = *upd.StartDate
		}
		if upd.EndDate != nil {
			end = *upd.EndDate
		}
		if err := validateDateRange(start, end); err != nil {
			return err
		}
	}

	return notFound(s.subletRepository.Update(ctx, id, upd), ErrSubletNotFound)
}

func (s *subletService) Delete(ctx context.Context, id int64) error {
	return notFound(s.subletRepository.Delete(ctx, id), ErrSubletNotFound)
}

func validateDateRange(start, end domain.Date) error {
	if end.Before(start.Time) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}
