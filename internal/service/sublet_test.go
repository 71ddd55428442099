package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coopconnect/backend/internal/domain"
	mock_repository "github.com/coopconnect/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubletService_DateRange(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Sublets)
	svc := newSubletService(repo)

	june := domain.NewDate(2024, time.June, 1)
	may := domain.NewDate(2024, time.May, 1)

	_, err := svc.Create(ctx, &domain.Sublet{StartDate: june, EndDate: may})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "end_date", verr.Field)

	_, err = svc.GetWithin(ctx, june, may)
	require.True(t, errors.As(err, &verr))

	sameDay := &domain.Sublet{StartDate: june, EndDate: june}
	repo.On("Create", ctx, sameDay).Return(int64(2), nil)
	id, err := svc.Create(ctx, sameDay)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestSubletService_UpdateMergesStoredDates(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Sublets)
	stored := &domain.Sublet{ID: 3, StartDate: domain.NewDate(2024, time.June, 1), EndDate: domain.NewDate(2024, time.August, 31)}
	repo.On("GetOneByID", ctx, int64(3)).Return(stored, nil)
	repo.On("GetOneByID", ctx, int64(4)).Return(nil, domain.ErrNotFound)
	svc := newSubletService(repo)

	// new end before the stored start
	err := svc.Update(ctx, 3, domain.SubletUpdate{EndDate: ptr(domain.NewDate(2024, time.May, 1))})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))

	upd := domain.SubletUpdate{EndDate: ptr(domain.NewDate(2024, time.July, 31))}
	repo.On("Update", ctx, int64(3), upd).Return(nil)
	require.NoError(t, svc.Update(ctx, 3, upd))

	err = svc.Update(ctx, 4, domain.SubletUpdate{StartDate: ptr(domain.NewDate(2024, time.July, 1))})
	assert.ErrorIs(t, err, ErrSubletNotFound)

	// housing only, no date lookup
	housingOnly := domain.SubletUpdate{HousingID: ptr(int64(8))}
	repo.On("Update", ctx, int64(4), housingOnly).Return(domain.ErrNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 4, housingOnly), ErrSubletNotFound)
	repo.AssertNumberOfCalls(t, "GetOneByID", 3)
}
