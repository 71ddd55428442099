package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/coopconnect/backend/internal/domain"
	mock_repository "github.com/coopconnect/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCityService_SearchByCost(t *testing.T) {
	ctx := context.Background()

	t.Run("metrics against national averages", func(t *testing.T) {
		repo := new(mock_repository.Cities)
		repo.On("GetByCostRange", ctx, 2000.0, 1600.0, 2400.0, domain.CostSearchLimit).Return([]domain.City{
			{ID: 1, Name: "Boston", AvgCostOfLiving: 2000, AvgRent: 1500, AvgWage: 4000},
		}, nil)
		repo.On("GetNationalAverages", ctx).Return(&domain.NationalAverages{CostOfLiving: 1000, Rent: 1500, Wage: 4000}, nil)

		matches, err := newCityService(repo).SearchByCost(ctx, 2000)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 100.0, matches[0].CostMetrics.CostVsNationalAvg.CostOfLivingPercent)
		assert.Equal(t, 0.0, matches[0].CostMetrics.CostVsNationalAvg.RentPercent)
		assert.Equal(t, 0.5, matches[0].CostMetrics.CostToWageRatio)
		assert.Equal(t, 0.0, matches[0].Distance)
		repo.AssertExpectations(t)
	})

	t.Run("empty window", func(t *testing.T) {
		repo := new(mock_repository.Cities)
		repo.On("GetByCostRange", ctx, 2000.0, 1600.0, 2400.0, domain.CostSearchLimit).Return([]domain.City{}, nil)

		_, err := newCityService(repo).SearchByCost(ctx, 2000)
		assert.ErrorIs(t, err, ErrNoCitiesInCostRange)
		repo.AssertNotCalled(t, "GetNationalAverages", mock.Anything)
	})

	t.Run("invalid target", func(t *testing.T) {
		repo := new(mock_repository.Cities)
		svc := newCityService(repo)

		for _, target := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := svc.SearchByCost(ctx, target)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "target %v", target)
			assert.Equal(t, "target_cost", verr.Field)
		}
		repo.AssertNotCalled(t, "GetByCostRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCityService_SearchByHybridProportion(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Cities)
	repo.On("GetByHybridProportion", ctx, 0.5, domain.HybridSearchTolerance).Return([]domain.CityHybridMatch{}, nil)
	svc := newCityService(repo)

	matches, err := svc.SearchByHybridProportion(ctx, 0.5)
	require.NoError(t, err)
	assert.Empty(t, matches)

	for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.SearchByHybridProportion(ctx, p)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "proportion", verr.Field)
	}
	repo.AssertNumberOfCalls(t, "GetByHybridProportion", 1)
}

func TestCityService_NotFoundTranslation(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Cities)
	repo.On("GetOneByID", ctx, int64(7)).Return(nil, domain.ErrNotFound)
	repo.On("Delete", ctx, int64(7)).Return(domain.ErrNotFound)
	repo.On("Update", ctx, int64(7), mock.Anything).Return(domain.ErrNotFound)
	svc := newCityService(repo)

	_, err := svc.GetOneByID(ctx, 7)
	assert.ErrorIs(t, err, ErrCityNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 7), ErrCityNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 7, domain.CityUpdate{Name: ptr("X")}), ErrCityNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 7, domain.CityUpdate{}), domain.ErrNothingToUpdate)
}

func TestCityService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Cities)
	svc := newCityService(repo)

	_, err := svc.Create(ctx, &domain.City{Name: "Zero", AvgWage: 0})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "avg_wage", verr.Field)

	_, err = svc.Create(ctx, &domain.City{Name: "Odd", AvgWage: 10, PropHybridWorkers: ptr(1.2)})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "prop_hybrid_workers", verr.Field)

	city := &domain.City{Name: "Fine", AvgWage: 10}
	repo.On("Create", ctx, city).Return(int64(3), nil)
	id, err := svc.Create(ctx, city)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func ptr[T any](v T) *T {
	return &v
}
