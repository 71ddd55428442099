package service

import (
	"context"
	"testing"

	"github.com/coopconnect/backend/internal/domain"
	mock_repository "github.com/coopconnect/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_CityStudentPopulation(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Locations)
	repo.On("SumStudentPopulationByCityName", ctx, "Boston").Return(int64(20000), nil)
	repo.On("SumStudentPopulationByCityName", ctx, "Nowhere").Return(int64(0), domain.ErrNotFound)
	svc := newLocationService(repo)

	got, err := svc.GetCityStudentPopulation(ctx, "Boston")
	require.NoError(t, err)
	assert.Equal(t, &domain.CityStudentPopulation{CityName: "Boston", StudentPopulation: 20000}, got)

	_, err = svc.GetCityStudentPopulation(ctx, "Nowhere")
	assert.ErrorIs(t, err, ErrCityNotFound)
}
