package repository

import (
	"context"
	"testing"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCities(t *testing.T, repo Cities) map[string]int64 {
	t.Helper()
	ctx := context.Background()

	cities := []domain.City{
		{Name: "Boston", AvgCostOfLiving: 2000, AvgRent: 2500, AvgWage: 5000, Population: 650000, PropHybridWorkers: ptr(0.45)},
		{Name: "Austin", AvgCostOfLiving: 1700, AvgRent: 1600, AvgWage: 4200, Population: 960000, PropHybridWorkers: ptr(0.52)},
		{Name: "Denver", AvgCostOfLiving: 2300, AvgRent: 1800, AvgWage: 4600, Population: 710000, PropHybridWorkers: ptr(0.30)},
		{Name: "Toledo", AvgCostOfLiving: 900, AvgRent: 800, AvgWage: 3000, Population: 270000},
	}
	ids := make(map[string]int64, len(cities))
	for i := range cities {
		id, err := repo.Create(ctx, &cities[i])
		require.NoError(t, err)
		ids[cities[i].Name] = id
	}
	return ids
}

func TestCityRepository_CRUD(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	ids := seedCities(t, repos.Cities)

	city, err := repos.Cities.GetOneByID(ctx, ids["Boston"])
	require.NoError(t, err)
	assert.Equal(t, "Boston", city.Name)
	require.NotNil(t, city.PropHybridWorkers)
	assert.Equal(t, 0.45, *city.PropHybridWorkers)

	toledo, err := repos.Cities.GetOneByID(ctx, ids["Toledo"])
	require.NoError(t, err)
	assert.Nil(t, toledo.PropHybridWorkers)

	all, err := repos.Cities.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Austin", all[0].Name)

	require.NoError(t, repos.Cities.Update(ctx, ids["Boston"], domain.CityUpdate{AvgRent: ptr(2600.0)}))
	city, err = repos.Cities.GetOneByID(ctx, ids["Boston"])
	require.NoError(t, err)
	assert.Equal(t, 2600.0, city.AvgRent)
	assert.Equal(t, 2000.0, city.AvgCostOfLiving)

	require.NoError(t, repos.Cities.Delete(ctx, ids["Toledo"]))
	_, err = repos.Cities.GetOneByID(ctx, ids["Toledo"])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCityRepository_DuplicateName(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	seedCities(t, repos.Cities)

	_, err := repos.Cities.Create(ctx, &domain.City{Name: "Boston", AvgCostOfLiving: 1, AvgRent: 1, AvgWage: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	ids, err := repos.Cities.GetAll(ctx)
	require.NoError(t, err)
	err = repos.Cities.Update(ctx, ids[0].ID, domain.CityUpdate{Name: ptr("Boston")})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestCityRepository_UpdateAndDeleteMissing(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	err := repos.Cities.Update(ctx, 42, domain.CityUpdate{Name: ptr("Nowhere")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repos.Cities.Update(ctx, 42, domain.CityUpdate{})
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)

	// repeated deletes keep reporting not found
	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, repos.Cities.Delete(ctx, 42), domain.ErrNotFound)
	}
}

func TestCityRepository_UpdateSameValueStillMatches(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	ids := seedCities(t, repos.Cities)

	err := repos.Cities.Update(ctx, ids["Boston"], domain.CityUpdate{AvgRent: ptr(2500.0)})
	assert.NoError(t, err)
}

func TestCityRepository_GetByCostRange(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	seedCities(t, repos.Cities)

	low, high := domain.CostWindow(2000)
	cities, err := repos.Cities.GetByCostRange(ctx, 2000, low, high, domain.CostSearchLimit)
	require.NoError(t, err)
	require.Len(t, cities, 3)
	assert.Equal(t, "Boston", cities[0].Name)
	// Austin and Denver are equally far, ties keep insertion order
	assert.Equal(t, "Austin", cities[1].Name)
	assert.Equal(t, "Denver", cities[2].Name)

	low, high = domain.CostWindow(5000)
	cities, err = repos.Cities.GetByCostRange(ctx, 5000, low, high, domain.CostSearchLimit)
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestCityRepository_GetByCostRangeLimit(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		_, err := repos.Cities.Create(ctx, &domain.City{
			Name:            name,
			AvgCostOfLiving: 1900 + float64(i*20),
			AvgRent:         1000,
			AvgWage:         4000,
		})
		require.NoError(t, err)
	}

	cities, err := repos.Cities.GetByCostRange(ctx, 2000, 1600, 2400, domain.CostSearchLimit)
	require.NoError(t, err)
	assert.Len(t, cities, domain.CostSearchLimit)
}

func TestCityRepository_GetNationalAverages(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	avg, err := repos.Cities.GetNationalAverages(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NationalAverages{}, *avg)

	seedCities(t, repos.Cities)
	avg, err = repos.Cities.GetNationalAverages(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1725.0, avg.CostOfLiving, 1e-9)
	assert.InDelta(t, 1675.0, avg.Rent, 1e-9)
	assert.InDelta(t, 4200.0, avg.Wage, 1e-9)
}

func TestCityRepository_GetByHybridProportion(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	seedCities(t, repos.Cities)

	matches, err := repos.Cities.GetByHybridProportion(ctx, 0.5, domain.HybridSearchTolerance)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Austin", matches[0].Name)
	assert.InDelta(t, 0.02, matches[0].Difference, 1e-9)
	assert.Equal(t, "Boston", matches[1].Name)

	matches, err = repos.Cities.GetByHybridProportion(ctx, 0.95, domain.HybridSearchTolerance)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCityRepository_GetByHybridProportion_WindowEdges(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	_, err := repos.Cities.Create(ctx, &domain.City{
		Name: "Portland", AvgCostOfLiving: 1900, AvgRent: 1700, AvgWage: 4400, PropHybridWorkers: ptr(0.7),
	})
	require.NoError(t, err)

	tests := []struct {
		target float64
		want   int
	}{
		{target: 0.6, want: 1},
		{target: 0.8, want: 1},
		{target: 0.59, want: 0},
		{target: 0.81, want: 0},
	}
	for _, tt := range tests {
		matches, err := repos.Cities.GetByHybridProportion(ctx, tt.target, domain.HybridSearchTolerance)
		require.NoError(t, err)
		assert.Len(t, matches, tt.want, "target %v", tt.target)
	}
}
