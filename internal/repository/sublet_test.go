package repository

import (
	"context"
	"testing"
	"time"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubletRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	cities := seedCities(t, repos.Cities)
	seedLocations(t, repos.Locations, cities)

	housingID, err := repos.Housing.Create(ctx, &domain.Housing{Zip: "02115", Address: "1 Main St", Rent: 1200, SqFt: 500}, "Boston")
	require.NoError(t, err)
	student := seedUser(t, repos.Users, "Sam", "sam@example.com", studentCategoryID, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	summer, err := repos.Sublets.Create(ctx, &domain.Sublet{
		HousingID:   housingID,
		SubletterID: student,
		StartDate:   domain.NewDate(2024, time.June, 1),
		EndDate:     domain.NewDate(2024, time.August, 31),
	})
	require.NoError(t, err)
	_, err = repos.Sublets.Create(ctx, &domain.Sublet{
		HousingID:   housingID,
		SubletterID: student,
		StartDate:   domain.NewDate(2024, time.January, 1),
		EndDate:     domain.NewDate(2024, time.May, 1),
	})
	require.NoError(t, err)

	got, err := repos.Sublets.GetOneByID(ctx, summer)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", got.StartDate.String())
	assert.Equal(t, "2024-08-31", got.EndDate.String())

	all, err := repos.Sublets.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-01-01", all[0].StartDate.String())

	mine, err := repos.Sublets.GetBySubletter(ctx, student)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	within, err := repos.Sublets.GetWithin(ctx, domain.NewDate(2024, time.May, 15), domain.NewDate(2024, time.September, 1))
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, summer, within[0].ID)

	require.NoError(t, repos.Sublets.Update(ctx, summer, domain.SubletUpdate{EndDate: ptr(domain.NewDate(2024, time.July, 31))}))
	got, err = repos.Sublets.GetOneByID(ctx, summer)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-31", got.EndDate.String())

	require.NoError(t, repos.Sublets.Delete(ctx, summer))
	assert.ErrorIs(t, repos.Sublets.Delete(ctx, summer), domain.ErrNotFound)
	_, err = repos.Sublets.GetOneByID(ctx, summer)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
