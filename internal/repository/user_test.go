package repository

import (
	"context"
	"testing"
	"time"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	studentCategoryID  = 1
	employerCategoryID = 2
)

func seedUser(t *testing.T, repo Users, name, email string, categoryID int64, cityID *int64, createdAt time.Time) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &domain.User{
		Name:          name,
		Email:         email,
		CategoryID:    categoryID,
		CurrentCityID: cityID,
		CreatedAt:     createdAt,
	})
	require.NoError(t, err)
	return id
}

func TestUserRepository_Queries(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	cities := seedCities(t, repos.Cities)
	boston := cities["Boston"]

	day := func(d int) time.Time { return time.Date(2024, time.January, d, 10, 0, 0, 0, time.UTC) }
	alice := seedUser(t, repos.Users, "Alice Park", "alice@example.com", studentCategoryID, &boston, day(1))
	seedUser(t, repos.Users, "Bob Stone", "bob@acme.com", employerCategoryID, &boston, day(5))
	seedUser(t, repos.Users, "Carol Diaz", "carol@example.com", studentCategoryID, nil, day(9))

	user, err := repos.Users.GetOneByID(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice Park", user.Name)
	assert.Equal(t, domain.CategoryStudent, user.CategoryName)
	require.NotNil(t, user.CurrentCityID)
	assert.Equal(t, boston, *user.CurrentCityID)
	assert.True(t, day(1).Equal(user.CreatedAt))
	assert.Nil(t, user.LastLoginAt)

	user, err = repos.Users.GetByEmail(ctx, "bob@acme.com")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryEmployer, user.CategoryName)

	_, err = repos.Users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := repos.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := repos.Users.Search(ctx, "example")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repos.Users.Search(ctx, "Stone")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "bob@acme.com", found[0].Email)

	students, err := repos.Users.GetByCategory(ctx, domain.CategoryStudent)
	require.NoError(t, err)
	assert.Len(t, students, 2)

	inBoston, err := repos.Users.GetByCity(ctx, boston, "")
	require.NoError(t, err)
	assert.Len(t, inBoston, 2)

	inBoston, err = repos.Users.GetByCity(ctx, boston, domain.CategoryEmployer)
	require.NoError(t, err)
	require.Len(t, inBoston, 1)
	assert.Equal(t, "Bob Stone", inBoston[0].Name)

	recent, err := repos.Users.GetCreatedAfter(ctx, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Bob Stone", recent[0].Name)
	assert.Equal(t, "Carol Diaz", recent[1].Name)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repos, _ := newTestRepositories(t)
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	seedUser(t, repos.Users, "Alice", "alice@example.com", studentCategoryID, nil, now)
	_, err := repos.Users.Create(context.Background(), &domain.User{
		Name:       "Alice Again",
		Email:      "alice@example.com",
		CategoryID: studentCategoryID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestUserRepository_CreateDefaultsCreatedAt(t *testing.T) {
	repos, conn := newTestRepositories(t)
	fixed := time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC)
	users := newUserRepository(conn)
	users.now = func() time.Time { return fixed }
	repos.Users = users

	id, err := repos.Users.Create(context.Background(), &domain.User{Name: "Dan", Email: "dan@example.com", CategoryID: studentCategoryID})
	require.NoError(t, err)

	user, err := repos.Users.GetOneByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(user.CreatedAt))
}

func TestUserRepository_UpdateDelete(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	id := seedUser(t, repos.Users, "Alice", "alice@example.com", studentCategoryID, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repos.Users.Update(ctx, id, domain.UserUpdate{PhoneNumber: ptr("617-555-0101")}))
	user, err := repos.Users.GetOneByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user.PhoneNumber)
	assert.Equal(t, "617-555-0101", *user.PhoneNumber)
	assert.Equal(t, "Alice", user.Name)

	assert.ErrorIs(t, repos.Users.Update(ctx, id+100, domain.UserUpdate{Name: ptr("x")}), domain.ErrNotFound)

	require.NoError(t, repos.Users.Delete(ctx, id))
	assert.ErrorIs(t, repos.Users.Delete(ctx, id), domain.ErrNotFound)
}
