package repository

import (
	"context"
	"testing"
	"time"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	employer int64
	student  int64
	intern   int64
	analyst  int64
}

func seedJobs(t *testing.T, repos *Repositories) jobFixture {
	t.Helper()
	ctx := context.Background()
	seedLocations(t, repos.Locations, seedCities(t, repos.Cities))

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := jobFixture{
		employer: seedUser(t, repos.Users, "Acme HR", "a@b.com", employerCategoryID, nil, created),
		student:  seedUser(t, repos.Users, "Sam", "sam@example.com", studentCategoryID, nil, created),
	}

	var err error
	f.intern, err = repos.JobPostings.Create(ctx, &domain.JobPosting{Title: "Intern", Bio: "Help", Compensation: 5000, LocationID: "02115"}, "a@b.com")
	require.NoError(t, err)
	f.analyst, err = repos.JobPostings.Create(ctx, &domain.JobPosting{Title: "Analyst", Bio: "Numbers", Compensation: 6000, LocationID: "78701"}, "a@b.com")
	require.NoError(t, err)
	return f
}

func TestJobPostingRepository_CreateResolvesEmail(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	f := seedJobs(t, repos)

	posting, err := repos.JobPostings.GetOneByID(ctx, f.intern)
	require.NoError(t, err)
	assert.Equal(t, f.employer, posting.UserID)
	assert.Equal(t, "Intern", posting.Title)
	assert.Equal(t, 5000.0, posting.Compensation)

	_, err = repos.JobPostings.Create(ctx, &domain.JobPosting{Title: "Ghost", Bio: "-", LocationID: "02115"}, "nobody@b.com")
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	all, err := repos.JobPostings.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestJobPostingRepository_Filters(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	f := seedJobs(t, repos)

	byUser, err := repos.JobPostings.GetByUser(ctx, f.employer)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byUser, err = repos.JobPostings.GetByUser(ctx, f.student)
	require.NoError(t, err)
	assert.Empty(t, byUser)

	byZip, err := repos.JobPostings.GetByLocation(ctx, "78701")
	require.NoError(t, err)
	require.Len(t, byZip, 1)
	assert.Equal(t, "Analyst", byZip[0].Title)

	_, err = repos.Applications.Create(ctx, &domain.Application{StudentID: f.student, JobPostingID: f.intern, Status: domain.ApplicationStatusPending})
	require.NoError(t, err)

	open, err := repos.JobPostings.GetNotAppliedBy(ctx, f.student)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, f.analyst, open[0].ID)
}

func TestJobPostingRepository_UpdateDelete(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()
	f := seedJobs(t, repos)

	require.NoError(t, repos.JobPostings.Update(ctx, f.intern, domain.JobPostingUpdate{Compensation: ptr(5500.0)}))
	posting, err := repos.JobPostings.GetOneByID(ctx, f.intern)
	require.NoError(t, err)
	assert.Equal(t, 5500.0, posting.Compensation)
	assert.Equal(t, "Help", posting.Bio)

	require.NoError(t, repos.JobPostings.Delete(ctx, f.intern))
	_, err = repos.JobPostings.GetOneByID(ctx, f.intern)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repos.JobPostings.Delete(ctx, f.intern), domain.ErrNotFound)
}
