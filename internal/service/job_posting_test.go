package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coopconnect/backend/internal/domain"
	mock_repository "github.com/coopconnect/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPostingService_Create(t *testing.T) {
	ctx := context.Background()
	posting := &domain.JobPosting{Title: "Intern", Bio: "Help", Compensation: 5000, LocationID: "02115"}

	postings := new(mock_repository.JobPostings)
	postings.On("Create", ctx, posting, "a@b.com").Return(int64(11), nil)
	postings.On("Create", ctx, posting, "ghost@b.com").Return(int64(0), domain.ErrReferenceNotFound)
	svc := newJobPostingService(postings, new(mock_repository.Users))

	id, err := svc.Create(ctx, posting, " a@b.com ")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	_, err = svc.Create(ctx, posting, "ghost@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Create(ctx, posting, "")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "user_email", verr.Field)
}

func TestJobPostingService_GetByUser(t *testing.T) {
	ctx := context.Background()
	postings := new(mock_repository.JobPostings)
	users := new(mock_repository.Users)
	users.On("GetOneByID", ctx, int64(1)).Return(&domain.UserWithCategory{}, nil)
	users.On("GetOneByID", ctx, int64(2)).Return(nil, domain.ErrNotFound)
	postings.On("GetByUser", ctx, int64(1)).Return([]domain.JobPosting{}, nil)
	svc := newJobPostingService(postings, users)

	list, err := svc.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetByUser(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
	postings.AssertNumberOfCalls(t, "GetByUser", 1)
}
