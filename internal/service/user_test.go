package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coopconnect/backend/internal/domain"
	mock_repository "github.com/coopconnect/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOneByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Users)
	repo.On("GetOneByID", ctx, int64(1)).Return(&domain.UserWithCategory{User: domain.User{ID: 1, Name: "Sam"}, CategoryName: domain.CategoryStudent}, nil)
	repo.On("GetOneByID", ctx, int64(2)).Return(nil, domain.ErrNotFound)
	svc := newUserService(repo)

	user, err := svc.GetOneByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sam", user.Name)

	_, err = svc.GetOneByID(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Search(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Users)
	repo.On("Search", ctx, "sam").Return([]domain.UserWithCategory{}, nil)
	svc := newUserService(repo)

	_, err := svc.Search(ctx, "  sam ")
	require.NoError(t, err)

	_, err = svc.Search(ctx, "   ")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "query", verr.Field)
	repo.AssertNumberOfCalls(t, "Search", 1)
}

func TestUserService_Create_TrimsEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Users)
	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "sam@example.com"
	})).Return(int64(3), nil)

	id, err := newUserService(repo).Create(ctx, &domain.User{Name: "Sam", Email: " sam@example.com ", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Users)
	upd := domain.UserUpdate{Name: ptr("Samantha")}
	repo.On("Update", ctx, int64(1), upd).Return(nil)
	repo.On("Update", ctx, int64(2), upd).Return(domain.ErrNotFound)
	repo.On("Delete", ctx, int64(1)).Return(nil).Once()
	repo.On("Delete", ctx, int64(1)).Return(domain.ErrNotFound)
	svc := newUserService(repo)

	require.NoError(t, svc.Update(ctx, 1, upd))
	assert.ErrorIs(t, svc.Update(ctx, 2, upd), ErrUserNotFound)
	assert.ErrorIs(t, svc.Update(ctx, 1, domain.UserUpdate{}), domain.ErrNothingToUpdate)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrUserNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrUserNotFound)
	repo.AssertNumberOfCalls(t, "Update", 2)
}
