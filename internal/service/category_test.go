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

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Categories)
	repo.On("Create", ctx, "Alumni").Return(int64(5), nil)
	repo.On("Create", ctx, "Student").Return(int64(0), domain.ErrDuplicateEntry)
	svc := newCategoryService(repo)

	id, err := svc.Create(ctx, " Alumni ")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	_, err = svc.Create(ctx, "Student")
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	_, err = svc.Create(ctx, "")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCategoryService_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := new(mock_repository.Categories)
	repo.On("GetAll", mock.Anything).Return([]domain.Category{{ID: 1, Name: domain.CategoryStudent}}, nil)

	categories, err := newCategoryService(repo).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
