package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SearchBooks_EmptyNeedlesSkipStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	// no EXPECT: any repository call fails the test
	books, err := service.SearchBooks(context.Background(), "", "")

	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestService_SearchBooks_PassesNeedles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	dune := Book{ID: 1, Title: "Dune", Author: "Frank Herbert"}
	mockRepo.EXPECT().SearchByTitleOrAuthor(gomock.Any(), "dune", "").Return([]Book{dune}, nil)

	books, err := service.SearchBooks(context.Background(), "dune", "")

	require.NoError(t, err)
	assert.Equal(t, []Book{dune}, books)
}

func TestService_FindBookByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, int64(7)).Return(Book{ID: 7, Title: "Dune"}, nil)

		b, err := service.FindBookByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, int64(99)).Return(Book{}, ErrNotFound)

		_, err := service.FindBookByID(ctx, 99)

		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestService_ListBooks_WrapsStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, context.DeadlineExceeded)

	_, err := service.ListBooks(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
