package usecase

import (
	"context"
	"net/http"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductUsecase_Get(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	uc := NewProductUsecase(products, new(MockReviewRepository), newTestPresenter())

	products.On("FindByID", ctx, int64(10)).Return(model.Product{
		ID:              10,
		FullDescription: "long",
		Reviews:         []model.Review{{Rate: 3}, {Rate: 4}},
	}, nil)
	products.On("FindByID", ctx, int64(11)).Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "long", out.FullDescription)
	assert.Equal(t, 3.5, out.Rating)

	_, err = uc.Get(ctx, 11)
	requireHTTPError(t, err, http.StatusNotFound)
}

func TestProductUsecase_CreateReview(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		in     ReviewInput
		found  error
		status int
	}{
		{name: "ok", in: ReviewInput{Author: "Ann", Email: "ann@example.com", Text: "good", Rate: 5}},
		{name: "rate too high", in: ReviewInput{Author: "Ann", Text: "good", Rate: 6}, status: http.StatusBadRequest},
		{name: "rate zero", in: ReviewInput{Author: "Ann", Text: "good", Rate: 0}, status: http.StatusBadRequest},
		{name: "no text", in: ReviewInput{Author: "Ann", Rate: 3}, status: http.StatusBadRequest},
		{name: "unknown product", in: ReviewInput{Author: "Ann", Text: "good", Rate: 3}, found: repo.ErrNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := new(MockProductRepository)
			reviews := new(MockReviewRepository)
			uc := NewProductUsecase(products, reviews, newTestPresenter())

			products.On("FindByID", ctx, int64(10)).Return(model.Product{ID: 10}, tt.found)
			reviews.On("Create", ctx, mock.MatchedBy(func(r *model.Review) bool {
				return r.ProductID == 10 && r.Rate == tt.in.Rate
			})).Return(nil)

			out, err := uc.CreateReview(ctx, 10, tt.in)
			if tt.status != 0 {
				requireHTTPError(t, err, tt.status)
				reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ann", out.Author)
			reviews.AssertExpectations(t)
		})
	}
}
