package usecase

import (
	"context"
	"errors"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/presenter"
	repo "shop/internal/repository"
)

type ProductUsecase struct {
	products  repo.ProductRepository
	reviews   repo.ReviewRepository
	presenter *presenter.Presenter
}

// DI
func NewProductUsecase(products repo.ProductRepository, reviews repo.ReviewRepository, p *presenter.Presenter) *ProductUsecase {
	return &ProductUsecase{products: products, reviews: reviews, presenter: p}
}

// POST /product/:id/review の入力
type ReviewInput struct {
	Author string
	Email  string
	Text   string
	Rate   int
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (presenter.ProductDetailRecord, error) {
	if productID <= 0 {
		return presenter.ProductDetailRecord{}, notFound()
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return presenter.ProductDetailRecord{}, notFound()
	}
	if err != nil {
		return presenter.ProductDetailRecord{}, dbError(err)
	}
	return u.presenter.ProductDetail(p), nil
}

func (u *ProductUsecase) CreateReview(ctx context.Context, productID int64, in ReviewInput) (presenter.ReviewRecord, error) {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Author) == "" {
		fields["author"] = []string{"this field is required"}
	}
	if strings.TrimSpace(in.Text) == "" {
		fields["text"] = []string{"this field is required"}
	}
	if in.Rate < model.ReviewRateMin || in.Rate > model.ReviewRateMax {
		fields["rate"] = []string{"must be between 1 and 5"}
	}
	if len(fields) > 0 {
		return presenter.ReviewRecord{}, NewValidationError(fields)
	}

	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return presenter.ReviewRecord{}, notFound()
		}
		return presenter.ReviewRecord{}, dbError(err)
	}

	review := model.Review{
		ProductID: productID,
		Author:    strings.TrimSpace(in.Author),
		Email:     strings.TrimSpace(in.Email),
		Text:      in.Text,
		Rate:      in.Rate,
	}
	if err := u.reviews.Create(ctx, &review); err != nil {
		return presenter.ReviewRecord{}, dbError(err)
	}
	return u.presenter.Review(review), nil
}
