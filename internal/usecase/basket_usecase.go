package usecase

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/domain/model"
	"shop/internal/presenter"
	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
)

// BasketUsecase は /basket の業務ロジックです。
type BasketUsecase struct {
	tx        repo.TransactionManager
	baskets   repo.BasketRepository
	presenter *presenter.Presenter
}

func NewBasketUsecase(tx repo.TransactionManager, baskets repo.BasketRepository, p *presenter.Presenter) *BasketUsecase {
	return &BasketUsecase{tx: tx, baskets: baskets, presenter: p}
}

// POST/DELETE /basket の入力
type BasketChangeInput struct {
	ProductID int64
	Count     int64
}

// カートの明細一覧（商品情報は最新）
func (u *BasketUsecase) List(ctx context.Context, userID int64) ([]presenter.ProductRecord, error) {
	if userID <= 0 {
		return nil, unauthorized()
	}

	items, err := u.baskets.ListByUserID(ctx, userID)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Basket(items), nil
}

// 同じ商品があれば数量を足す。無ければ作る
func (u *BasketUsecase) Add(ctx context.Context, userID int64, in BasketChangeInput) ([]presenter.ProductRecord, error) {
	if err := validateBasketChange(userID, in); err != nil {
		return nil, err
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//商品の行ロック
		p, err := r.Products().FindByIDForUpdate(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		if err != nil {
			return dbError(err)
		}

		item, err := r.Baskets().FindByUserAndProductForUpdate(ctx, userID, p.ID)
		if err == nil {
			qty := item.Quantity + in.Count
			if err := r.Baskets().UpdateQuantity(ctx, item.ID, qty, linePrice(p.Price, qty)); err != nil {
				return dbError(err)
			}
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return dbError(err)
		}

		if err := r.Baskets().Create(ctx, &model.Basket{
			UserID:    userID,
			ProductID: p.ID,
			Quantity:  in.Count,
			Price:     linePrice(p.Price, in.Count),
		}); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.List(ctx, userID)
}

// 数量を減らす。0になったら削除。持っている数より多くは減らせない
func (u *BasketUsecase) Remove(ctx context.Context, userID int64, in BasketChangeInput) ([]presenter.ProductRecord, error) {
	if err := validateBasketChange(userID, in); err != nil {
		return nil, err
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByIDForUpdate(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return fieldError("id", "product is not in the basket")
		}
		if err != nil {
			return dbError(err)
		}

		item, err := r.Baskets().FindByUserAndProductForUpdate(ctx, userID, p.ID)
		if errors.Is(err, repo.ErrNotFound) {
			return fieldError("id", "product is not in the basket")
		}
		if err != nil {
			return dbError(err)
		}

		if in.Count > item.Quantity {
			return fieldError("count", fmt.Sprintf("cannot remove more than %d", item.Quantity))
		}

		left := item.Quantity - in.Count
		if left == 0 {
			if err := r.Baskets().DeleteByID(ctx, item.ID); err != nil {
				return dbError(err)
			}
			return nil
		}

		if err := r.Baskets().UpdateQuantity(ctx, item.ID, left, linePrice(p.Price, left)); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.List(ctx, userID)
}

func validateBasketChange(userID int64, in BasketChangeInput) error {
	if userID <= 0 {
		return unauthorized()
	}
	fields := map[string][]string{}
	if in.ProductID <= 0 {
		fields["id"] = []string{"must be a positive integer"}
	}
	if in.Count < 1 {
		fields["count"] = []string{"must be at least 1"}
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func linePrice(unit decimal.Decimal, qty int64) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(qty))
}
