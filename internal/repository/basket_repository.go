package repository

import (
	"context"

	"shop/internal/domain/model"

	"github.com/shopspring/decimal"
)

type BasketRepository interface {
	//商品の表示用データ込み
	ListByUserID(ctx context.Context, userID int64) ([]model.Basket, error)
	//行ロック付き（Tx内で使う）
	FindByUserAndProductForUpdate(ctx context.Context, userID int64, productID int64) (model.Basket, error)
	Create(ctx context.Context, basket *model.Basket) error
	UpdateQuantity(ctx context.Context, basketID int64, qty int64, price decimal.Decimal) error
	DeleteByID(ctx context.Context, basketID int64) error
}
