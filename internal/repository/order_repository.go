package repository

import (
	"context"

	"shop/internal/domain/model"
)

type OrderRepository interface {
	//明細(Products)もまとめて作成
	Create(ctx context.Context, order *model.Order) error
	FindByIDAndUserID(ctx context.Context, orderID int64, userID int64) (model.Order, error)
	//行ロック付き。トランザクション内で使う
	FindByIDAndUserIDForUpdate(ctx context.Context, orderID int64, userID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	//activeな注文のうち一番新しいもの
	FindLastActiveByUserID(ctx context.Context, userID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, active bool) error
}
