package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BasketGormRepository struct {
	db *gorm.DB
}

// DI
func NewBasketGormRepository(db *gorm.DB) *BasketGormRepository {
	return &BasketGormRepository{db: db}
}

// ユーザーのカート明細を商品込みで取得
func (r *BasketGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Basket, error) {
	var items []model.Basket

	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Preload("Product.Reviews", func(db *gorm.DB) *gorm.DB { return db.Select("id", "product_id", "rate") }).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Basket{}, err
	}
	return items, nil
}

// 行ロックを取って(user, product)の明細を取得
func (r *BasketGormRepository) FindByUserAndProductForUpdate(ctx context.Context, userID int64, productID int64) (model.Basket, error) {
	var item model.Basket

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return model.Basket{}, mapError(err)
	}
	return item, nil
}

func (r *BasketGormRepository) Create(ctx context.Context, basket *model.Basket) error {
	return mapError(r.db.WithContext(ctx).Create(basket).Error)
}

// 数量と価格を一緒に更新
func (r *BasketGormRepository) UpdateQuantity(ctx context.Context, basketID int64, qty int64, price decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Basket{}).
		Where("id = ?", basketID).
		Updates(map[string]interface{}{
			"quantity": qty,
			"price":    price,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除
func (r *BasketGormRepository) DeleteByID(ctx context.Context, basketID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Basket{}, basketID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
