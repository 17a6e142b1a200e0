package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 明細はgormのassociationで一緒に入る
func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return mapError(r.db.WithContext(ctx).Create(order).Error)
}

func (r *OrderGormRepository) FindByIDAndUserID(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	var o model.Order
	err := withOrderProducts(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return model.Order{}, mapError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) FindByIDAndUserIDForUpdate(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	var o model.Order
	err := withOrderProducts(r.db.WithContext(ctx)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return model.Order{}, mapError(err)
	}
	return o, nil
}

// 新しい順
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order
	err := withOrderProducts(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) FindLastActiveByUserID(ctx context.Context, userID int64) (model.Order, error) {
	var o model.Order
	err := withOrderProducts(r.db.WithContext(ctx)).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at desc").
		Order("id desc").
		First(&o).Error
	if err != nil {
		return model.Order{}, mapError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status": status,
			"active": active,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func withOrderProducts(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("order_products.id") })
}
