package repository

import (
	"context"

	"shop/internal/domain/model"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// 親カテゴリと直下の子だけ
func (r *CategoryGormRepository) ListRoots(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id") }).
		Where("parent_id IS NULL").
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}

type TagGormRepository struct {
	db *gorm.DB
}

func NewTagGormRepository(db *gorm.DB) *TagGormRepository {
	return &TagGormRepository{db: db}
}

func (r *TagGormRepository) List(ctx context.Context, categoryID *int64) ([]model.Tag, error) {
	tx := r.db.WithContext(ctx).Order("id ASC")

	//カテゴリの商品に付いているタグだけ
	if categoryID != nil {
		used := r.db.WithContext(ctx).
			Table("product_tags").
			Select("product_tags.tag_id").
			Joins("JOIN products ON products.id = product_tags.product_id").
			Where("products.category_id = ?", *categoryID)
		tx = tx.Where("id IN (?)", used)
	}

	var tags []model.Tag
	if err := tx.Find(&tags).Error; err != nil {
		return []model.Tag{}, err
	}
	return tags, nil
}

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) List(ctx context.Context, page int, limit int) ([]model.Sale, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Sale{}).Count(&total).Error; err != nil {
		return []model.Sale{}, 0, err
	}

	var items []model.Sale
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Sale{}, 0, err
	}
	return items, total, nil
}

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, review *model.Review) error {
	return mapError(r.db.WithContext(ctx).Create(review).Error)
}

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, payment *model.Payment) error {
	return mapError(r.db.WithContext(ctx).Create(payment).Error)
}
