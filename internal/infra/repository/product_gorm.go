package repository

import (
	"context"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 検索/価格帯/ソート/ページング付きで返す。
func (r *ProductGormRepository) ListCatalog(ctx context.Context, q repo.CatalogQuery) ([]model.Product, int64, error) {
	var total int64
	if err := r.filtered(ctx, q).Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	tx := r.filtered(ctx, q).
		Select("products.*").
		Joins("LEFT JOIN (?) AS review_stats ON review_stats.product_id = products.id", r.reviewStats(ctx))

	for _, o := range catalogOrder(q.SortBy, q.Asc) {
		tx = tx.Order(o)
	}

	var products []model.Product
	offset := (q.Page - 1) * q.Limit
	if err := withListing(tx).Offset(offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// レビュー数→評価の順。limit<=0は全件
func (r *ProductGormRepository) ListPopular(ctx context.Context, limit int) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("products.*").
		Joins("LEFT JOIN (?) AS review_stats ON review_stats.product_id = products.id", r.reviewStats(ctx)).
		Order("COALESCE(review_stats.reviews_count, 0) DESC").
		Order("COALESCE(review_stats.rating, 0) DESC").
		Order("products.id ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var products []model.Product
	if err := withListing(tx).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListLimited(ctx context.Context) ([]model.Product, error) {
	return r.listFlagged(ctx, "limited")
}

func (r *ProductGormRepository) ListBanners(ctx context.Context) ([]model.Product, error) {
	return r.listFlagged(ctx, "on_banner")
}

func (r *ProductGormRepository) listFlagged(ctx context.Context, column string) ([]model.Product, error) {
	var products []model.Product
	tx := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: true}).
		Order("id ASC")
	if err := withListing(tx).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得（詳細表示用）
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Specifications", func(db *gorm.DB) *gorm.DB { return db.Order("specifications.id") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.date, reviews.id") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		First(&p, id).Error
	if err != nil {
		return model.Product{}, mapError(err)
	}
	return p, nil
}

func (r *ProductGormRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	var products []model.Product
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC")
	if err := withListing(tx).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// SELECT ... FOR UPDATE
func (r *ProductGormRepository) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return model.Product{}, mapError(err)
	}
	return p, nil
}

func (r *ProductGormRepository) filtered(ctx context.Context, q repo.CatalogQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if q.CategoryID != nil {
		tx = tx.Where("products.category_id = ?", *q.CategoryID)
	}

	//タイトル検索。語ごとにAND
	for _, term := range searchTerms(q.Search) {
		tx = tx.Where("products.title ILIKE ?", "%"+escapeLike(term)+"%")
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("products.price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("products.price <= ?", *q.MaxPrice)
	}

	if q.FreeDelivery {
		tx = tx.Where("products.free_delivery = ?", true)
	}
	if q.Available {
		tx = tx.Where("products.count > 0")
	}
	return tx
}

// 商品ごとの評価（小数1桁）とレビュー数。並び替えにだけ使う
func (r *ProductGormRepository) reviewStats(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("product_id, ROUND(AVG(rate)::numeric, 1) AS rating, COUNT(*) AS reviews_count").
		Group("product_id")
}

// 同じ値なら登録順
func catalogOrder(field repo.CatalogSortField, asc bool) []string {
	dir := " DESC"
	if asc {
		dir = " ASC"
	}

	var key string
	switch field {
	case repo.CatalogSortRating:
		key = "COALESCE(review_stats.rating, 0)"
	case repo.CatalogSortReviews:
		key = "COALESCE(review_stats.reviews_count, 0)"
	case repo.CatalogSortPrice:
		key = "products.price"
	default:
		key = "products.date"
	}
	return []string{key + dir, "products.id ASC"}
}

// 一覧表示に要るものだけ読む
func withListing(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Select("id", "product_id", "rate") })
}

func searchTerms(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
