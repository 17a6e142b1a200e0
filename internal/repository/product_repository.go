package repository

import (
	"context"

	"shop/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 並び替えのキー
type CatalogSortField string

const (
	CatalogSortRating  CatalogSortField = "rating"
	CatalogSortPrice   CatalogSortField = "price"
	CatalogSortReviews CatalogSortField = "reviews"
	CatalogSortDate    CatalogSortField = "date"
)

// カタログ一覧の検索条件
type CatalogQuery struct {
	CategoryID   *int64
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	FreeDelivery bool
	Available    bool

	SortBy CatalogSortField
	Asc    bool

	Page  int
	Limit int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//絞り込み・並び替え・ページング済みの一覧と総件数
	ListCatalog(ctx context.Context, q CatalogQuery) ([]model.Product, int64, error)
	//レビュー数の多い順
	ListPopular(ctx context.Context, limit int) ([]model.Product, error)
	ListLimited(ctx context.Context) ([]model.Product, error)
	ListBanners(ctx context.Context) ([]model.Product, error)

	//詳細（レビュー・スペック・タグ・画像込み）
	FindByID(ctx context.Context, id int64) (model.Product, error)
	//注文スナップショット用
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	//行ロック付き（Tx内で使う）
	FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error)
}
