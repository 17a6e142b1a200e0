package usecase

import (
	"context"
	"net/http"
	"strings"

	"shop/internal/presenter"
	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
)

const maxCatalogLimit = 100

type CatalogUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	tags       repo.TagRepository
	sales      repo.SaleRepository
	presenter  *presenter.Presenter
	pageSize   int
}

// DI
func NewCatalogUsecase(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	tags repo.TagRepository,
	sales repo.SaleRepository,
	p *presenter.Presenter,
	pageSize int,
) *CatalogUsecase {
	if pageSize < 1 {
		pageSize = 20
	}
	return &CatalogUsecase{
		products:   products,
		categories: categories,
		tags:       tags,
		sales:      sales,
		presenter:  p,
		pageSize:   pageSize,
	}
}

// GET /catalog の入力
type CatalogInput struct {
	CategoryID   *int64
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	FreeDelivery bool
	Available    bool

	SortBy   string
	SortType string

	Page  int
	Limit int
}

// 知らないキーは捨てて -date にする
func ParseSort(sortBy string, sortType string) (repo.CatalogSortField, bool) {
	var field repo.CatalogSortField
	switch strings.TrimSpace(sortBy) {
	case "rating":
		field = repo.CatalogSortRating
	case "price":
		field = repo.CatalogSortPrice
	case "reviews", "reviewCount":
		field = repo.CatalogSortReviews
	case "date":
		field = repo.CatalogSortDate
	default:
		return repo.CatalogSortDate, false
	}
	return field, sortType == "inc"
}

func (u *CatalogUsecase) ListCatalog(ctx context.Context, in CatalogInput) (presenter.Page, error) {
	page, limit, err := u.pageParams(in.Page, in.Limit)
	if err != nil {
		return presenter.Page{}, err
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return presenter.Page{}, fieldError("minPrice", "must not exceed maxPrice")
	}

	field, asc := ParseSort(in.SortBy, in.SortType)
	q := repo.CatalogQuery{
		CategoryID:   in.CategoryID,
		Search:       strings.TrimSpace(in.Search),
		MinPrice:     in.MinPrice,
		MaxPrice:     in.MaxPrice,
		FreeDelivery: in.FreeDelivery,
		Available:    in.Available,
		SortBy:       field,
		Asc:          asc,
		Page:         page,
		Limit:        limit,
	}

	products, total, err := u.products.ListCatalog(ctx, q)
	if err != nil {
		return presenter.Page{}, dbError(err)
	}
	if page > presenter.LastPage(total, limit) {
		return presenter.Page{}, NewHTTPError(http.StatusNotFound, "invalid page")
	}

	return presenter.NewPage(u.presenter, u.presenter.Products(products), page, total, limit), nil
}

func (u *CatalogUsecase) Popular(ctx context.Context) ([]presenter.ProductRecord, error) {
	products, err := u.products.ListPopular(ctx, 0)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Products(products), nil
}

func (u *CatalogUsecase) Limited(ctx context.Context) ([]presenter.ProductRecord, error) {
	products, err := u.products.ListLimited(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Products(products), nil
}

func (u *CatalogUsecase) Banners(ctx context.Context) ([]presenter.ProductRecord, error) {
	products, err := u.products.ListBanners(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Products(products), nil
}

func (u *CatalogUsecase) Categories(ctx context.Context) ([]presenter.CategoryRecord, error) {
	categories, err := u.categories.ListRoots(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Categories(categories), nil
}

func (u *CatalogUsecase) Tags(ctx context.Context, categoryID *int64) ([]presenter.TagRecord, error) {
	tags, err := u.tags.List(ctx, categoryID)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Tags(tags), nil
}

func (u *CatalogUsecase) Sales(ctx context.Context, page int, limit int) (presenter.Page, error) {
	page, limit, err := u.pageParams(page, limit)
	if err != nil {
		return presenter.Page{}, err
	}

	sales, total, err := u.sales.List(ctx, page, limit)
	if err != nil {
		return presenter.Page{}, dbError(err)
	}
	if page > presenter.LastPage(total, limit) {
		return presenter.Page{}, NewHTTPError(http.StatusNotFound, "invalid page")
	}

	return presenter.NewPage(u.presenter, u.presenter.Sales(sales), page, total, limit), nil
}

// page=0/limit=0は未指定扱い
func (u *CatalogUsecase) pageParams(page int, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, fieldError("page", "must be a positive integer")
	}
	if limit == 0 {
		limit = u.pageSize
	}
	if limit < 1 {
		return 0, 0, fieldError("limit", "must be a positive integer")
	}
	if limit > maxCatalogLimit {
		limit = maxCatalogLimit
	}
	return page, limit, nil
}
