package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カタログ系の公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/catalog", h.catalog)
	g.GET("/catalog/:id", h.catalogByCategory)
	g.GET("/products/popular", h.popular)
	g.GET("/products/limited", h.limited)
	g.GET("/banners", h.banners)
	g.GET("/categories", h.categories)
	g.GET("/tags", h.tags)
	g.GET("/sales", h.sales)
}

func (h *CatalogHandler) catalog(c echo.Context) error {
	in, err := parseCatalogInput(c)
	if err != nil {
		return writeError(c, err)
	}
	return h.list(c, in)
}

func (h *CatalogHandler) catalogByCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	in, err := parseCatalogInput(c)
	if err != nil {
		return writeError(c, err)
	}
	in.CategoryID = &categoryID
	return h.list(c, in)
}

func (h *CatalogHandler) list(c echo.Context, in usecase.CatalogInput) error {
	out, err := h.uc.ListCatalog(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// storefrontは filter[minPrice] のような形でも送ってくる
func parseCatalogInput(c echo.Context) (usecase.CatalogInput, error) {
	var in usecase.CatalogInput
	var err error

	if in.Page, err = queryInt(c, "page", "page", "currentPage"); err != nil {
		return in, err
	}
	if in.Limit, err = queryInt(c, "limit", "limit"); err != nil {
		return in, err
	}
	if in.CategoryID, err = queryInt64Ptr(c, "category", "category"); err != nil {
		return in, err
	}
	if in.MinPrice, err = queryDecimalPtr(c, "minPrice", "minPrice", "filter[minPrice]"); err != nil {
		return in, err
	}
	if in.MaxPrice, err = queryDecimalPtr(c, "maxPrice", "maxPrice", "filter[maxPrice]"); err != nil {
		return in, err
	}

	in.Search = firstQuery(c, "search", "filter[name]")
	in.FreeDelivery = queryBool(c, "freeDelivery", "filter[freeDelivery]")
	in.Available = queryBool(c, "available", "filter[available]")
	in.SortBy = firstQuery(c, "sortBy", "sort")
	in.SortType = firstQuery(c, "sortType")
	return in, nil
}

func (h *CatalogHandler) popular(c echo.Context) error {
	out, err := h.uc.Popular(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) limited(c echo.Context) error {
	out, err := h.uc.Limited(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) banners(c echo.Context) error {
	out, err := h.uc.Banners(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) categories(c echo.Context) error {
	out, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) tags(c echo.Context) error {
	categoryID, err := queryInt64Ptr(c, "category", "category")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Tags(c.Request().Context(), categoryID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) sales(c echo.Context) error {
	page, err := queryInt(c, "page", "page", "currentPage")
	if err != nil {
		return writeError(c, err)
	}
	limit, err := queryInt(c, "limit", "limit")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Sales(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
