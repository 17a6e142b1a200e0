package handler

import (
	"net/http"

	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /product の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ReviewRequest struct {
	Author string `json:"author" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Text   string `json:"text" validate:"required"`
	Rate   int    `json:"rate" validate:"required,min=1,max=5"`
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/product/:id", h.detail)
	g.POST("/product/:id/review", h.createReview)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) createReview(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.CreateReview(c.Request().Context(), id, usecase.ReviewInput{
		Author: req.Author,
		Email:  req.Email,
		Text:   req.Text,
		Rate:   req.Rate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
