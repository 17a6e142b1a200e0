package handler

import (
	"net/http"

	"shop/internal/config"
	"shop/internal/middleware"
	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type PaymentRequest struct {
	Number string  `json:"number" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Month  string  `json:"month" validate:"required"`
	Year   string  `json:"year" validate:"required"`
	Code   string  `json:"code" validate:"required"`
	Order  idValue `json:"order"`
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group, cfg config.Config, userRepo repository.UserRepository) {
	g.POST("/payment", h.create, middleware.AuthJWT(cfg), middleware.TokenVersionGuard(userRepo))
}

func (h *PaymentHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	in := usecase.PaymentInput{
		Number: req.Number,
		Name:   req.Name,
		Month:  req.Month,
		Year:   req.Year,
		Code:   req.Code,
	}
	if req.Order > 0 {
		orderID := int64(req.Order)
		in.OrderID = &orderID
	}

	out, err := h.uc.Create(c.Request().Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
