package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"shop/internal/config"
	"shop/internal/middleware"
	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CheckoutLineRequest struct {
	ID    idValue `json:"id" validate:"required,gt=0"`
	Count int64   `json:"count" validate:"required,min=1"`
}

// productsが空ならカートから作る
type CheckoutRequest struct {
	Products     []CheckoutLineRequest `json:"products" validate:"dive"`
	FullName     string                `json:"fullName" validate:"max=200"`
	Email        string                `json:"email" validate:"omitempty,email"`
	Phone        string                `json:"phone" validate:"omitempty,max=20"`
	DeliveryType string                `json:"deliveryType" validate:"max=50"`
	PaymentType  string                `json:"paymentType" validate:"max=50"`
	City         string                `json:"city" validate:"max=200"`
	Address      string                `json:"address" validate:"max=500"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group, cfg config.Config, userRepo repository.UserRepository) {
	o := g.Group("/orders")
	o.Use(middleware.AuthJWT(cfg))
	o.Use(middleware.TokenVersionGuard(userRepo))

	o.GET("", h.list)
	o.POST("", h.checkout)
	o.GET("/active", h.active)
	o.GET("/:id", h.detail)
	o.POST("/:id", h.confirm)
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	req, err := decodeCheckout(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	in := usecase.CheckoutInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		DeliveryType: req.DeliveryType,
		PaymentType:  req.PaymentType,
		City:         req.City,
		Address:      req.Address,
	}
	for _, l := range req.Products {
		in.Products = append(in.Products, usecase.CheckoutLine{ProductID: int64(l.ID), Count: l.Count})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// BodyLimitが無い経路でもこれ以上は読まない
const maxCheckoutBody = 1 << 20

// storefrontはカートの中身を配列のまま送ってくることがある
func decodeCheckout(c echo.Context) (CheckoutRequest, error) {
	var req CheckoutRequest

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxCheckoutBody))
	if err != nil {
		if isBodyTooLarge(err) {
			return req, usecase.NewHTTPError(http.StatusRequestEntityTooLarge, "request entity too large")
		}
		return req, usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return req, nil
	}

	if body[0] == '[' {
		err = json.Unmarshal(body, &req.Products)
	} else {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		return req, usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return req, nil
}

func isBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}
	var he *echo.HTTPError
	return errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge
}

func (h *OrderHandler) active(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetLastActive(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Get(c.Request().Context(), userID, orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) confirm(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Confirm(c.Request().Context(), userID, orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
