package server

import (
	"net/http"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlers は /api 以下にぶら下げるハンドラ一式
type Handlers struct {
	Catalog *handler.CatalogHandler
	Product *handler.ProductHandler
	Basket  *handler.BasketHandler
	Order   *handler.OrderHandler
	Profile *handler.ProfileHandler
	Payment *handler.PaymentHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	//公開
	h.Catalog.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)

	//要ログイン
	h.Basket.RegisterRoutes(api, cfg, userRepo)
	h.Order.RegisterRoutes(api, cfg, userRepo)
	h.Profile.RegisterRoutes(api, cfg, userRepo)
	h.Payment.RegisterRoutes(api, cfg, userRepo)
}
