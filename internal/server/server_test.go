package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shop/internal/config"
	"shop/internal/handler"
	"shop/internal/presenter"
	"shop/internal/server"
	"shop/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// DBに触らないルートだけ確認する
func newTestServer() http.Handler {
	cfg := config.Config{JWTSecret: "test-secret", FEURL: "http://localhost:3000", BodyLimit: "1K", ShutdownTimeout: time.Second}
	p := presenter.New("/media", time.UTC, true)

	h := server.Handlers{
		Catalog: handler.NewCatalogHandler(usecase.NewCatalogUsecase(nil, nil, nil, nil, p, 20)),
		Product: handler.NewProductHandler(usecase.NewProductUsecase(nil, nil, p)),
		Basket:  handler.NewBasketHandler(usecase.NewBasketUsecase(nil, nil, p)),
		Order:   handler.NewOrderHandler(usecase.NewOrderUsecase(nil, nil, p)),
		Profile: handler.NewProfileHandler(usecase.NewProfileUsecase(nil, usecase.NewBcryptPasswordHasher(0), p)),
		Payment: handler.NewPaymentHandler(usecase.NewPaymentUsecase(nil, p)),
	}
	return server.New(cfg, zerolog.Nop(), nil, h)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{name: "trailing slash", method: http.MethodGet, path: "/healthz/", want: http.StatusOK},
		{name: "basket needs auth", method: http.MethodGet, path: "/api/basket", want: http.StatusUnauthorized},
		{name: "orders need auth", method: http.MethodPost, path: "/api/orders/", want: http.StatusUnauthorized},
		{name: "profile needs auth", method: http.MethodGet, path: "/api/profile", want: http.StatusUnauthorized},
		{name: "payment needs auth", method: http.MethodPost, path: "/api/payment", want: http.StatusUnauthorized},
		{name: "bad product id", method: http.MethodGet, path: "/api/product/abc", want: http.StatusNotFound},
		{name: "bad category id", method: http.MethodGet, path: "/api/catalog/abc", want: http.StatusNotFound},
		{name: "bad page", method: http.MethodGet, path: "/api/catalog?page=-1", want: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestServer_BodyLimit(t *testing.T) {
	srv := newTestServer()

	body := `{"author":"a","email":"a@example.com","text":"` + strings.Repeat("x", 2048) + `","rate":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/product/1/review", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"request entity too large"}`, rec.Body.String())
}
