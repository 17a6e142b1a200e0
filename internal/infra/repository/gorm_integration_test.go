package repository

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/infra/db"
	"shop/internal/presenter"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// postgresコンテナを立ててマイグレーションまで済ませる
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("shop"),
		postgres.WithUsername("shop"),
		postgres.WithPassword("shop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb, err := db.Connect(config.Config{
		DatabaseURL:    dsn,
		DBMaxOpenConns: 10,
		DBMaxIdleConns: 2,
		LogLevel:       "error",
	}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

type catalogFixture struct {
	phones    model.Category
	laptops   model.Category
	redPhone  model.Product
	bluePhone model.Product
	laptop    model.Product
	user      model.User
	other     model.User
}

func seed(t *testing.T, gdb *gorm.DB) catalogFixture {
	t.Helper()
	var f catalogFixture

	f.phones = model.Category{Title: "Phones", Image: model.CategoryImage{Src: "/media/phones.png", Alt: "phones"}}
	require.NoError(t, gdb.Create(&f.phones).Error)
	f.laptops = model.Category{Title: "Laptops", ParentID: &f.phones.ID}
	require.NoError(t, gdb.Create(&f.laptops).Error)

	tags := []model.Tag{{ID: "mobile", Name: "Mobile"}, {ID: "work", Name: "Work"}}
	require.NoError(t, gdb.Create(&tags).Error)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.redPhone = model.Product{
		CategoryID: f.phones.ID, Title: "Red phone", Price: decimal.NewFromInt(100), Count: 5,
		Date: base, FreeDelivery: true, Tags: []model.Tag{tags[0]},
		Images: []model.Image{{File: "red.png"}},
	}
	f.bluePhone = model.Product{
		CategoryID: f.phones.ID, Title: "Blue phone", Price: decimal.NewFromInt(300), Count: 0,
		Date: base.Add(24 * time.Hour), Tags: []model.Tag{tags[0]},
	}
	f.laptop = model.Product{
		CategoryID: f.laptops.ID, Title: "Laptop 100%", Price: decimal.NewFromInt(50), Count: 2,
		Date: base.Add(48 * time.Hour), Tags: []model.Tag{tags[1]}, OnBanner: true, Limited: true,
	}
	for _, p := range []*model.Product{&f.redPhone, &f.bluePhone, &f.laptop} {
		require.NoError(t, gdb.Create(p).Error)
	}

	reviews := []model.Review{
		{ProductID: f.redPhone.ID, Author: "a", Email: "a@example.com", Text: "ok", Rate: 5},
		{ProductID: f.redPhone.ID, Author: "b", Email: "b@example.com", Text: "ok", Rate: 4},
		{ProductID: f.bluePhone.ID, Author: "c", Email: "c@example.com", Text: "ok", Rate: 3},
	}
	require.NoError(t, gdb.Create(&reviews).Error)

	f.user = model.User{Email: "ann@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, gdb.Create(&f.user).Error)
	f.other = model.User{Email: "bob@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, gdb.Create(&f.other).Error)

	return f
}

func productIDs(products []model.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestGormRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	f := seed(t, gdb)
	ctx := context.Background()

	t.Run("ListCatalog", func(t *testing.T) {
		products := NewProductGormRepository(gdb)
		phones := f.phones.ID
		minPrice := decimal.NewFromInt(60)

		tests := []struct {
			name  string
			q     repo.CatalogQuery
			want  []int64
			total int64
		}{
			{
				name:  "default newest first",
				q:     repo.CatalogQuery{SortBy: repo.CatalogSortDate, Page: 1, Limit: 20},
				want:  []int64{f.laptop.ID, f.bluePhone.ID, f.redPhone.ID},
				total: 3,
			},
			{
				name:  "price asc in category",
				q:     repo.CatalogQuery{CategoryID: &phones, SortBy: repo.CatalogSortPrice, Asc: true, Page: 1, Limit: 20},
				want:  []int64{f.redPhone.ID, f.bluePhone.ID},
				total: 2,
			},
			{
				name:  "price desc by default",
				q:     repo.CatalogQuery{SortBy: repo.CatalogSortPrice, Page: 1, Limit: 20},
				want:  []int64{f.bluePhone.ID, f.redPhone.ID, f.laptop.ID},
				total: 3,
			},
			{
				name:  "rating desc",
				q:     repo.CatalogQuery{SortBy: repo.CatalogSortRating, Page: 1, Limit: 20},
				want:  []int64{f.redPhone.ID, f.bluePhone.ID, f.laptop.ID},
				total: 3,
			},
			{
				name:  "reviews asc",
				q:     repo.CatalogQuery{SortBy: repo.CatalogSortReviews, Asc: true, Page: 1, Limit: 20},
				want:  []int64{f.laptop.ID, f.bluePhone.ID, f.redPhone.ID},
				total: 3,
			},
			{
				name:  "search available",
				q:     repo.CatalogQuery{Search: "PHONE", Available: true, SortBy: repo.CatalogSortDate, Page: 1, Limit: 20},
				want:  []int64{f.redPhone.ID},
				total: 1,
			},
			{
				name:  "percent is literal",
				q:     repo.CatalogQuery{Search: "100%", SortBy: repo.CatalogSortDate, Page: 1, Limit: 20},
				want:  []int64{f.laptop.ID},
				total: 1,
			},
			{
				name:  "min price and free delivery",
				q:     repo.CatalogQuery{MinPrice: &minPrice, FreeDelivery: true, SortBy: repo.CatalogSortDate, Page: 1, Limit: 20},
				want:  []int64{f.redPhone.ID},
				total: 1,
			},
			{
				name:  "second page",
				q:     repo.CatalogQuery{SortBy: repo.CatalogSortDate, Page: 2, Limit: 2},
				want:  []int64{f.redPhone.ID},
				total: 3,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, total, err := products.ListCatalog(ctx, tt.q)
				require.NoError(t, err)
				assert.Equal(t, tt.total, total)
				assert.Equal(t, tt.want, productIDs(got))
			})
		}
	})

	t.Run("ListCatalog preloads listing data", func(t *testing.T) {
		got, _, err := NewProductGormRepository(gdb).ListCatalog(ctx, repo.CatalogQuery{
			Search: "red", SortBy: repo.CatalogSortDate, Page: 1, Limit: 20,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Len(t, got[0].Reviews, 2)
		assert.Equal(t, "mobile", got[0].Tags[0].ID)
		require.Len(t, got[0].Images, 1)
		assert.Equal(t, model.ImageOwnerProduct, got[0].Images[0].OwnerType)
		assert.Equal(t, 4.5, presenter.Rating(got[0].Reviews))
	})

	t.Run("popular limited banners", func(t *testing.T) {
		products := NewProductGormRepository(gdb)

		popular, err := products.ListPopular(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{f.redPhone.ID, f.bluePhone.ID}, productIDs(popular))

		limited, err := products.ListLimited(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{f.laptop.ID}, productIDs(limited))

		banners, err := products.ListBanners(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{f.laptop.ID}, productIDs(banners))
	})

	t.Run("FindByID", func(t *testing.T) {
		products := NewProductGormRepository(gdb)

		p, err := products.FindByID(ctx, f.redPhone.ID)
		require.NoError(t, err)
		assert.Equal(t, "Red phone", p.Title)
		assert.Len(t, p.Reviews, 2)

		_, err = products.FindByID(ctx, 999999)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("categories and tags", func(t *testing.T) {
		roots, err := NewCategoryGormRepository(gdb).ListRoots(ctx)
		require.NoError(t, err)
		require.Len(t, roots, 1)
		assert.Equal(t, "phones", roots[0].Image.Alt)
		require.Len(t, roots[0].Subcategories, 1)
		assert.Equal(t, "Laptops", roots[0].Subcategories[0].Title)

		tags := NewTagGormRepository(gdb)
		all, err := tags.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		laptops := f.laptops.ID
		scoped, err := tags.List(ctx, &laptops)
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, "work", scoped[0].ID)
	})

	t.Run("sales", func(t *testing.T) {
		sale := model.Sale{
			ProductID: f.redPhone.ID,
			SalePrice: decimal.NewFromInt(80),
			DateFrom:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			DateTo:    time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, gdb.Create(&sale).Error)

		items, total, err := NewSaleGormRepository(gdb).List(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Red phone", items[0].Product.Title)
		assert.Len(t, items[0].Product.Images, 1)
	})

	t.Run("basket", func(t *testing.T) {
		baskets := NewBasketGormRepository(gdb)

		item := model.Basket{UserID: f.other.ID, ProductID: f.laptop.ID, Quantity: 1, Price: decimal.NewFromInt(50)}
		require.NoError(t, baskets.Create(ctx, &item))

		dup := model.Basket{UserID: f.other.ID, ProductID: f.laptop.ID, Quantity: 1, Price: decimal.NewFromInt(50)}
		assert.ErrorIs(t, baskets.Create(ctx, &dup), repo.ErrDuplicate)

		require.NoError(t, baskets.UpdateQuantity(ctx, item.ID, 3, decimal.NewFromInt(150)))
		list, err := baskets.ListByUserID(ctx, f.other.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(3), list[0].Quantity)
		assert.Equal(t, "Laptop 100%", list[0].Product.Title)

		require.NoError(t, baskets.DeleteByID(ctx, item.ID))
		assert.ErrorIs(t, baskets.DeleteByID(ctx, item.ID), repo.ErrNotFound)
	})

	t.Run("concurrent basket adds are not lost", func(t *testing.T) {
		baskets := NewBasketGormRepository(gdb)
		uc := usecase.NewBasketUsecase(NewTxManagerGorm(gdb), baskets, presenter.New("/media", time.UTC, true))

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := uc.Add(ctx, f.user.ID, usecase.BasketChangeInput{ProductID: f.redPhone.ID, Count: 1}); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		list, err := baskets.ListByUserID(ctx, f.user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(workers), list[0].Quantity)
		assert.True(t, list[0].Price.Equal(decimal.NewFromInt(100*workers)))
	})

	t.Run("orders", func(t *testing.T) {
		orders := NewOrderGormRepository(gdb)
		p := presenter.New("/media", time.UTC, true)

		line := p.Snapshot(f.redPhone, 2)
		order := model.Order{
			UserID:    f.user.ID,
			FullName:  "Ann",
			Status:    model.OrderStatusPending,
			Active:    true,
			TotalCost: presenter.TotalCost([]model.OrderProduct{line}),
			Products:  []model.OrderProduct{line},
		}
		require.NoError(t, orders.Create(ctx, &order))
		require.NotZero(t, order.ID)

		got, err := orders.FindByIDAndUserID(ctx, order.ID, f.user.ID)
		require.NoError(t, err)
		require.Len(t, got.Products, 1)
		assert.Equal(t, []string{"/media/red.png"}, got.Products[0].Images)
		assert.Equal(t, []string{"mobile"}, got.Products[0].Tags)
		assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(200)))

		// 注文後に商品を変えても明細は変わらない
		require.NoError(t, gdb.Model(&model.Product{}).
			Where("id = ?", f.redPhone.ID).
			Updates(map[string]interface{}{"price": decimal.NewFromInt(999), "title": "Renamed phone"}).Error)

		again, err := orders.FindByIDAndUserID(ctx, order.ID, f.user.ID)
		require.NoError(t, err)
		require.Len(t, again.Products, 1)
		assert.True(t, again.Products[0].Price.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "Red phone", again.Products[0].Title)
		assert.True(t, again.TotalCost.Equal(decimal.NewFromInt(200)))

		locked, err := orders.FindByIDAndUserIDForUpdate(ctx, order.ID, f.user.ID)
		require.NoError(t, err)
		assert.Len(t, locked.Products, 1)

		_, err = orders.FindByIDAndUserID(ctx, order.ID, f.other.ID)
		assert.ErrorIs(t, err, repo.ErrNotFound)

		active, err := orders.FindLastActiveByUserID(ctx, f.user.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, active.ID)

		require.NoError(t, orders.UpdateStatus(ctx, order.ID, model.OrderStatusPaid, false))
		_, err = orders.FindLastActiveByUserID(ctx, f.user.ID)
		assert.ErrorIs(t, err, repo.ErrNotFound)

		list, err := orders.ListByUserID(ctx, f.user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, model.OrderStatusPaid, list[0].Status)
	})

	t.Run("concurrent payments pay an order once", func(t *testing.T) {
		orders := NewOrderGormRepository(gdb)
		p := presenter.New("/media", time.UTC, true)

		line := p.Snapshot(f.laptop, 1)
		order := model.Order{
			UserID:    f.other.ID,
			Status:    model.OrderStatusAccepted,
			Active:    true,
			TotalCost: presenter.TotalCost([]model.OrderProduct{line}),
			Products:  []model.OrderProduct{line},
		}
		require.NoError(t, orders.Create(ctx, &order))

		uc := usecase.NewPaymentUsecase(NewTxManagerGorm(gdb), p)

		const workers = 4
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Create(ctx, f.other.ID, usecase.PaymentInput{
					Number: "4111111111111111", Name: "BOB", Month: "12", Year: "2030", Code: "123",
					OrderID: &order.ID,
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			var he *usecase.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Status)
		}
		assert.Equal(t, 1, succeeded)

		var payments int64
		require.NoError(t, gdb.Model(&model.Payment{}).Where("order_id = ?", order.ID).Count(&payments).Error)
		assert.Equal(t, int64(1), payments)

		var logs int64
		require.NoError(t, gdb.Model(&model.AuditLog{}).
			Where("resource_type = ? AND resource_id = ?", model.AuditResourceOrder, order.ID).
			Count(&logs).Error)
		assert.Equal(t, int64(1), logs)
	})

	t.Run("profile", func(t *testing.T) {
		profiles := NewProfileGormRepository(gdb)

		first, err := profiles.GetOrCreateByUserID(ctx, f.user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", first.User.Email)

		first.FullName = "Ann Lee"
		require.NoError(t, profiles.Update(ctx, first))

		second, err := profiles.GetOrCreateByUserID(ctx, f.user.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Ann Lee", second.FullName)

		_, err = profiles.GetOrCreateByUserID(ctx, 999999)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("users", func(t *testing.T) {
		users := NewUserGormRepository(gdb)

		err := users.UpdateEmail(ctx, f.other.ID, "ann@example.com")
		assert.True(t, errors.Is(err, repo.ErrDuplicate))

		require.NoError(t, users.IncrementTokenVersion(ctx, f.other.ID))
		u, err := users.FindByID(ctx, f.other.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, u.TokenVersion)

		assert.ErrorIs(t, users.IncrementTokenVersion(ctx, 999999), repo.ErrNotFound)
	})

	t.Run("audit logs", func(t *testing.T) {
		logs := NewAuditLogGormRepository(gdb)

		require.NoError(t, logs.Create(ctx, model.AuditLog{
			ActorUserID:  f.user.ID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   42,
			BeforeJSON:   `{"status":"PENDING"}`,
			AfterJSON:    `{"status":"ACCEPTED"}`,
		}))

		got, err := logs.ListByResource(ctx, model.AuditResourceOrder, 42)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.AuditActionUpdateOrderStatus, got[0].Action)
	})
}
