package repository

import (
	"context"

	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products  repo.ProductRepository
	baskets   repo.BasketRepository
	orders    repo.OrderRepository
	payments  repo.PaymentRepository
	profiles  repo.ProfileRepository
	users     repo.UserRepository
	auditLogs repo.AuditLogRepository
}

func (r *txReposGorm) Products() repo.ProductRepository   { return r.products }
func (r *txReposGorm) Baskets() repo.BasketRepository     { return r.baskets }
func (r *txReposGorm) Orders() repo.OrderRepository       { return r.orders }
func (r *txReposGorm) Payments() repo.PaymentRepository   { return r.payments }
func (r *txReposGorm) Profiles() repo.ProfileRepository   { return r.profiles }
func (r *txReposGorm) Users() repo.UserRepository         { return r.users }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository { return r.auditLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:  NewProductGormRepository(tx),
			baskets:   NewBasketGormRepository(tx),
			orders:    NewOrderGormRepository(tx),
			payments:  NewPaymentGormRepository(tx),
			profiles:  NewProfileGormRepository(tx),
			users:     NewUserGormRepository(tx),
			auditLogs: NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
