package usecase

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Tx
// =====================

type MockTxManager struct {
	repos *MockTxRepos
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.repos.inTx = true
	defer func() { m.repos.inTx = false }()
	return fn(m.repos)
}

type MockTxRepos struct {
	products  *MockProductRepository
	baskets   *MockBasketRepository
	orders    *MockOrderRepository
	payments  *MockPaymentRepository
	profiles  *MockProfileRepository
	users     *MockUserRepository
	auditLogs *MockAuditLogRepository

	//WithinTxの中にいる間だけtrue
	inTx bool
}

func newMockTxRepos() *MockTxRepos {
	return &MockTxRepos{
		products:  new(MockProductRepository),
		baskets:   new(MockBasketRepository),
		orders:    new(MockOrderRepository),
		payments:  new(MockPaymentRepository),
		profiles:  new(MockProfileRepository),
		users:     new(MockUserRepository),
		auditLogs: new(MockAuditLogRepository),
	}
}

func (r *MockTxRepos) Products() repo.ProductRepository   { return r.products }
func (r *MockTxRepos) Baskets() repo.BasketRepository     { return r.baskets }
func (r *MockTxRepos) Orders() repo.OrderRepository       { return r.orders }
func (r *MockTxRepos) Payments() repo.PaymentRepository   { return r.payments }
func (r *MockTxRepos) Profiles() repo.ProfileRepository   { return r.profiles }
func (r *MockTxRepos) Users() repo.UserRepository         { return r.users }
func (r *MockTxRepos) AuditLogs() repo.AuditLogRepository { return r.auditLogs }

var _ repo.TransactionManager = (*MockTxManager)(nil)
var _ repo.TxRepos = (*MockTxRepos)(nil)

// =====================
// Repositories
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListCatalog(ctx context.Context, q repo.CatalogQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ListPopular(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) ListLimited(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) ListBanners(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type MockBasketRepository struct {
	mock.Mock
}

func (m *MockBasketRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Basket, error) {
	args := m.Called(ctx, userID)
	bs, _ := args.Get(0).([]model.Basket)
	return bs, args.Error(1)
}

func (m *MockBasketRepository) FindByUserAndProductForUpdate(ctx context.Context, userID int64, productID int64) (model.Basket, error) {
	args := m.Called(ctx, userID, productID)
	b, _ := args.Get(0).(model.Basket)
	return b, args.Error(1)
}

func (m *MockBasketRepository) Create(ctx context.Context, basket *model.Basket) error {
	args := m.Called(ctx, basket)
	return args.Error(0)
}

func (m *MockBasketRepository) UpdateQuantity(ctx context.Context, basketID int64, qty int64, price decimal.Decimal) error {
	args := m.Called(ctx, basketID, qty, price)
	return args.Error(0)
}

func (m *MockBasketRepository) DeleteByID(ctx context.Context, basketID int64) error {
	args := m.Called(ctx, basketID)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByIDAndUserID(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByIDAndUserIDForUpdate(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindLastActiveByUserID(ctx context.Context, userID int64) (model.Order, error) {
	args := m.Called(ctx, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, active bool) error {
	args := m.Called(ctx, orderID, status, active)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(model.Profile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementTokenVersion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListByResource(ctx context.Context, resourceType model.AuditResourceType, resourceID int64) ([]model.AuditLog, error) {
	args := m.Called(ctx, resourceType, resourceID)
	ls, _ := args.Get(0).([]model.AuditLog)
	return ls, args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListRoots(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context, categoryID *int64) ([]model.Tag, error) {
	args := m.Called(ctx, categoryID)
	ts, _ := args.Get(0).([]model.Tag)
	return ts, args.Error(1)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) List(ctx context.Context, page int, limit int) ([]model.Sale, int64, error) {
	args := m.Called(ctx, page, limit)
	ss, _ := args.Get(0).([]model.Sale)
	return ss, args.Get(1).(int64), args.Error(2)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type stubHasher struct {
	err error
}

func (h stubHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}
