package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"shop/internal/domain/model"
	"shop/internal/presenter"
	repo "shop/internal/repository"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	presenter *presenter.Presenter
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, p *presenter.Presenter) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, presenter: p}
}

type CheckoutLine struct {
	ProductID int64
	Count     int64
}

// 注文者情報。Productsが空ならカートから作る
type CheckoutInput struct {
	Products     []CheckoutLine
	FullName     string
	Email        string
	Phone        string
	DeliveryType string
	PaymentType  string
	City         string
	Address      string
}

// 商品の今の状態をコピーして注文を作る。在庫は減らさない
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (presenter.OrderRecord, error) {
	if userID <= 0 {
		return presenter.OrderRecord{}, unauthorized()
	}

	order := model.Order{
		UserID:       userID,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		DeliveryType: in.DeliveryType,
		PaymentType:  in.PaymentType,
		City:         in.City,
		Address:      in.Address,
		Status:       model.OrderStatusPending,
		Active:       true,
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カートから作る場合も同じトランザクションで読む
		lines, err := checkoutLines(ctx, r.Baskets(), userID, in.Products)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.ProductID)
		}
		products, err := r.Products().FindByIDs(ctx, ids)
		if err != nil {
			return dbError(err)
		}
		byID := make(map[int64]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		//スナップショット
		snapshot := make([]model.OrderProduct, 0, len(lines))
		for _, l := range lines {
			p, ok := byID[l.ProductID]
			if !ok {
				return notFound()
			}
			snapshot = append(snapshot, u.presenter.Snapshot(p, l.Count))
		}
		order.Products = snapshot
		order.TotalCost = presenter.TotalCost(snapshot)

		if err := r.Orders().Create(ctx, &order); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return presenter.OrderRecord{}, err
	}

	return u.presenter.Order(order), nil
}

// 同じ商品の行はまとめる
func checkoutLines(ctx context.Context, baskets repo.BasketRepository, userID int64, requested []CheckoutLine) ([]CheckoutLine, error) {
	if len(requested) == 0 {
		items, err := baskets.ListByUserID(ctx, userID)
		if err != nil {
			return nil, dbError(err)
		}
		for _, it := range items {
			requested = append(requested, CheckoutLine{ProductID: it.ProductID, Count: it.Quantity})
		}
	}
	if len(requested) == 0 {
		return nil, fieldError("products", "basket is empty")
	}

	merged := make([]CheckoutLine, 0, len(requested))
	index := map[int64]int{}
	for _, l := range requested {
		if l.ProductID <= 0 || l.Count < 1 {
			return nil, fieldError("products", "each product needs an id and a count of at least 1")
		}
		if i, ok := index[l.ProductID]; ok {
			merged[i].Count += l.Count
			continue
		}
		index[l.ProductID] = len(merged)
		merged = append(merged, l)
	}
	return merged, nil
}

// 新しい順
func (u *OrderUsecase) List(ctx context.Context, userID int64) ([]presenter.OrderRecord, error) {
	if userID <= 0 {
		return nil, unauthorized()
	}
	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, dbError(err)
	}
	return u.presenter.Orders(orders), nil
}

func (u *OrderUsecase) Get(ctx context.Context, userID int64, orderID int64) (presenter.OrderRecord, error) {
	if userID <= 0 {
		return presenter.OrderRecord{}, unauthorized()
	}
	o, err := u.orders.FindByIDAndUserID(ctx, orderID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return presenter.OrderRecord{}, notFound()
	}
	if err != nil {
		return presenter.OrderRecord{}, dbError(err)
	}
	return u.presenter.Order(o), nil
}

// activeな注文のうち一番新しいもの
func (u *OrderUsecase) GetLastActive(ctx context.Context, userID int64) (presenter.OrderRecord, error) {
	if userID <= 0 {
		return presenter.OrderRecord{}, unauthorized()
	}
	o, err := u.orders.FindLastActiveByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return presenter.OrderRecord{}, notFound()
	}
	if err != nil {
		return presenter.OrderRecord{}, dbError(err)
	}
	return u.presenter.Order(o), nil
}

// PENDING -> ACCEPTED
func (u *OrderUsecase) Confirm(ctx context.Context, userID int64, orderID int64) (presenter.OrderRecord, error) {
	if userID <= 0 {
		return presenter.OrderRecord{}, unauthorized()
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDAndUserIDForUpdate(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		if err != nil {
			return dbError(err)
		}
		if !o.Active {
			return fieldError("status", "order is no longer active")
		}
		if o.Status == model.OrderStatusAccepted {
			out = o
			return nil
		}

		if err := changeOrderStatus(ctx, r, userID, &o, model.OrderStatusAccepted, true); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return presenter.OrderRecord{}, err
	}
	return u.presenter.Order(out), nil
}

type orderStatusSnapshot struct {
	Status model.OrderStatus `json:"status"`
	Active bool              `json:"active"`
}

// ステータス変更と監査ログはセット
func changeOrderStatus(ctx context.Context, r repo.TxRepos, actorID int64, o *model.Order, status model.OrderStatus, active bool) error {
	before, _ := json.Marshal(orderStatusSnapshot{Status: o.Status, Active: o.Active})
	after, _ := json.Marshal(orderStatusSnapshot{Status: status, Active: active})

	if err := r.Orders().UpdateStatus(ctx, o.ID, status, active); err != nil {
		return dbError(err)
	}
	if err := r.AuditLogs().Create(ctx, model.AuditLog{
		ActorUserID:  actorID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   o.ID,
		BeforeJSON:   string(before),
		AfterJSON:    string(after),
	}); err != nil {
		return dbError(err)
	}

	o.Status = status
	o.Active = active
	return nil
}
