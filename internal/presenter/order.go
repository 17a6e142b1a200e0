package presenter

import (
	"strconv"

	"shop/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderProductRecord struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Price        string   `json:"price"`
	Count        int64    `json:"count"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Href         string   `json:"href"`
	FreeDelivery bool     `json:"freeDelivery"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	Reviews      int64    `json:"reviews"`
	Rating       float64  `json:"rating"`
}

type OrderRecord struct {
	OrderID      int64                `json:"orderId"`
	CreatedAt    string               `json:"createdAt"`
	FullName     string               `json:"fullName"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	DeliveryType string               `json:"deliveryType"`
	PaymentType  string               `json:"paymentType"`
	TotalCost    string               `json:"totalCost"`
	Status       string               `json:"status"`
	City         string               `json:"city"`
	Address      string               `json:"address"`
	Active       bool                 `json:"active"`
	Products     []OrderProductRecord `json:"products"`
}

// 注文時点の商品をコピーする
func (p *Presenter) Snapshot(prod model.Product, count int64) model.OrderProduct {
	images := p.ImageURLs(prod.Images)
	tags := tagIDs(prod.Tags)

	return model.OrderProduct{
		ProductID:    prod.ID,
		Category:     strconv.FormatInt(prod.CategoryID, 10),
		Price:        prod.Price,
		Count:        count,
		Date:         p.format(prod.Date, ListDateLayout),
		Title:        prod.Title,
		Description:  prod.Description,
		Href:         Href(prod.ID),
		FreeDelivery: prod.FreeDelivery,
		Images:       images,
		Tags:         tags,
		Reviews:      int64(len(prod.Reviews)),
		Rating:       RatingDecimal(prod.Reviews),
	}
}

// 単価×数量の合計
func TotalCost(lines []model.OrderProduct) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(l.Count)))
	}
	return total
}

func (p *Presenter) Order(o model.Order) OrderRecord {
	products := make([]OrderProductRecord, 0, len(o.Products))
	for _, op := range o.Products {
		products = append(products, OrderProductRecord{
			ID:           strconv.FormatInt(op.ProductID, 10),
			Category:     op.Category,
			Price:        Money(op.Price),
			Count:        op.Count,
			Date:         op.Date,
			Title:        op.Title,
			Description:  op.Description,
			Href:         op.Href,
			FreeDelivery: op.FreeDelivery,
			Images:       nonNil(op.Images),
			Tags:         nonNil(op.Tags),
			Reviews:      op.Reviews,
			Rating:       op.Rating.InexactFloat64(),
		})
	}

	return OrderRecord{
		OrderID:      o.ID,
		CreatedAt:    p.format(o.CreatedAt, OrderDateLayout),
		FullName:     o.FullName,
		Email:        o.Email,
		Phone:        o.Phone,
		DeliveryType: o.DeliveryType,
		PaymentType:  o.PaymentType,
		TotalCost:    Money(o.TotalCost),
		Status:       string(o.Status),
		City:         o.City,
		Address:      o.Address,
		Active:       o.Active,
		Products:     products,
	}
}

func (p *Presenter) Orders(orders []model.Order) []OrderRecord {
	out := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		out = append(out, p.Order(o))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
