package presenter

import (
	"strconv"
	"time"

	"shop/internal/domain/model"
)

// 一覧・カートで使う商品
type ProductRecord struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Price        string   `json:"price"`
	Count        int64    `json:"count"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	FreeDelivery bool     `json:"freeDelivery"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	Href         string   `json:"href"`
	Reviews      int      `json:"reviews"`
	Rating       float64  `json:"rating"`
}

type ReviewRecord struct {
	Author string `json:"author"`
	Email  string `json:"email"`
	Text   string `json:"text"`
	Rate   int    `json:"rate"`
	Date   string `json:"date"`
}

type SpecificationRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductDetailRecord struct {
	ID              string                `json:"id"`
	Category        string                `json:"category"`
	Price           string                `json:"price"`
	Count           int64                 `json:"count"`
	Date            string                `json:"date"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	FullDescription string                `json:"fullDescription"`
	FreeDelivery    bool                  `json:"freeDelivery"`
	Images          []string              `json:"images"`
	Tags            []string              `json:"tags"`
	Reviews         []ReviewRecord        `json:"reviews"`
	Specifications  []SpecificationRecord `json:"specifications"`
	Href            string                `json:"href"`
	Rating          float64               `json:"rating"`
}

func (p *Presenter) Product(prod model.Product) ProductRecord {
	return ProductRecord{
		ID:           strconv.FormatInt(prod.ID, 10),
		Category:     strconv.FormatInt(prod.CategoryID, 10),
		Price:        Money(prod.Price),
		Count:        prod.Count,
		Date:         p.format(prod.Date, ListDateLayout),
		Title:        prod.Title,
		Description:  prod.Description,
		FreeDelivery: prod.FreeDelivery,
		Images:       p.ImageURLs(prod.Images),
		Tags:         tagIDs(prod.Tags),
		Href:         Href(prod.ID),
		Reviews:      len(prod.Reviews),
		Rating:       Rating(prod.Reviews),
	}
}

func (p *Presenter) Products(products []model.Product) []ProductRecord {
	out := make([]ProductRecord, 0, len(products))
	for _, prod := range products {
		out = append(out, p.Product(prod))
	}
	return out
}

func (p *Presenter) ProductDetail(prod model.Product) ProductDetailRecord {
	reviews := make([]ReviewRecord, 0, len(prod.Reviews))
	for _, r := range prod.Reviews {
		reviews = append(reviews, p.Review(r))
	}
	specs := make([]SpecificationRecord, 0, len(prod.Specifications))
	for _, s := range prod.Specifications {
		specs = append(specs, SpecificationRecord{Name: s.Name, Value: s.Value})
	}

	return ProductDetailRecord{
		ID:              strconv.FormatInt(prod.ID, 10),
		Category:        strconv.FormatInt(prod.CategoryID, 10),
		Price:           Money(prod.Price),
		Count:           prod.Count,
		Date:            p.format(prod.Date, time.RFC3339),
		Title:           prod.Title,
		Description:     prod.Description,
		FullDescription: prod.FullDescription,
		FreeDelivery:    prod.FreeDelivery,
		Images:          p.ImageURLs(prod.Images),
		Tags:            tagIDs(prod.Tags),
		Reviews:         reviews,
		Specifications:  specs,
		Href:            Href(prod.ID),
		Rating:          Rating(prod.Reviews),
	}
}

func (p *Presenter) Review(r model.Review) ReviewRecord {
	return ReviewRecord{
		Author: r.Author,
		Email:  r.Email,
		Text:   r.Text,
		Rate:   r.Rate,
		Date:   p.format(r.Date, time.RFC3339),
	}
}

// カートの明細。priceは数量×単価、dateの書式が一覧と違う
func (p *Presenter) BasketItem(b model.Basket) ProductRecord {
	rec := p.Product(b.Product)
	rec.Price = Money(b.Price)
	rec.Count = b.Quantity
	rec.Date = p.format(b.Product.Date, BasketDateLayout)
	return rec
}

func (p *Presenter) Basket(items []model.Basket) []ProductRecord {
	out := make([]ProductRecord, 0, len(items))
	for _, b := range items {
		out = append(out, p.BasketItem(b))
	}
	return out
}
