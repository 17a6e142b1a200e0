package presenter

import (
	"strconv"

	"shop/internal/domain/model"
)

type SubcategoryRecord struct {
	ID    int64               `json:"id"`
	Title string              `json:"title"`
	Image model.CategoryImage `json:"image"`
	Href  string              `json:"href"`
}

type CategoryRecord struct {
	SubcategoryRecord
	Subcategories []SubcategoryRecord `json:"subcategories"`
}

type TagRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SaleRecord struct {
	ID        string   `json:"id"`
	Price     string   `json:"price"`
	SalePrice string   `json:"salePrice"`
	DateFrom  string   `json:"dateFrom"`
	DateTo    string   `json:"dateTo"`
	Title     string   `json:"title"`
	Href      string   `json:"href"`
	Images    []string `json:"images"`
}

// 親カテゴリと直下の子だけ。孫は出さない
func (p *Presenter) Categories(categories []model.Category) []CategoryRecord {
	out := make([]CategoryRecord, 0, len(categories))
	for _, c := range categories {
		if c.ParentID != nil {
			continue
		}
		subs := make([]SubcategoryRecord, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs = append(subs, subcategory(s))
		}
		out = append(out, CategoryRecord{SubcategoryRecord: subcategory(c), Subcategories: subs})
	}
	return out
}

func subcategory(c model.Category) SubcategoryRecord {
	return SubcategoryRecord{
		ID:    c.ID,
		Title: c.Title,
		Image: c.Image,
		Href:  CategoryHref(c.ID),
	}
}

func (p *Presenter) Tags(tags []model.Tag) []TagRecord {
	out := make([]TagRecord, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagRecord{ID: t.ID, Name: t.Name})
	}
	return out
}

func (p *Presenter) Sale(s model.Sale) SaleRecord {
	return SaleRecord{
		ID:        strconv.FormatInt(s.ProductID, 10),
		Price:     Money(s.Product.Price),
		SalePrice: Money(s.SalePrice),
		DateFrom:  p.format(s.DateFrom, SaleDateLayout),
		DateTo:    p.format(s.DateTo, SaleDateLayout),
		Title:     s.Product.Title,
		Href:      Href(s.ProductID),
		Images:    p.ImageURLs(s.Product.Images),
	}
}

func (p *Presenter) Sales(sales []model.Sale) []SaleRecord {
	out := make([]SaleRecord, 0, len(sales))
	for _, s := range sales {
		out = append(out, p.Sale(s))
	}
	return out
}
