package model

import "github.com/shopspring/decimal"

// 注文時点の商品のコピー。作成後は更新しない
type OrderProduct struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	OrderID      int64           `gorm:"not null;index"`
	ProductID    int64           `gorm:"not null;index"`
	Category     string          `gorm:"type:varchar(50);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Count        int64           `gorm:"not null"`
	Date         string          `gorm:"type:varchar(100);not null"`
	Title        string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text;not null;default:''"`
	Href         string          `gorm:"type:varchar(100);not null"`
	FreeDelivery bool            `gorm:"not null;default:false"`
	Images       []string        `gorm:"type:jsonb;serializer:json"`
	Tags         []string        `gorm:"type:jsonb;serializer:json"`
	Reviews      int64           `gorm:"not null;default:0"`
	Rating       decimal.Decimal `gorm:"type:numeric(3,1);not null;default:0"`
}
