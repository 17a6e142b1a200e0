package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CategoryID      int64           `gorm:"not null;index"`
	Category        Category        `gorm:"foreignKey:CategoryID"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Count           int64           `gorm:"not null;default:0"`
	Date            time.Time       `gorm:"not null;autoCreateTime;index"`
	Title           string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text;not null;default:''"`
	FullDescription string          `gorm:"type:text;not null;default:''"`
	FreeDelivery    bool            `gorm:"not null;default:false"`
	Limited         bool            `gorm:"not null;default:false;index"`
	OnBanner        bool            `gorm:"not null;default:false;index"`
	Tags            []Tag           `gorm:"many2many:product_tags;"`
	Specifications  []Specification `gorm:"many2many:product_specifications;"`
	Reviews         []Review        `gorm:"foreignKey:ProductID"`
	Images          []Image         `gorm:"polymorphic:Owner;polymorphicValue:product"`
}
