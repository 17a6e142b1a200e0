package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusAccepted OrderStatus = "ACCEPTED"
	OrderStatusPaid     OrderStatus = "PAID"
)

// 注文ヘッダ。作成後に変わるのはStatusとActiveだけ
type Order struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	UserID       int64           `gorm:"not null;index"`
	FullName     string          `gorm:"type:varchar(200);not null;default:''"`
	Email        string          `gorm:"type:varchar(254);not null;default:''"`
	Phone        string          `gorm:"type:varchar(20);not null;default:''"`
	DeliveryType string          `gorm:"type:varchar(50);not null;default:''"`
	PaymentType  string          `gorm:"type:varchar(50);not null;default:''"`
	TotalCost    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;index"`
	City         string          `gorm:"type:varchar(200);not null;default:''"`
	Address      string          `gorm:"type:varchar(500);not null;default:''"`
	Active       bool            `gorm:"not null;default:true;index"`
	Products     []OrderProduct  `gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime;index"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime"`
}
