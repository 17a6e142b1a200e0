package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ProductID int64           `gorm:"not null;uniqueIndex"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	SalePrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DateFrom  time.Time       `gorm:"type:date;not null"`
	DateTo    time.Time       `gorm:"type:date;not null"`
}
