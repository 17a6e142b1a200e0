package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細。(user, product)で一意
// Priceは最後に更新した時点の 数量×単価
type Basket struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null;uniqueIndex:idx_baskets_user_product"`
	ProductID int64           `gorm:"not null;uniqueIndex:idx_baskets_user_product"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	Quantity  int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime"`
}
