package model

import "time"

// カード番号は下4桁のみ保持。セキュリティコードは保存しない
type Payment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       int64     `gorm:"not null;index"`
	OrderID      *int64    `gorm:"index"`
	NumberMasked string    `gorm:"type:varchar(32);not null"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Month        string    `gorm:"type:varchar(2);not null"`
	Year         string    `gorm:"type:varchar(4);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
}
