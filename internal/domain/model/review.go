package model

import "time"

const (
	ReviewRateMin = 1
	ReviewRateMax = 5
)

type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID int64     `gorm:"not null;index"`
	Author    string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Text      string    `gorm:"type:text;not null"`
	Rate      int       `gorm:"not null"`
	Date      time.Time `gorm:"not null;autoCreateTime"`
}
