package model

import "time"

// 1ユーザーにつき1件
type Profile struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UserID   int64  `gorm:"not null;uniqueIndex"`
	User     User   `gorm:"foreignKey:UserID"`
	FullName string `gorm:"type:varchar(200);not null;default:''"`
	//電話番号は11桁
	Phone     string `gorm:"type:varchar(11);not null;default:''"`
	Avatar    string `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
