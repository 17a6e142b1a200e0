package model

type Tag struct {
	ID   string `gorm:"primaryKey;type:varchar(50)"`
	Name string `gorm:"type:varchar(100);not null"`
}
