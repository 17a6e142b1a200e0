package model

type Specification struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(200);not null"`
	Value string `gorm:"type:varchar(500);not null"`
}
