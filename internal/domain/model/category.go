package model

// カテゴリ画像（JSONで保存）
type CategoryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// ネストは1階層のみ。親はParentIDがnull
type Category struct {
	ID            int64         `gorm:"primaryKey;autoIncrement"`
	Title         string        `gorm:"type:varchar(200);not null"`
	Image         CategoryImage `gorm:"type:jsonb;serializer:json"`
	ParentID      *int64        `gorm:"index"`
	Subcategories []Category    `gorm:"foreignKey:ParentID"`
}
