package model

import "fmt"

// 画像の持ち主の種類
type ImageOwnerKind string

const (
	ImageOwnerProduct ImageOwnerKind = "product"
)

// 画像の持ち主（種類+ID）
type ImageOwner struct {
	Kind ImageOwnerKind
	ID   int64
}

// ProductのImagesはpolymorphicでowner_type/owner_idに紐づく
type Image struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	File      string         `gorm:"type:varchar(500);not null"`
	OwnerType ImageOwnerKind `gorm:"type:varchar(30);not null;index:idx_images_owner"`
	OwnerID   int64          `gorm:"not null;index:idx_images_owner"`
}

// 未知の種類はエラー
func (i Image) Owner() (ImageOwner, error) {
	switch i.OwnerType {
	case ImageOwnerProduct:
		return ImageOwner{Kind: i.OwnerType, ID: i.OwnerID}, nil
	default:
		return ImageOwner{}, fmt.Errorf("unknown image owner kind %q", i.OwnerType)
	}
}
