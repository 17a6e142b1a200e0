package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

// プロフィールを取得し、無ければ作成
func (r *ProfileGormRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Profile, error) {
	var profile model.Profile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//ユーザーがいなければ404
		var user model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			return mapError(err)
		}

		findErr := tx.Where("user_id = ?", userID).First(&profile).Error
		if findErr == nil {
			profile.User = user
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る
		profile = model.Profile{UserID: userID}
		if err := tx.Omit("User").Create(&profile).Error; err != nil {
			return mapError(err)
		}
		profile.User = user
		return nil
	})
	if err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

func (r *ProfileGormRepository) Update(ctx context.Context, profile model.Profile) error {
	res := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"full_name": profile.FullName,
			"phone":     profile.Phone,
			"avatar":    profile.Avatar,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
