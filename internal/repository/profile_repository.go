package repository

import (
	"context"

	"shop/internal/domain/model"
)

type ProfileRepository interface {
	//なければ作る（User込み）
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Profile, error)
	Update(ctx context.Context, profile model.Profile) error
}
