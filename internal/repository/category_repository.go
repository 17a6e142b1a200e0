package repository

import (
	"context"

	"shop/internal/domain/model"
)

type CategoryRepository interface {
	//親なしのカテゴリと直下のサブカテゴリ
	ListRoots(ctx context.Context) ([]model.Category, error)
}

type TagRepository interface {
	//categoryIDがnilなら全件
	List(ctx context.Context, categoryID *int64) ([]model.Tag, error)
}
