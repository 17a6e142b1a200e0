package repository

import (
	"context"

	"shop/internal/domain/model"
)

type SaleRepository interface {
	List(ctx context.Context, page int, limit int) ([]model.Sale, int64, error)
}
