package repository

import (
	"context"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	// 在庫が足りるときだけ減算。足りなければfalse
	DecreaseStockIfEnough(ctx context.Context, productID uuid.UUID, qty int64) (bool, error)
}
