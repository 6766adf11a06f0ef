package repository

import (
	"shop/internal/domain/model"

	"github.com/google/uuid"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	CRUDRepository[model.Product, uuid.UUID]
}
