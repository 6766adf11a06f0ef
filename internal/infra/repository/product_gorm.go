package repository

import (
	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DI
func NewProductGormRepository(db *gorm.DB) repo.ProductRepository {
	return NewCRUDGormRepository[model.Product, uuid.UUID](db, "id")
}
