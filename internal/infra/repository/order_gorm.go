package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func purchasesByID(db *gorm.DB) *gorm.DB {
	return db.Order("purchases.id asc")
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	items := make([]model.Order, 0)
	err := r.db.WithContext(ctx).
		Preload("Purchases", purchasesByID).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, translateError(err)
	}
	return items, nil
}

// 開いている注文（カート）。正常なら0件か1件
func (r *OrderGormRepository) ListOpenByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	items := make([]model.Order, 0)
	err := r.db.WithContext(ctx).
		Preload("Purchases", purchasesByID).
		Preload("Purchases.Product").
		Where("user_id = ? AND checked_out = ?", userID, false).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, translateError(err)
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&order).Error; err != nil {
		return model.Order{}, translateError(err)
	}
	return order, nil
}

func (r *OrderGormRepository) Save(ctx context.Context, order model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.ID).
		UpdateColumns(map[string]any{
			"total_amount": order.TotalAmount,
			"checked_out":  order.CheckedOut,
			"updated_at":   order.UpdatedAt,
		})

	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 同じユーザーのカート操作を直列にする
func (r *OrderGormRepository) LockUser(ctx context.Context, userID int64) error {
	var u model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		First(&u).Error
	return translateError(err)
}
