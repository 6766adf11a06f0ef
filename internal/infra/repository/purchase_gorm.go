package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

// DI
func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&p).Error; err != nil {
		return model.Purchase{}, translateError(err)
	}
	return p, nil
}

// 明細の数量・金額・ステータスを保存
func (r *PurchaseGormRepository) Save(ctx context.Context, p model.Purchase) error {
	res := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ?", p.ID).
		UpdateColumns(map[string]any{
			"quantity":     p.Quantity,
			"total_amount": p.TotalAmount,
			"status":       string(p.Status),
			"updated_at":   p.UpdatedAt,
		})

	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PurchaseGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Purchase{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
