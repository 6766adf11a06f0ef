package repository

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
)

// user_idを持つテーブル（interests / dislikes）
type PreferenceGormRepository[T any] struct {
	*CRUDGormRepository[T, int64]
	db *gorm.DB
}

func NewInterestGormRepository(db *gorm.DB) repo.InterestRepository {
	return &PreferenceGormRepository[model.Interest]{
		CRUDGormRepository: NewCRUDGormRepository[model.Interest, int64](db, "id"),
		db:                 db,
	}
}

func NewDislikeGormRepository(db *gorm.DB) repo.DislikeRepository {
	return &PreferenceGormRepository[model.Dislike]{
		CRUDGormRepository: NewCRUDGormRepository[model.Dislike, int64](db, "id"),
		db:                 db,
	}
}

func (r *PreferenceGormRepository[T]) ListByUserID(ctx context.Context, userID int64) ([]T, error) {
	rows := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return []T{}, translateError(err)
	}
	return rows, nil
}
