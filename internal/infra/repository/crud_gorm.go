package repository

import (
	"context"

	repo "shop/internal/repository"

	"gorm.io/gorm"
)

// 主キー1カラムのテーブルに対する汎用CRUD
type CRUDGormRepository[T any, K comparable] struct {
	db        *gorm.DB
	keyColumn string
}

// DI
func NewCRUDGormRepository[T any, K comparable](db *gorm.DB, keyColumn string) *CRUDGormRepository[T, K] {
	return &CRUDGormRepository[T, K]{db: db, keyColumn: keyColumn}
}

func (r *CRUDGormRepository[T, K]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.db.WithContext(ctx).Order(r.keyColumn + " asc").Find(&rows).Error; err != nil {
		return []T{}, translateError(err)
	}
	return rows, nil
}

func (r *CRUDGormRepository[T, K]) Get(ctx context.Context, key K) (T, error) {
	return r.get(r.db.WithContext(ctx), key)
}

func (r *CRUDGormRepository[T, K]) get(tx *gorm.DB, key K) (T, error) {
	var row T
	if err := tx.Where(r.keyColumn+" = ?", key).First(&row).Error; err != nil {
		var zero T
		return zero, translateError(err)
	}
	return row, nil
}

func (r *CRUDGormRepository[T, K]) Create(ctx context.Context, row T) (T, error) {
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var zero T
		return zero, translateError(err)
	}
	return row, nil
}

// fieldsに入っているカラムだけ更新して、更新後の行を返す
func (r *CRUDGormRepository[T, K]) Update(ctx context.Context, key K, fields repo.Fields) (T, error) {
	tx := r.db.WithContext(ctx)

	row, err := r.get(tx, key)
	if err != nil {
		return row, err
	}
	if len(fields) == 0 {
		return row, nil
	}

	if err := tx.Model(&row).Updates(map[string]any(fields)).Error; err != nil {
		var zero T
		return zero, translateError(err)
	}

	// キー自体を変えた場合は新しいキーで読み直す
	if v, ok := fields[r.keyColumn]; ok {
		if k, ok := v.(K); ok {
			key = k
		}
	}
	return r.get(tx, key)
}

func (r *CRUDGormRepository[T, K]) Delete(ctx context.Context, key K) (T, error) {
	tx := r.db.WithContext(ctx)

	row, err := r.get(tx, key)
	if err != nil {
		return row, err
	}

	res := tx.Delete(&row)
	if res.Error != nil {
		var zero T
		return zero, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		var zero T
		return zero, repo.ErrNotFound
	}
	return row, nil
}
