package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	repo "shop/internal/repository"
)

// CRUDUsecase は1テーブルのCRUDをHTTPErrorに変換して返す
type CRUDUsecase[T any, K comparable] struct {
	repo repo.CRUDRepository[T, K]
	log  *slog.Logger
	name string
}

func NewCRUDUsecase[T any, K comparable](r repo.CRUDRepository[T, K], log *slog.Logger, name string) *CRUDUsecase[T, K] {
	return &CRUDUsecase[T, K]{repo: r, log: log, name: name}
}

func (u *CRUDUsecase[T, K]) List(ctx context.Context) ([]T, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return []T{}, u.fail("List", err)
	}
	return rows, nil
}

func (u *CRUDUsecase[T, K]) Get(ctx context.Context, key K) (T, error) {
	row, err := u.repo.Get(ctx, key)
	if err != nil {
		var zero T
		return zero, u.fail("Get", err)
	}
	return row, nil
}

func (u *CRUDUsecase[T, K]) Create(ctx context.Context, row T) (T, error) {
	created, err := u.repo.Create(ctx, row)
	if err != nil {
		var zero T
		return zero, u.fail("Create", err)
	}
	return created, nil
}

// 渡されたカラムだけ更新
func (u *CRUDUsecase[T, K]) Update(ctx context.Context, key K, fields repo.Fields) (T, error) {
	row, err := u.repo.Update(ctx, key, fields)
	if err != nil {
		var zero T
		return zero, u.fail("Update", err)
	}
	return row, nil
}

func (u *CRUDUsecase[T, K]) Delete(ctx context.Context, key K) (T, error) {
	row, err := u.repo.Delete(ctx, key)
	if errors.Is(err, repo.ErrForeignKey) {
		var zero T
		return zero, NewHTTPError(http.StatusConflict, msgReferenced)
	}
	if err != nil {
		var zero T
		return zero, u.fail("Delete", err)
	}
	return row, nil
}

func (u *CRUDUsecase[T, K]) fail(method string, err error) error {
	return storeError(u.log, u.name+"."+method, err)
}
