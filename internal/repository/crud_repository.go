package repository

import "context"

// Fields は部分更新のカラム→値。
// 入っているキーだけ更新する（未指定とnullは区別せず「触らない」）。
type Fields map[string]any

// Set はvがnilでなければ追加する
func Set[V any](f Fields, column string, v *V) {
	if v != nil {
		f[column] = *v
	}
}

// 単一テーブルのCRUDの約束
type CRUDRepository[T any, K comparable] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, key K) (T, error)
	Create(ctx context.Context, row T) (T, error)
	// 対象が無ければErrNotFound
	Update(ctx context.Context, key K, fields Fields) (T, error)
	// 削除した行を返す
	Delete(ctx context.Context, key K) (T, error)
}
