package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 興味・苦手のようにユーザーに属するレコード
type PreferenceRepository[T any] interface {
	CRUDRepository[T, int64]
	ListByUserID(ctx context.Context, userID int64) ([]T, error)
}

type InterestRepository = PreferenceRepository[model.Interest]

type DislikeRepository = PreferenceRepository[model.Dislike]
