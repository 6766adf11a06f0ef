package repository

import (
	"context"

	"shop/internal/domain/model"
)

// ユーザーの保存・取得とアレルギーの紐づけ
type UserRepository interface {
	CRUDRepository[model.User, int64]

	//メールからユーザーを一件取得する。無ければErrNotFound
	FindByEmail(ctx context.Context, email string) (model.User, error)

	//ユーザーに紐づくアレルギー一覧
	ListAllergies(ctx context.Context, userID int64) ([]model.Allergy, error)
	// 紐づけが無ければErrNotFound
	FindUserAllergy(ctx context.Context, userID int64, allergyName string) (model.UserAllergy, error)
	AddAllergy(ctx context.Context, ua model.UserAllergy) error
	RemoveAllergy(ctx context.Context, userID int64, allergyName string) error
}

type AllergyRepository interface {
	CRUDRepository[model.Allergy, string]
}
