package repository

import (
	"context"

	"shop/internal/domain/model"
	domainrepo "shop/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	*CRUDGormRepository[model.User, int64]
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{
		CRUDGormRepository: NewCRUDGormRepository[model.User, int64](db, "id"),
		db:                 db,
	}
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return model.User{}, translateError(err)
	}
	return u, nil
}

// ユーザーのアレルギー一覧（allergiesの行を返す）
func (r *userGormRepository) ListAllergies(ctx context.Context, userID int64) ([]model.Allergy, error) {
	out := make([]model.Allergy, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN user_allergies ON user_allergies.allergy_name = allergies.name").
		Where("user_allergies.user_id = ?", userID).
		Order("allergies.name asc").
		Find(&out).Error
	if err != nil {
		return []model.Allergy{}, translateError(err)
	}
	return out, nil
}

func (r *userGormRepository) FindUserAllergy(ctx context.Context, userID int64, allergyName string) (model.UserAllergy, error) {
	var ua model.UserAllergy
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND allergy_name = ?", userID, allergyName).
		First(&ua).Error
	if err != nil {
		return model.UserAllergy{}, translateError(err)
	}
	return ua, nil
}

func (r *userGormRepository) AddAllergy(ctx context.Context, ua model.UserAllergy) error {
	if err := r.db.WithContext(ctx).Create(&ua).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *userGormRepository) RemoveAllergy(ctx context.Context, userID int64, allergyName string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND allergy_name = ?", userID, allergyName).
		Delete(&model.UserAllergy{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	// 0件削除は「紐づけがない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

// アレルギーはnameが主キー
func NewAllergyGormRepository(db *gorm.DB) domainrepo.AllergyRepository {
	return NewCRUDGormRepository[model.Allergy, string](db, "name")
}
