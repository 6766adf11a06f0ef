package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/validator"
)

// UserUsecase は /user の業務ロジックです。
// ユーザーの取得はemailでもidでもよい。
type UserUsecase struct {
	users     repo.UserRepository
	allergies repo.AllergyRepository
	crud      *CRUDUsecase[model.User, int64]
	log       *slog.Logger
}

func NewUserUsecase(users repo.UserRepository, allergies repo.AllergyRepository, log *slog.Logger) *UserUsecase {
	return &UserUsecase{
		users:     users,
		allergies: allergies,
		crud:      NewCRUDUsecase[model.User, int64](users, log, "user"),
		log:       log,
	}
}

type UserInput struct {
	LastName      string     `json:"last_name" validate:"required"`
	FirstName     string     `json:"first_name" validate:"required"`
	BirthDate     model.Date `json:"birth_date"`
	Email         string     `json:"email" validate:"required,email"`
	PhoneNumber   *string    `json:"phone_number"`
	Street1       string     `json:"street1" validate:"required"`
	Street2       *string    `json:"street2"`
	City          string     `json:"city" validate:"required"`
	StateProvince string     `json:"state_province" validate:"required"`
	Zip           string     `json:"zip" validate:"required"`
	Country       string     `json:"country" validate:"required"`
}

// conditionは変更不可。渡されたら422
type UserPatch struct {
	LastName      *string          `json:"last_name"`
	FirstName     *string          `json:"first_name"`
	BirthDate     *model.Date      `json:"birth_date"`
	Email         *string          `json:"email"`
	PhoneNumber   *string          `json:"phone_number"`
	Condition     *model.Condition `json:"condition"`
	Street1       *string          `json:"street1"`
	Street2       *string          `json:"street2"`
	City          *string          `json:"city"`
	StateProvince *string          `json:"state_province"`
	Zip           *string          `json:"zip"`
	Country       *string          `json:"country"`
}

func (p UserPatch) Fields() repo.Fields {
	f := repo.Fields{}
	repo.Set(f, "last_name", p.LastName)
	repo.Set(f, "first_name", p.FirstName)
	if p.BirthDate != nil && !p.BirthDate.IsZero() {
		f["birth_date"] = *p.BirthDate
	}
	repo.Set(f, "email", p.Email)
	repo.Set(f, "phone_number", p.PhoneNumber)
	repo.Set(f, "street1", p.Street1)
	repo.Set(f, "street2", p.Street2)
	repo.Set(f, "city", p.City)
	repo.Set(f, "state_province", p.StateProvince)
	repo.Set(f, "zip", p.Zip)
	repo.Set(f, "country", p.Country)
	return f
}

// 再有効化で上書きする項目（id/email/condition以外で値のあるもの）
func (in UserInput) reactivateFields() repo.Fields {
	f := repo.Fields{
		"last_name":      in.LastName,
		"first_name":     in.FirstName,
		"street1":        in.Street1,
		"city":           in.City,
		"state_province": in.StateProvince,
		"zip":            in.Zip,
		"country":        in.Country,
		"condition":      string(model.ConditionActive),
	}
	if !in.BirthDate.IsZero() {
		f["birth_date"] = in.BirthDate
	}
	repo.Set(f, "phone_number", in.PhoneNumber)
	repo.Set(f, "street2", in.Street2)
	return f
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	return u.crud.List(ctx)
}

func (u *UserUsecase) Get(ctx context.Context, emailOrID string) (model.User, error) {
	user, err := u.lookup(ctx, emailOrID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("No user found with email or id %s", emailOrID))
	}
	if err != nil {
		return model.User{}, storeError(u.log, "user.Get", err)
	}
	return user, nil
}

// 数字ならid、それ以外はemailで探す
func (u *UserUsecase) lookup(ctx context.Context, emailOrID string) (model.User, error) {
	if id, err := strconv.ParseInt(emailOrID, 10, 64); err == nil {
		return u.users.Get(ctx, id)
	}
	return u.users.FindByEmail(ctx, emailOrID)
}

// Create は新規作成。無効化済みの同じemailがあれば同じidのまま再有効化する
func (u *UserUsecase) Create(ctx context.Context, in UserInput) (model.User, error) {
	if in.BirthDate.IsZero() {
		return model.User{}, NewHTTPError(http.StatusUnprocessableEntity, "birth_date is required")
	}
	if err := validatePhone(in.PhoneNumber); err != nil {
		return model.User{}, err
	}

	existing, err := u.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		if existing.Condition != model.ConditionDeactivated {
			return model.User{}, NewHTTPError(http.StatusConflict,
				fmt.Sprintf("User with email %s already exists and is active.", in.Email))
		}
		u.log.Info("reactivating user", slog.Int64("user_id", existing.ID))
		return u.crud.Update(ctx, existing.ID, in.reactivateFields())
	case !errors.Is(err, repo.ErrNotFound):
		return model.User{}, storeError(u.log, "user.Create", err)
	}

	return u.crud.Create(ctx, model.User{
		LastName:      in.LastName,
		FirstName:     in.FirstName,
		BirthDate:     in.BirthDate,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Condition:     model.ConditionActive,
		Street1:       in.Street1,
		Street2:       in.Street2,
		City:          in.City,
		StateProvince: in.StateProvince,
		Zip:           in.Zip,
		Country:       in.Country,
	})
}

func (u *UserUsecase) Update(ctx context.Context, emailOrID string, p UserPatch) (model.User, error) {
	if p.Condition != nil {
		return model.User{}, NewHTTPError(http.StatusUnprocessableEntity,
			"Data validation error: Do not pass the condition field here")
	}
	if err := validatePhone(p.PhoneNumber); err != nil {
		return model.User{}, err
	}

	user, err := u.lookup(ctx, emailOrID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("User not found with email or id %s", emailOrID))
	}
	if err != nil {
		return model.User{}, storeError(u.log, "user.Update", err)
	}
	return u.crud.Update(ctx, user.ID, p.Fields())
}

func (u *UserUsecase) Deactivate(ctx context.Context, userID int64) (model.User, error) {
	return u.setCondition(ctx, userID, model.ConditionDeactivated)
}

func (u *UserUsecase) MarkForDeletion(ctx context.Context, userID int64) (model.User, error) {
	return u.setCondition(ctx, userID, model.ConditionMarkedForDeletion)
}

func (u *UserUsecase) setCondition(ctx context.Context, userID int64, c model.Condition) (model.User, error) {
	user, err := u.users.Update(ctx, userID, repo.Fields{"condition": string(c)})
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("User not found with email or id %d", userID))
	}
	if err != nil {
		return model.User{}, storeError(u.log, "user.setCondition", err)
	}
	return user, nil
}

func (u *UserUsecase) ListAllergies(ctx context.Context, emailOrID string) ([]model.Allergy, error) {
	user, err := u.Get(ctx, emailOrID)
	if err != nil {
		return []model.Allergy{}, err
	}
	return u.listAllergies(ctx, user.ID)
}

func (u *UserUsecase) listAllergies(ctx context.Context, userID int64) ([]model.Allergy, error) {
	out, err := u.users.ListAllergies(ctx, userID)
	if err != nil {
		return []model.Allergy{}, storeError(u.log, "user.ListAllergies", err)
	}
	return out, nil
}

// AddAllergy は紐づけを追加して、ユーザーのアレルギー一覧を返す
func (u *UserUsecase) AddAllergy(ctx context.Context, userID int64, allergyName string, notes *string) ([]model.Allergy, error) {
	if err := u.checkAllergyAndUser(ctx, userID, allergyName); err != nil {
		return []model.Allergy{}, err
	}

	alreadyExists := NewHTTPError(http.StatusConflict, fmt.Sprintf("Allergy %s already exists for user", allergyName))
	_, err := u.users.FindUserAllergy(ctx, userID, allergyName)
	if err == nil {
		return []model.Allergy{}, alreadyExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return []model.Allergy{}, storeError(u.log, "user.AddAllergy", err)
	}

	err = u.users.AddAllergy(ctx, model.UserAllergy{UserID: userID, AllergyName: allergyName, Notes: notes})
	if errors.Is(err, repo.ErrDuplicate) {
		return []model.Allergy{}, alreadyExists
	}
	if err != nil {
		return []model.Allergy{}, storeError(u.log, "user.AddAllergy", err)
	}
	return u.listAllergies(ctx, userID)
}

func (u *UserUsecase) DeleteAllergy(ctx context.Context, userID int64, allergyName string) ([]model.Allergy, error) {
	if err := u.checkAllergyAndUser(ctx, userID, allergyName); err != nil {
		return []model.Allergy{}, err
	}

	err := u.users.RemoveAllergy(ctx, userID, allergyName)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.Allergy{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Allergy %s not found for user", allergyName))
	}
	if err != nil {
		return []model.Allergy{}, storeError(u.log, "user.DeleteAllergy", err)
	}
	return u.listAllergies(ctx, userID)
}

// アレルギー→ユーザーの順に存在確認
func (u *UserUsecase) checkAllergyAndUser(ctx context.Context, userID int64, allergyName string) error {
	_, err := u.allergies.Get(ctx, allergyName)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Allergy %s not found", allergyName))
	}
	if err != nil {
		return storeError(u.log, "user.checkAllergy", err)
	}

	_, err = u.users.Get(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, fmt.Sprintf("User with id %d not found", userID))
	}
	if err != nil {
		return storeError(u.log, "user.checkUser", err)
	}
	return nil
}

func validatePhone(phone *string) error {
	if phone == nil || validator.ValidPhone(*phone) {
		return nil
	}
	return NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf(
		"Invalid phone number format: %s. Phone number must follow E.164 format (e.g., +1234567890 or 1234567890)",
		*phone))
}
