package usecase

import (
	"log/slog"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// アレルギーはnameがキー
type AllergyUsecase struct {
	*CRUDUsecase[model.Allergy, string]
}

func NewAllergyUsecase(r repo.AllergyRepository, log *slog.Logger) *AllergyUsecase {
	return &AllergyUsecase{CRUDUsecase: NewCRUDUsecase[model.Allergy, string](r, log, "allergy")}
}

type AllergyInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (in AllergyInput) Model() model.Allergy {
	return model.Allergy{Name: in.Name, Description: in.Description}
}

type AllergyPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p AllergyPatch) Fields() repo.Fields {
	f := repo.Fields{}
	repo.Set(f, "name", p.Name)
	repo.Set(f, "description", p.Description)
	return f
}
