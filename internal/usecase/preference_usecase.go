package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 興味・苦手。ユーザー単位の一覧が空なら404
type PreferenceUsecase[T any] struct {
	*CRUDUsecase[T, int64]
	repo   repo.PreferenceRepository[T]
	plural string
}

func NewInterestUsecase(r repo.InterestRepository, log *slog.Logger) *PreferenceUsecase[model.Interest] {
	return &PreferenceUsecase[model.Interest]{
		CRUDUsecase: NewCRUDUsecase[model.Interest, int64](r, log, "interest"),
		repo:        r,
		plural:      "interests",
	}
}

func NewDislikeUsecase(r repo.DislikeRepository, log *slog.Logger) *PreferenceUsecase[model.Dislike] {
	return &PreferenceUsecase[model.Dislike]{
		CRUDUsecase: NewCRUDUsecase[model.Dislike, int64](r, log, "dislike"),
		repo:        r,
		plural:      "dislikes",
	}
}

func (u *PreferenceUsecase[T]) ListForUser(ctx context.Context, userID int64) ([]T, error) {
	rows, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return []T{}, u.fail("ListForUser", err)
	}
	if len(rows) == 0 {
		return []T{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("No %s found for user %d.", u.plural, userID))
	}
	return rows, nil
}

type InterestInput struct {
	UserID       int64   `json:"user_id" validate:"required"`
	InterestName string  `json:"interest_name" validate:"required"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
}

func (in InterestInput) Model() model.Interest {
	return model.Interest{
		UserID:       in.UserID,
		InterestName: in.InterestName,
		Category:     in.Category,
		Description:  in.Description,
	}
}

type InterestPatch struct {
	UserID       *int64  `json:"user_id"`
	InterestName *string `json:"interest_name"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
}

func (p InterestPatch) Fields() repo.Fields {
	f := repo.Fields{}
	repo.Set(f, "user_id", p.UserID)
	repo.Set(f, "interest_name", p.InterestName)
	repo.Set(f, "category", p.Category)
	repo.Set(f, "description", p.Description)
	return f
}

type DislikeInput struct {
	UserID      int64   `json:"user_id" validate:"required"`
	DislikeName string  `json:"dislike_name" validate:"required"`
	Category    *string `json:"category"`
	Severity    *string `json:"severity"`
	Description *string `json:"description"`
}

func (in DislikeInput) Model() model.Dislike {
	return model.Dislike{
		UserID:      in.UserID,
		DislikeName: in.DislikeName,
		Category:    in.Category,
		Severity:    in.Severity,
		Description: in.Description,
	}
}

type DislikePatch struct {
	UserID      *int64  `json:"user_id"`
	DislikeName *string `json:"dislike_name"`
	Category    *string `json:"category"`
	Severity    *string `json:"severity"`
	Description *string `json:"description"`
}

func (p DislikePatch) Fields() repo.Fields {
	f := repo.Fields{}
	repo.Set(f, "user_id", p.UserID)
	repo.Set(f, "dislike_name", p.DislikeName)
	repo.Set(f, "category", p.Category)
	repo.Set(f, "severity", p.Severity)
	repo.Set(f, "description", p.Description)
	return f
}
