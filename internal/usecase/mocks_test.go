package usecase

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type crudRepoMock[T any, K comparable] struct{ mock.Mock }

func (m *crudRepoMock[T, K]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *crudRepoMock[T, K]) Get(ctx context.Context, key K) (T, error) {
	args := m.Called(ctx, key)
	row, _ := args.Get(0).(T)
	return row, args.Error(1)
}

func (m *crudRepoMock[T, K]) Create(ctx context.Context, row T) (T, error) {
	args := m.Called(ctx, row)
	created, _ := args.Get(0).(T)
	return created, args.Error(1)
}

func (m *crudRepoMock[T, K]) Update(ctx context.Context, key K, fields repo.Fields) (T, error) {
	args := m.Called(ctx, key, fields)
	row, _ := args.Get(0).(T)
	return row, args.Error(1)
}

func (m *crudRepoMock[T, K]) Delete(ctx context.Context, key K) (T, error) {
	args := m.Called(ctx, key)
	row, _ := args.Get(0).(T)
	return row, args.Error(1)
}

type UserRepoMock struct {
	crudRepoMock[model.User, int64]
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListAllergies(ctx context.Context, userID int64) ([]model.Allergy, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]model.Allergy)
	return rows, args.Error(1)
}

func (m *UserRepoMock) FindUserAllergy(ctx context.Context, userID int64, allergyName string) (model.UserAllergy, error) {
	args := m.Called(ctx, userID, allergyName)
	ua, _ := args.Get(0).(model.UserAllergy)
	return ua, args.Error(1)
}

func (m *UserRepoMock) AddAllergy(ctx context.Context, ua model.UserAllergy) error {
	args := m.Called(ctx, ua)
	return args.Error(0)
}

func (m *UserRepoMock) RemoveAllergy(ctx context.Context, userID int64, allergyName string) error {
	args := m.Called(ctx, userID, allergyName)
	return args.Error(0)
}

type AllergyRepoMock struct {
	crudRepoMock[model.Allergy, string]
}

type InterestRepoMock struct {
	crudRepoMock[model.Interest, int64]
}

func (m *InterestRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Interest, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]model.Interest)
	return rows, args.Error(1)
}

type DislikeRepoMock struct {
	crudRepoMock[model.Dislike, int64]
}

func (m *DislikeRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Dislike, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]model.Dislike)
	return rows, args.Error(1)
}

func strPtr(s string) *string { return &s }
