package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shop/internal/domain/model"
	"shop/internal/usecase"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, http.MethodGet, "/user", nil, nil, &out)
	return out, err
}

// UserIDs はレポート用。全ユーザーのid
func (c *Client) UserIDs(ctx context.Context) ([]int64, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// GetUser はemailでもidでもよい
func (c *Client) GetUser(ctx context.Context, emailOrID string) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(emailOrID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, in usecase.UserInput) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodPost, "/user", nil, in, &out)
	return out, err
}

// =====================
// 興味・苦手
// =====================

func (c *Client) Interests(ctx context.Context, userID int64) ([]model.Interest, error) {
	var out []model.Interest
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/interest/%d", userID), nil, nil, &out)
	return out, err
}

func (c *Client) AddInterest(ctx context.Context, userID int64, name string) (model.Interest, error) {
	var out model.Interest
	err := c.do(ctx, http.MethodPost, "/interest", nil,
		usecase.InterestInput{UserID: userID, InterestName: name}, &out)
	return out, err
}

func (c *Client) DeleteInterest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/interest/%d", id), nil, nil, nil)
}

func (c *Client) Dislikes(ctx context.Context, userID int64) ([]model.Dislike, error) {
	var out []model.Dislike
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/dislike/%d", userID), nil, nil, &out)
	return out, err
}

func (c *Client) AddDislike(ctx context.Context, userID int64, name string) (model.Dislike, error) {
	var out model.Dislike
	err := c.do(ctx, http.MethodPost, "/dislike", nil,
		usecase.DislikeInput{UserID: userID, DislikeName: name}, &out)
	return out, err
}

func (c *Client) DeleteDislike(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/dislike/%d", id), nil, nil, nil)
}

// =====================
// アレルギー
// =====================

func (c *Client) UserAllergies(ctx context.Context, userID int64) ([]model.Allergy, error) {
	var out []model.Allergy
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d/allergies", userID), nil, nil, &out)
	return out, err
}

// AddUserAllergy は更新後の一覧を返す
func (c *Client) AddUserAllergy(ctx context.Context, userID int64, allergyName string) ([]model.Allergy, error) {
	var out []model.Allergy
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/user/%d/allergies", userID),
		url.Values{"allergy_name": {allergyName}}, nil, &out)
	return out, err
}

func (c *Client) DeleteUserAllergy(ctx context.Context, userID int64, allergyName string) ([]model.Allergy, error) {
	var out []model.Allergy
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d/allergies", userID),
		url.Values{"allergy_name": {allergyName}}, nil, &out)
	return out, err
}
