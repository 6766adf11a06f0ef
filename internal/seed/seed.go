// Package seed は開発用のサンプルデータを投入する。
package seed

import (
	"context"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/pkg/errors"
)

type Repos struct {
	Users     repo.UserRepository
	Allergies repo.AllergyRepository
	Interests repo.InterestRepository
	Dislikes  repo.DislikeRepository
	Products  repo.ProductRepository
	Orders    repo.OrderRepository
	Purchases repo.PurchaseRepository
}

// Counts は投入した行数
type Counts struct {
	Users, Allergies, UserAllergies, Interests, Dislikes, Products, Orders, Purchases int
}

// Load はマスタ→ユーザー→紐づけ→注文の順に入れる。
// トランザクションは呼び出し側で張る
func Load(ctx context.Context, r Repos, d Data, now time.Time) (Counts, error) {
	var c Counts

	userIDs := make([]int64, 0, len(d.Users))
	for _, u := range d.Users {
		created, err := r.Users.Create(ctx, u)
		if err != nil {
			return c, errors.Wrapf(err, "user %s", u.Email)
		}
		userIDs = append(userIDs, created.ID)
		c.Users++
	}
	userID := func(ref UserRef) (int64, error) {
		if int(ref) < 0 || int(ref) >= len(userIDs) {
			return 0, errors.Errorf("unknown user ref %d", ref)
		}
		return userIDs[ref], nil
	}

	for _, a := range d.Allergies {
		if _, err := r.Allergies.Create(ctx, a); err != nil {
			return c, errors.Wrapf(err, "allergy %s", a.Name)
		}
		c.Allergies++
	}

	for _, ua := range d.UserAllergies {
		id, err := userID(ua.User)
		if err != nil {
			return c, err
		}
		if err := r.Users.AddAllergy(ctx, model.UserAllergy{UserID: id, AllergyName: ua.AllergyName, Notes: ptr(ua.Notes)}); err != nil {
			return c, errors.Wrapf(err, "user allergy %d/%s", id, ua.AllergyName)
		}
		c.UserAllergies++
	}

	for _, in := range d.Interests {
		id, err := userID(in.User)
		if err != nil {
			return c, err
		}
		row := model.Interest{UserID: id, InterestName: in.Name, Category: ptr(in.Category), Description: ptr(in.Description)}
		if _, err := r.Interests.Create(ctx, row); err != nil {
			return c, errors.Wrapf(err, "interest %s", in.Name)
		}
		c.Interests++
	}

	for _, dl := range d.Dislikes {
		id, err := userID(dl.User)
		if err != nil {
			return c, err
		}
		row := model.Dislike{UserID: id, DislikeName: dl.Name, Category: ptr(dl.Category), Severity: ptr(dl.Severity), Description: ptr(dl.Description)}
		if _, err := r.Dislikes.Create(ctx, row); err != nil {
			return c, errors.Wrapf(err, "dislike %s", dl.Name)
		}
		c.Dislikes++
	}

	prices := make(map[string]model.Money, len(d.Products))
	for _, p := range d.Products {
		if _, err := r.Products.Create(ctx, p); err != nil {
			return c, errors.Wrapf(err, "product %s", p.Name)
		}
		prices[p.ID.String()] = p.Price
		c.Products++
	}

	for i, o := range d.Orders {
		id, err := userID(o.User)
		if err != nil {
			return c, err
		}
		var total model.Money
		lines := make([]model.Purchase, 0, len(o.Lines))
		for _, l := range o.Lines {
			price, ok := prices[l.ProductID.String()]
			if !ok {
				return c, errors.Errorf("order %d: unknown product %s", i, l.ProductID)
			}
			amount := price.Times(l.Quantity)
			total = total.Add(amount)
			lines = append(lines, model.Purchase{
				ProductID: l.ProductID, UserID: id, Quantity: l.Quantity,
				TotalAmount: amount, Status: l.Status, CreatedAt: now, UpdatedAt: now,
			})
		}

		order, err := r.Orders.Create(ctx, model.Order{
			UserID: id, TotalAmount: total, CheckedOut: o.CheckedOut, CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			return c, errors.Wrapf(err, "order for user %d", id)
		}
		c.Orders++

		for _, p := range lines {
			p.OrderID = order.ID
			if _, err := r.Purchases.Create(ctx, p); err != nil {
				return c, errors.Wrapf(err, "purchase in order %d", order.ID)
			}
			c.Purchases++
		}
	}
	return c, nil
}
