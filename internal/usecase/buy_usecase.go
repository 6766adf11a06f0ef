package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"shop/internal/domain/model"
	"shop/internal/logger"
	repo "shop/internal/repository"

	"github.com/google/uuid"
)

// BuyUsecase は /buy（カートと購入確定）の業務ロジックです。
// checked_out=false の注文がカート。1操作=1トランザクション。
type BuyUsecase struct {
	tx  repo.TransactionManager
	log *slog.Logger

	// trueならusersの行をロックしてから開いている注文を探す
	lockUserRow bool
	now         func() time.Time
}

func NewBuyUsecase(tx repo.TransactionManager, log *slog.Logger, lockUserRow bool) *BuyUsecase {
	return &BuyUsecase{
		tx:          tx,
		log:         log,
		lockUserRow: lockUserRow,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// quantityはPOSTでは追加数、PUTでは増減
type PurchaseInput struct {
	ProductID uuid.UUID `json:"product_id"`
	UserID    int64     `json:"user_id"`
	Quantity  int64     `json:"quantity"`
}

// 注文と明細のレスポンス
type OrderPurchases struct {
	Order     model.Order      `json:"order"`
	Purchases []model.Purchase `json:"purchases"`
}

func toOrderPurchases(o model.Order) OrderPurchases {
	purchases := o.Purchases
	if purchases == nil {
		purchases = []model.Purchase{}
	}
	return OrderPurchases{Order: o, Purchases: purchases}
}

// ListOrders はユーザーの注文（開・閉とも）を明細付きで返す
func (u *BuyUsecase) ListOrders(ctx context.Context, userID int64) ([]OrderPurchases, error) {
	var outs []OrderPurchases
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		outs = make([]OrderPurchases, 0, len(orders))
		for _, o := range orders {
			outs = append(outs, toOrderPurchases(o))
		}
		return nil
	})
	if err != nil {
		return []OrderPurchases{}, u.fail("buy.ListOrders", err)
	}
	return outs, nil
}

// AddToCart は開いている注文に商品を追加する（無ければ注文を作る）。
// 同じ商品は数量を足して、現在の価格で明細金額を計算し直す。
func (u *BuyUsecase) AddToCart(ctx context.Context, in PurchaseInput) (OrderPurchases, error) {
	const op = "buy.AddToCart"
	if in.Quantity < 1 {
		return OrderPurchases{}, NewHTTPError(http.StatusBadRequest, "Quantity must be at least 1")
	}

	var out OrderPurchases
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		product, err := r.Products().Get(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			return err
		}

		order, err := u.openOrder(ctx, r, in.UserID)
		if err != nil {
			return err
		}
		now := u.now()
		if order == nil {
			created, err := r.Orders().Create(ctx, model.Order{
				UserID:    in.UserID,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return err
			}
			order = &created
		}

		var oldTotal, newTotal model.Money
		if i, ok := order.LineIndex(product.ID); ok {
			line := order.Purchases[i]
			oldTotal = line.TotalAmount
			line.Quantity += in.Quantity
			line.TotalAmount = product.Price.Times(line.Quantity)
			line.UpdatedAt = now
			if err := r.Purchases().Save(ctx, line); err != nil {
				return err
			}
			order.Purchases[i] = line
			newTotal = line.TotalAmount
		} else {
			line, err := r.Purchases().Create(ctx, model.Purchase{
				OrderID:     order.ID,
				ProductID:   product.ID,
				UserID:      in.UserID,
				Quantity:    in.Quantity,
				TotalAmount: product.Price.Times(in.Quantity),
				Status:      model.PurchaseStatusInCart,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
			order.Purchases = append(order.Purchases, line)
			newTotal = line.TotalAmount
		}

		order.TotalAmount = order.TotalAmount.Sub(oldTotal).Add(newTotal)
		order.UpdatedAt = now
		if err := r.Orders().Save(ctx, *order); err != nil {
			return err
		}
		out = toOrderPurchases(*order)
		return nil
	})
	if err != nil {
		return OrderPurchases{}, u.fail(op, err)
	}
	return out, nil
}

// UpdateQuantity は明細の数量を増減する。0以下になったら明細を消す
func (u *BuyUsecase) UpdateQuantity(ctx context.Context, in PurchaseInput) (OrderPurchases, error) {
	const op = "buy.UpdateQuantity"
	if in.Quantity == 0 {
		return OrderPurchases{}, NewHTTPError(http.StatusBadRequest, "Quantity change cannot be 0")
	}

	var out OrderPurchases
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := u.openOrder(ctx, r, in.UserID)
		if err != nil {
			return err
		}
		if order == nil {
			return NewHTTPError(http.StatusNotFound, "Order not found. Use a POST rather than a PUT to create an order.")
		}
		i, ok := order.LineIndex(in.ProductID)
		if !ok {
			return notInCart(in.ProductID, in.UserID)
		}
		if err := u.applyDelta(ctx, r, order, i, in.Quantity); err != nil {
			return err
		}
		out = toOrderPurchases(*order)
		return nil
	})
	if err != nil {
		return OrderPurchases{}, u.fail(op, err)
	}
	return out, nil
}

// RemoveFromCart は明細の数量分を引いて明細を消す
func (u *BuyUsecase) RemoveFromCart(ctx context.Context, userID int64, productID uuid.UUID) (OrderPurchases, error) {
	const op = "buy.RemoveFromCart"

	var out OrderPurchases
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := u.openOrder(ctx, r, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return notInCart(productID, userID)
		}
		i, ok := order.LineIndex(productID)
		if !ok {
			return notInCart(productID, userID)
		}
		if err := u.applyDelta(ctx, r, order, i, -order.Purchases[i].Quantity); err != nil {
			return err
		}
		out = toOrderPurchases(*order)
		return nil
	})
	if err != nil {
		return OrderPurchases{}, u.fail(op, err)
	}
	return out, nil
}

// Checkout は開いている注文を確定して在庫を減らす。
// 1件でも在庫が足りなければ全体をロールバックする
func (u *BuyUsecase) Checkout(ctx context.Context, userID int64) (OrderPurchases, error) {
	const op = "buy.Checkout"
	log := u.log.With(slog.String("op", op), slog.Int64("user_id", userID))

	var out OrderPurchases
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := u.openOrder(ctx, r, userID)
		if err != nil {
			return err
		}
		if order == nil || len(order.Purchases) == 0 {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("No open order found for user %d", userID))
		}

		now := u.now()
		order.CheckedOut = true
		order.UpdatedAt = now

		for i := range order.Purchases {
			line := &order.Purchases[i]
			product, err := lineProduct(ctx, r, *line)
			if err != nil {
				return err
			}
			notEnough := NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Not enough %s in inventory", product.Name))
			if product.Quantity < line.Quantity {
				return notEnough
			}
			// 条件付きUPDATE。並行で減っていた場合もここで止まる
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return notEnough
			}

			line.Status = model.PurchaseStatusPurchased
			line.UpdatedAt = now
			if err := r.Purchases().Save(ctx, *line); err != nil {
				return err
			}
		}

		if err := r.Orders().Save(ctx, *order); err != nil {
			return err
		}
		out = toOrderPurchases(*order)
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok && he.Status == http.StatusBadRequest {
			log.Info("checkout rejected", slog.String("reason", he.Message))
		}
		return OrderPurchases{}, u.fail(op, err)
	}

	log.Info("checked out",
		slog.Int64("order_id", out.Order.ID),
		slog.Int("lines", len(out.Purchases)),
		slog.String("total", out.Order.TotalAmount.StringFixed(2)),
	)
	return out, nil
}

// 開いている注文を1件返す。無ければnil、2件以上は409
func (u *BuyUsecase) openOrder(ctx context.Context, r repo.TxRepos, userID int64) (*model.Order, error) {
	if u.lockUserRow {
		err := r.Orders().LockUser(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, fmt.Sprintf("User with id %d not found", userID))
		}
		if err != nil {
			return nil, err
		}
	}

	orders, err := r.Orders().ListOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch len(orders) {
	case 0:
		return nil, nil
	case 1:
		return &orders[0], nil
	}
	u.log.Warn("multiple open orders",
		slog.Int64("user_id", userID),
		slog.Int("count", len(orders)),
	)
	return nil, NewHTTPError(http.StatusConflict, fmt.Sprintf("Multiple open orders found for user %d", userID))
}

// 明細iの数量をdeltaだけ動かして、注文の合計を合わせる
func (u *BuyUsecase) applyDelta(ctx context.Context, r repo.TxRepos, order *model.Order, i int, delta int64) error {
	line := order.Purchases[i]
	newQty := line.Quantity + delta

	if newQty <= 0 {
		if err := r.Purchases().Delete(ctx, line.ID); err != nil {
			return err
		}
		order.RemoveLine(i)
		order.TotalAmount = order.TotalAmount.Sub(line.TotalAmount)
		return r.Orders().Save(ctx, *order)
	}

	product, err := lineProduct(ctx, r, line)
	if err != nil {
		return err
	}
	now := u.now()
	oldTotal := line.TotalAmount
	line.Quantity = newQty
	line.TotalAmount = product.Price.Times(newQty)
	line.UpdatedAt = now
	if err := r.Purchases().Save(ctx, line); err != nil {
		return err
	}
	order.Purchases[i] = line

	order.TotalAmount = order.TotalAmount.Sub(oldTotal).Add(line.TotalAmount)
	order.UpdatedAt = now
	return r.Orders().Save(ctx, *order)
}

// preload済みならそれを使う
func lineProduct(ctx context.Context, r repo.TxRepos, line model.Purchase) (model.Product, error) {
	if line.Product != nil {
		return *line.Product, nil
	}
	return r.Products().Get(ctx, line.ProductID)
}

func notInCart(productID uuid.UUID, userID int64) error {
	return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product %s not found in cart for user %d", productID, userID))
}

// カート操作では外部キー・制約違反は422、重複だけ409
func (u *BuyUsecase) fail(op string, err error) error {
	if he, ok := AsHTTPError(err); ok {
		return he
	}
	switch {
	case errors.Is(err, repo.ErrDuplicate):
		return NewHTTPError(http.StatusConflict, "Integrity error: "+err.Error())
	case errors.Is(err, repo.ErrForeignKey), errors.Is(err, repo.ErrConstraint):
		return NewHTTPError(http.StatusUnprocessableEntity, "Integrity error: "+err.Error())
	case errors.Is(err, repo.ErrInvalidData):
		return NewHTTPError(http.StatusUnprocessableEntity, "Data error: "+err.Error())
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, msgRecordNotFound)
	}
	u.log.Error("buy failed", slog.String("op", op), logger.Err(err))
	return NewHTTPError(http.StatusInternalServerError, msgDBError)
}
