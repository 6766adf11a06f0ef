package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 注文ヘッダの保存・取得
type OrderRepository interface {
	// 開いている注文も閉じた注文も、明細付きで返す
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// checked_out=false の注文。明細と商品もpreloadする
	ListOpenByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, o model.Order) (model.Order, error)
	// total_amount / checked_out / updated_at を保存
	Save(ctx context.Context, o model.Order) error
	// usersの行をSELECT FOR UPDATEで取る。無ければErrNotFound
	LockUser(ctx context.Context, userID int64) error
}

// 注文明細
type PurchaseRepository interface {
	Create(ctx context.Context, p model.Purchase) (model.Purchase, error)
	// quantity / total_amount / status / updated_at を保存
	Save(ctx context.Context, p model.Purchase) error
	Delete(ctx context.Context, id int64) error
}
