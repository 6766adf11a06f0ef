package usecase

import (
	"context"
	"errors"
	"sort"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/google/uuid"
)

// =====================
// トランザクション付きのインメモリDB（buyのテスト用）
// =====================

type memStore struct {
	products  map[uuid.UUID]model.Product
	orders    map[int64]model.Order
	purchases map[int64]model.Purchase
	users     map[int64]bool

	nextOrderID    int64
	nextPurchaseID int64

	lockCalls           int
	createPurchaseError error
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[uuid.UUID]model.Product{},
		orders:    map[int64]model.Order{},
		purchases: map[int64]model.Purchase{},
		users:     map[int64]bool{},
	}
}

func (s *memStore) clone() memStore {
	c := *s
	c.products = make(map[uuid.UUID]model.Product, len(s.products))
	for k, v := range s.products {
		c.products[k] = v
	}
	c.orders = make(map[int64]model.Order, len(s.orders))
	for k, v := range s.orders {
		c.orders[k] = v
	}
	c.purchases = make(map[int64]model.Purchase, len(s.purchases))
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	return c
}

func (s *memStore) addProduct(name, price string, qty int64) model.Product {
	p := model.Product{ID: uuid.New(), Name: name, Price: model.MustMoney(price), Quantity: qty, IsActive: true}
	s.products[p.ID] = p
	return p
}

func (s *memStore) openOrders(userID int64) []model.Order {
	var out []model.Order
	for _, o := range s.orders {
		if o.UserID == userID && !o.CheckedOut {
			out = append(out, o)
		}
	}
	return out
}

func (s *memStore) linesOf(orderID int64) []model.Purchase {
	var out []model.Purchase
	for _, p := range s.purchases {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memTx struct{ s *memStore }

// エラーならスナップショットに戻す
func (m *memTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	snap := m.s.clone()
	if err := fn(memRepos{s: m.s}); err != nil {
		lockCalls := m.s.lockCalls
		*m.s = snap
		m.s.lockCalls = lockCalls
		return err
	}
	return nil
}

type memRepos struct{ s *memStore }

func (r memRepos) Orders() repo.OrderRepository        { return memOrders{r.s} }
func (r memRepos) Purchases() repo.PurchaseRepository  { return memPurchases{r.s} }
func (r memRepos) Products() repo.ProductRepository    { return memProducts{r.s} }
func (r memRepos) Inventory() repo.InventoryRepository { return memInventory{r.s} }

type memOrders struct{ s *memStore }

func (m memOrders) list(userID int64, openOnly, withProduct bool) []model.Order {
	out := make([]model.Order, 0)
	for _, o := range m.s.orders {
		if o.UserID != userID || (openOnly && o.CheckedOut) {
			continue
		}
		o.Purchases = m.s.linesOf(o.ID)
		if withProduct {
			for i := range o.Purchases {
				p := m.s.products[o.Purchases[i].ProductID]
				o.Purchases[i].Product = &p
			}
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m memOrders) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	return m.list(userID, false, false), nil
}

func (m memOrders) ListOpenByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	return m.list(userID, true, true), nil
}

func (m memOrders) Create(ctx context.Context, o model.Order) (model.Order, error) {
	m.s.nextOrderID++
	o.ID = m.s.nextOrderID
	o.Purchases = nil
	m.s.orders[o.ID] = o
	return o, nil
}

func (m memOrders) Save(ctx context.Context, o model.Order) error {
	cur, ok := m.s.orders[o.ID]
	if !ok {
		return repo.ErrNotFound
	}
	cur.TotalAmount = o.TotalAmount
	cur.CheckedOut = o.CheckedOut
	cur.UpdatedAt = o.UpdatedAt
	m.s.orders[o.ID] = cur
	return nil
}

func (m memOrders) LockUser(ctx context.Context, userID int64) error {
	m.s.lockCalls++
	if !m.s.users[userID] {
		return repo.ErrNotFound
	}
	return nil
}

type memPurchases struct{ s *memStore }

func (m memPurchases) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	if m.s.createPurchaseError != nil {
		return model.Purchase{}, m.s.createPurchaseError
	}
	m.s.nextPurchaseID++
	p.ID = m.s.nextPurchaseID
	p.Product = nil
	m.s.purchases[p.ID] = p
	return p, nil
}

func (m memPurchases) Save(ctx context.Context, p model.Purchase) error {
	cur, ok := m.s.purchases[p.ID]
	if !ok {
		return repo.ErrNotFound
	}
	cur.Quantity = p.Quantity
	cur.TotalAmount = p.TotalAmount
	cur.Status = p.Status
	cur.UpdatedAt = p.UpdatedAt
	m.s.purchases[p.ID] = cur
	return nil
}

func (m memPurchases) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.purchases[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.s.purchases, id)
	return nil
}

type memProducts struct{ s *memStore }

func (m memProducts) List(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(m.s.products))
	for _, p := range m.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (m memProducts) Get(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, ok := m.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (m memProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	m.s.products[p.ID] = p
	return p, nil
}

func (m memProducts) Update(ctx context.Context, id uuid.UUID, fields repo.Fields) (model.Product, error) {
	return model.Product{}, errors.New("not used in buy tests")
}

func (m memProducts) Delete(ctx context.Context, id uuid.UUID) (model.Product, error) {
	return model.Product{}, errors.New("not used in buy tests")
}

type memInventory struct{ s *memStore }

func (m memInventory) DecreaseStockIfEnough(ctx context.Context, productID uuid.UUID, qty int64) (bool, error) {
	p, ok := m.s.products[productID]
	if !ok || p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	m.s.products[productID] = p
	return true, nil
}
