// Package sales は確定済み注文から日次の売上指標を組み立てる。
package sales

import (
	"context"
	"sort"
	"time"

	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const DefaultDays = 30

// Line は明細1行
type Line struct {
	PurchaseID  int64
	OrderID     int64
	UserID      int64
	Quantity    int64
	TotalAmount model.Money
	UpdatedAt   time.Time
}

// OrdersSource はclient.Clientが満たす
type OrdersSource interface {
	Orders(ctx context.Context, userID int64) ([]usecase.OrderPurchases, error)
}

// Flatten は確定済み注文の明細だけ取り出す
func Flatten(orders []usecase.OrderPurchases) []Line {
	var out []Line
	for _, o := range orders {
		if !o.Order.CheckedOut {
			continue
		}
		for _, p := range o.Purchases {
			out = append(out, Line{
				PurchaseID:  p.ID,
				OrderID:     p.OrderID,
				UserID:      p.UserID,
				Quantity:    p.Quantity,
				TotalAmount: p.TotalAmount,
				UpdatedAt:   p.UpdatedAt.UTC(),
			})
		}
	}
	return out
}

// Collect は全ユーザー分の明細を集める。1人でも失敗したら止める
func Collect(ctx context.Context, src OrdersSource, userIDs []int64) ([]Line, error) {
	var out []Line
	for _, id := range userIDs {
		orders, err := src.Orders(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "orders for user %d", id)
		}
		out = append(out, Flatten(orders)...)
	}
	return out, nil
}

type Day struct {
	Date         time.Time
	UnitsSold    int64
	Revenue      model.Money
	Transactions int64
}

type Percentiles struct {
	P50 int64
	P90 int64
	P99 int64
}

type Report struct {
	Start time.Time
	End   time.Time
	Days  []Day

	TotalUnits      int64
	TotalRevenue    model.Money
	AvgDailyUnits   decimal.Decimal
	AvgDailyRevenue model.Money
	TopByUnits      []Day
	TopByRevenue    []Day
	Records         int

	UnitsPerLine Percentiles
}

const topN = 5

// Build は [now-days, now] の明細を日別に集計する。欠けた日は0で埋める
func Build(lines []Line, now time.Time, days int) (Report, error) {
	if days <= 0 {
		days = DefaultDays
	}
	end := now.UTC()
	start := end.AddDate(0, 0, -days)

	r := Report{Start: start, End: end}

	hist := hdrhistogram.New(1, 1_000_000, 3)
	byDate := map[time.Time]*Day{}
	for _, l := range lines {
		if l.UpdatedAt.Before(start) || l.UpdatedAt.After(end) {
			continue
		}
		d := truncateDay(l.UpdatedAt)
		day, ok := byDate[d]
		if !ok {
			day = &Day{Date: d}
			byDate[d] = day
		}
		day.UnitsSold += l.Quantity
		day.Revenue = day.Revenue.Add(l.TotalAmount)
		day.Transactions++
		r.Records++

		if l.Quantity > 0 {
			if err := hist.RecordValue(l.Quantity); err != nil {
				return Report{}, errors.Wrapf(err, "record quantity %d", l.Quantity)
			}
		}
	}

	for d := truncateDay(start); !d.After(truncateDay(end)); d = d.AddDate(0, 0, 1) {
		day := Day{Date: d}
		if got, ok := byDate[d]; ok {
			day = *got
		}
		r.Days = append(r.Days, day)
		r.TotalUnits += day.UnitsSold
		r.TotalRevenue = r.TotalRevenue.Add(day.Revenue)
	}

	n := decimal.NewFromInt(int64(len(r.Days)))
	r.AvgDailyUnits = decimal.NewFromInt(r.TotalUnits).Div(n).Round(1)
	r.AvgDailyRevenue = model.NewMoney(r.TotalRevenue.Div(n))

	r.TopByUnits = top(r.Days, func(a, b Day) bool { return a.UnitsSold > b.UnitsSold })
	r.TopByRevenue = top(r.Days, func(a, b Day) bool { return a.Revenue.GreaterThan(b.Revenue.Decimal) })

	if hist.TotalCount() > 0 {
		r.UnitsPerLine = Percentiles{
			P50: hist.ValueAtQuantile(50),
			P90: hist.ValueAtQuantile(90),
			P99: hist.ValueAtQuantile(99),
		}
	}
	return r, nil
}

// 売上0の日は載せない。同値は日付の古い順
func top(days []Day, less func(a, b Day) bool) []Day {
	cp := make([]Day, 0, len(days))
	for _, d := range days {
		if d.Transactions > 0 {
			cp = append(cp, d)
		}
	}
	sort.SliceStable(cp, func(i, j int) bool { return less(cp[i], cp[j]) })
	if len(cp) > topN {
		cp = cp[:topN]
	}
	return cp
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
