package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money は小数点以下2桁の金額。
// DBはnumeric(12,2)、JSONは "20.00" のような文字列で出す。
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(2)}
}

// MustMoney はテストとシード用
func MustMoney(s string) Money {
	return NewMoney(decimal.RequireFromString(s))
}

func (m Money) Add(o Money) Money {
	return NewMoney(m.Decimal.Add(o.Decimal))
}

func (m Money) Sub(o Money) Money {
	return NewMoney(m.Decimal.Sub(o.Decimal))
}

// Times は単価×数量
func (m Money) Times(qty int64) Money {
	return NewMoney(m.Decimal.Mul(decimal.NewFromInt(qty)))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}
