package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Weight 统一重量类型（克，保留 2 位小数）
type Weight struct {
	decimal.Decimal
}

// NewWeightFromDecimal 从 decimal 创建重量
func NewWeightFromDecimal(grams decimal.Decimal) Weight {
	return Weight{Decimal: grams.Round(2)}
}

// MarshalJSON 统一输出 2 位小数的字符串
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析重量（字符串或数字）
func (w *Weight) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		w.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	w.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value 用于数据库写入
func (w Weight) Value() (driver.Value, error) {
	return w.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (w *Weight) Scan(value interface{}) error {
	if err := w.Decimal.Scan(value); err != nil {
		return err
	}
	w.Decimal = w.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (w Weight) String() string {
	return w.Decimal.Round(2).StringFixed(2)
}
