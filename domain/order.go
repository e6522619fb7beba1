package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusCancelled = "CANCELLED"
)

type Order struct {
	ID         ID                             `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	UserID     uint                           `gorm:"column:user_id;index" json:"userId"`
	Products   datatypes.JSONSlice[OrderLine] `gorm:"column:products;type:jsonb" json:"products"`
	TotalCents int64                          `gorm:"column:total_cents" json:"totalCostCents"`
	Status     string                         `gorm:"column:status;default:PLACED" json:"status"`
	CreatedAt  time.Time                      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time                      `gorm:"column:updated_at" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderLine is one product entry inside an order.
type OrderLine struct {
	ProductID  ID       `json:"productId"`
	Quantity   Quantity `json:"quantity"`
	PriceCents int64    `json:"priceCents,omitempty"`
}

// Quantity is an order line quantity as written by clients or older rows:
// it may be missing, a number, or a numeric string.
type Quantity struct {
	value float64
	set   bool
}

func Qty(n int) Quantity {
	return Quantity{value: float64(n), set: true}
}

// Units coerces the quantity to whole units. A missing, zero or unparseable
// quantity counts as one unit; a negative quantity counts as none.
func (q Quantity) Units() int {
	if !q.set || q.value == 0 || math.IsNaN(q.value) {
		return 1
	}
	if q.value < 0 {
		return 0
	}
	if q.value >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(q.value))
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(q.Units())), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = Quantity{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*q = Quantity{value: n, set: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*q = Quantity{value: v, set: true}
		}
	}
	return nil
}
