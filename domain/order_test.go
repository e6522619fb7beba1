package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_Units(t *testing.T) {
	cases := []struct {
		name string
		q    Quantity
		want int
	}{
		{"unset", Quantity{}, 1},
		{"zero", Qty(0), 1},
		{"whole", Qty(3), 3},
		{"fraction floors", Quantity{value: 2.7, set: true}, 2},
		{"negative", Qty(-2), 0},
		{"nan", Quantity{value: math.NaN(), set: true}, 1},
		{"infinite", Quantity{value: math.Inf(1), set: true}, math.MaxInt32},
		{"huge", Quantity{value: 1e300, set: true}, math.MaxInt32},
		{"just above int32", Quantity{value: math.MaxInt32 + 0.5, set: true}, math.MaxInt32},
		{"negative huge", Quantity{value: -1e300, set: true}, 0},
		{"negative fraction", Quantity{value: -0.5, set: true}, 0},
		{"small fraction floors", Quantity{value: 0.5, set: true}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.Units())
		})
	}
}

func TestOrderLine_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`{"productId": "a", "quantity": 4}`, 4},
		{`{"productId": "a", "quantity": "2"}`, 2},
		{`{"productId": "a", "quantity": "many"}`, 1},
		{`{"productId": "a", "quantity": null}`, 1},
		{`{"productId": "a"}`, 1},
	}
	for _, tc := range cases {
		var line OrderLine
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &line), tc.raw)
		assert.Equal(t, ID("a"), line.ProductID)
		assert.Equal(t, tc.want, line.Quantity.Units(), tc.raw)
	}
}

func TestOrderLine_MarshalWritesUnits(t *testing.T) {
	out, err := json.Marshal(OrderLine{ProductID: "a", Quantity: Quantity{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":"a","quantity":1}`, string(out))
}
