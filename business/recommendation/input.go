package recommendation

import (
	"encoding/json"
	"fmt"
	"math"

	"storefront/domain"
)

// inputDocument mirrors the external input document. Every field is kept
// raw so one malformed field cannot fail the whole request.
type inputDocument struct {
	Products           json.RawMessage `json:"products"`
	ViewEvents         json.RawMessage `json:"viewEvents"`
	OrderCounts        json.RawMessage `json:"orderCounts"`
	ReferenceProductID json.RawMessage `json:"referenceProductId"`
	ExcludedProductIDs json.RawMessage `json:"excludedProductIds"`
	MaxPriceCents      json.RawMessage `json:"maxPriceCents"`
	Limit              json.RawMessage `json:"limit"`
	ContentWeight      json.RawMessage `json:"contentWeight"`
	CollabWeight       json.RawMessage `json:"collabWeight"`
}

// DecodeInput parses an input document leniently: collections that are not
// arrays decode as empty, malformed entries are skipped and malformed
// options fall back to defaults. Only a document that is not a JSON object
// is an error.
func DecodeInput(data []byte) (Input, error) {
	var doc inputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Input{}, fmt.Errorf("decode recommendation input: %w", err)
	}

	in := Input{
		Products:    decodeList[domain.Product](doc.Products),
		ViewEvents:  decodeList[domain.ProductView](doc.ViewEvents),
		OrderCounts: decodeOrderCounts(doc.OrderCounts),
	}

	var ref domain.ID
	if len(doc.ReferenceProductID) > 0 && json.Unmarshal(doc.ReferenceProductID, &ref) == nil {
		in.Context.ReferenceProductID = ref
	}

	for _, id := range decodeList[domain.ID](doc.ExcludedProductIDs) {
		if id != "" {
			in.Context.ExcludedProductIDs = append(in.Context.ExcludedProductIDs, id)
		}
	}

	if v, ok := decodeNumber(doc.MaxPriceCents); ok {
		price := floorInt64(v)
		in.Context.MaxPriceCents = &price
	}
	if v, ok := decodeNumber(doc.Limit); ok {
		limit := floorInt(v)
		in.Context.Limit = &limit
	}
	if v, ok := decodeNumber(doc.ContentWeight); ok {
		in.Context.ContentWeight = &v
	}
	if v, ok := decodeNumber(doc.CollabWeight); ok {
		in.Context.CollabWeight = &v
	}

	return in, nil
}

func decodeList[T any](raw json.RawMessage) []T {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []T{}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// decodeOrderCounts accepts either a precomputed {productId: quantity} map
// or a list of order lines that still needs aggregating.
func decodeOrderCounts(raw json.RawMessage) map[domain.ID]int {
	if len(raw) == 0 {
		return nil
	}

	var precomputed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &precomputed); err == nil && precomputed != nil {
		counts := make(map[domain.ID]int, len(precomputed))
		for id, qty := range precomputed {
			v, ok := decodeNumber(qty)
			if !ok || v <= 0 {
				continue
			}
			counts[domain.ID(id)] = int(math.Min(math.Floor(v), math.MaxInt32))
		}
		return counts
	}

	lines := decodeList[domain.OrderLine](raw)
	if len(lines) == 0 {
		return nil
	}
	return OrderCounts([]domain.Order{{Products: lines}})
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return 0, false
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// floorInt64 floors v and saturates at the int64 range instead of
// wrapping.
func floorInt64(v float64) int64 {
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Floor(v))
	}
}

func floorInt(v float64) int {
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	default:
		return int(math.Floor(v))
	}
}
