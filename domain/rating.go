package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RatingKind tags which representation a stored rating came in.
type RatingKind int

const (
	RatingUnknown RatingKind = iota
	RatingNumber
	RatingList
	RatingAverage
	RatingStars
	RatingSumCount
)

// Rating is a product rating decoded once from whatever shape the catalog
// stored it in: a plain number, a list of numbers, or an object carrying
// average, stars, or sum and count.
type Rating struct {
	Kind   RatingKind
	Score  float64
	Values []float64
	Sum    float64
	Count  float64

	raw json.RawMessage
}

func NumberRating(v float64) Rating {
	return Rating{Kind: RatingNumber, Score: v}
}

func ListRating(values ...float64) Rating {
	if len(values) == 0 {
		return Rating{}
	}
	return Rating{Kind: RatingList, Values: values}
}

func AverageRating(v float64) Rating {
	return Rating{Kind: RatingAverage, Score: v}
}

func StarsRating(v float64) Rating {
	return Rating{Kind: RatingStars, Score: v}
}

func SumCountRating(sum, count float64) Rating {
	if count <= 0 {
		return Rating{}
	}
	return Rating{Kind: RatingSumCount, Sum: sum, Count: count}
}

// Average returns the mean rating and whether one could be derived.
func (r Rating) Average() (float64, bool) {
	switch r.Kind {
	case RatingNumber, RatingAverage, RatingStars:
		return r.Score, true
	case RatingList:
		if len(r.Values) == 0 {
			return 0, false
		}
		var sum float64
		for _, v := range r.Values {
			sum += v
		}
		return sum / float64(len(r.Values)), true
	case RatingSumCount:
		if r.Count <= 0 {
			return 0, false
		}
		return r.Sum / r.Count, true
	default:
		return 0, false
	}
}

// DecodeRating turns a raw JSON rating document into a Rating. Shapes are
// tried in order: number, non-empty numeric list, object with average,
// object with stars, object with sum and a positive count. Anything else
// decodes to an unknown rating rather than an error.
func DecodeRating(data []byte) Rating {
	r := decodeRatingShape(data)
	if len(data) > 0 {
		r.raw = append(json.RawMessage(nil), data...)
	}
	return r
}

func decodeRatingShape(data []byte) Rating {
	if isJSONNull(data) {
		return Rating{}
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return NumberRating(n)
	}

	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		return ListRating(list...)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return Rating{}
	}

	if v, ok := numberField(obj, "average"); ok {
		return AverageRating(v)
	}
	if v, ok := numberField(obj, "stars"); ok {
		return StarsRating(v)
	}
	sum, okSum := numberField(obj, "sum")
	count, okCount := numberField(obj, "count")
	if okSum && okCount && count > 0 {
		return SumCountRating(sum, count)
	}

	return Rating{}
}

func numberField(obj map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := obj[key]
	if !ok || isJSONNull(raw) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func isJSONNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}

	switch r.Kind {
	case RatingNumber:
		return json.Marshal(r.Score)
	case RatingList:
		return json.Marshal(r.Values)
	case RatingAverage:
		return json.Marshal(map[string]float64{"average": r.Score})
	case RatingStars:
		return json.Marshal(map[string]float64{"stars": r.Score})
	case RatingSumCount:
		return json.Marshal(map[string]float64{"sum": r.Sum, "count": r.Count})
	default:
		return []byte("null"), nil
	}
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	*r = DecodeRating(data)
	return nil
}

func (r *Rating) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		// yaml maps with non-string keys cannot be represented; treat as unknown
		*r = Rating{}
		return nil
	}
	*r = DecodeRating(data)
	return nil
}

// Scan implements sql.Scanner.
func (r *Rating) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = Rating{}
	case []byte:
		*r = DecodeRating(v)
	case string:
		*r = DecodeRating([]byte(v))
	default:
		return fmt.Errorf("rating: unsupported column type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (r Rating) Value() (driver.Value, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
