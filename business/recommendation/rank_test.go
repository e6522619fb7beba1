package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMinMax(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, NormalizeMinMax([]float64{2, 4, 6}))
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, NormalizeMinMax([]float64{3, 3, 3}))
	assert.Equal(t, []float64{0.5}, NormalizeMinMax([]float64{7}))
	assert.Empty(t, NormalizeMinMax(nil))
}

func TestNormalizeMinMax_Bounds(t *testing.T) {
	inputs := [][]float64{
		{0, 1, 2, 3},
		{-5, 10, 2.5},
		{1e9, 1e-9, 42},
		{0, 0, 1},
	}

	for _, in := range inputs {
		for _, v := range NormalizeMinMax(in) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func scoredList(pairs ...interface{}) []ScoredProduct {
	out := make([]ScoredProduct, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, ScoredProduct{Product: product(pairs[i].(string)), Score: pairs[i+1].(float64)})
	}
	return out
}

func TestMergeAndRank_WeightedBlend(t *testing.T) {
	content := scoredList("a", 7.0, "b", 0.0, "c", 3.5)
	collab := scoredList("a", 0.0, "b", 4.0, "c", 2.0)

	merged := MergeAndRank(content, collab, 0.5, 0.5)

	// a: 0.5*1 + 0.5*0 = 0.5, b: 0 + 0.5 = 0.5, c: 0.25 + 0.25 = 0.5
	assert.Equal(t, []string{"a", "b", "c"}, scoredIDs(merged), "equal scores keep encounter order")
	for _, sp := range merged {
		assert.InDelta(t, 0.5, sp.Score, 1e-9)
	}
}

func TestMergeAndRank_ContentOnlyWeight(t *testing.T) {
	content := scoredList("a", 1.0, "b", 5.0, "c", 3.0, "d", 0.0)
	collab := scoredList("a", 9.0, "b", 0.0, "c", 1.0, "d", 4.0)

	merged := MergeAndRank(content, collab, 1, 0)

	assert.Equal(t, []string{"b", "c", "a", "d"}, scoredIDs(merged))
}

func TestMergeAndRank_MissingSideDefaultsToZero(t *testing.T) {
	content := scoredList("a", 2.0)
	collab := scoredList("b", 3.0)

	merged := MergeAndRank(content, collab, 0.5, 0.5)

	// content [2, 0] -> [1, 0]; collab [0, 3] -> [0, 1]
	assert.Equal(t, []string{"a", "b"}, scoredIDs(merged))
	assert.InDelta(t, 0.5, merged[0].Score, 1e-9)
	assert.InDelta(t, 0.5, merged[1].Score, 1e-9)
}

func TestMergeAndRank_ConstantSignalIsNeutral(t *testing.T) {
	content := scoredList("a", 0.0, "b", 0.0)
	collab := scoredList("a", 0.0, "b", 2.0)

	merged := MergeAndRank(content, collab, 1, 1)

	assert.Equal(t, []string{"b", "a"}, scoredIDs(merged))
	assert.InDelta(t, 1.5, merged[0].Score, 1e-9)
	assert.InDelta(t, 0.5, merged[1].Score, 1e-9)
}

func TestMergeAndRank_WeightsNotNormalized(t *testing.T) {
	merged := MergeAndRank(scoredList("a", 1.0, "b", 0.0), scoredList("a", 1.0, "b", 0.0), 2, 3)

	assert.InDelta(t, 5.0, merged[0].Score, 1e-9)
}

func TestTopN(t *testing.T) {
	scored := scoredList("a", 3.0, "b", 2.0, "c", 1.0)

	assert.Equal(t, []string{"a", "b"}, scoredIDs(TopN(scored, 2)))
	assert.Equal(t, []string{"a", "b", "c"}, scoredIDs(TopN(scored, 10)))
	assert.Empty(t, TopN(scored, 0))
	assert.Empty(t, TopN(scored, -1))
	assert.Empty(t, TopN(nil, 3))
}

func TestMergeAndRank_Empty(t *testing.T) {
	assert.Empty(t, MergeAndRank(nil, []ScoredProduct{}, 0.5, 0.5))
}

