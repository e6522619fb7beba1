package recommendation

import (
	"testing"

	"storefront/domain"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"both empty", nil, []string{}, 1},
		{"one empty", []string{"red"}, nil, 0},
		{"identical", []string{"red", "lace"}, []string{"lace", "red"}, 1},
		{"case insensitive", []string{"Red"}, []string{"rED"}, 1},
		{"partial", []string{"red", "mesh"}, []string{"red", "lace"}, 1.0 / 3.0},
		{"duplicates collapse", []string{"red", "red", " red "}, []string{"red"}, 1},
		{"blanks dropped", []string{"", "  "}, nil, 1},
		{"disjoint", []string{"a"}, []string{"b"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaccard(tt.a, tt.b), 1e-9)
		})
	}
}

func TestJaccard_Bounds(t *testing.T) {
	sets := [][]string{
		nil,
		{"a"},
		{"a", "b"},
		{"B", "c", "d"},
		{"x", "y", "z", "a"},
	}

	for _, a := range sets {
		for _, b := range sets {
			got := Jaccard(a, b)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
		if len(a) > 0 {
			assert.Equal(t, 1.0, Jaccard(a, a))
		}
	}
}

func TestScoreByContent_NoReference(t *testing.T) {
	e := NewEngine(DefaultConfig())
	scored := e.ScoreByContent([]domain.Product{product("a"), product("b")}, nil)

	assert.Equal(t, []string{"a", "b"}, scoredIDs(scored))
	for _, sp := range scored {
		assert.Zero(t, sp.Score)
	}
}

func TestScoreByContent_SharedAttributes(t *testing.T) {
	e := NewEngine(DefaultConfig())
	ref := product("ref", func(p *domain.Product) {
		p.Category = "Shoes"
		p.SubCategory = "Running"
		p.Brand = "Acme"
		p.Keywords = domain.Keywords{"red", "lace"}
	})
	x := product("x", func(p *domain.Product) {
		p.Category = "Shoes"
		p.SubCategory = "Running"
		p.Brand = "Other"
		p.Keywords = domain.Keywords{"red", "mesh"}
	})
	y := product("y", func(p *domain.Product) {
		p.Category = "Kitchen"
		p.SubCategory = "Cookware"
		p.Brand = "Other"
		p.Keywords = domain.Keywords{"pan"}
	})

	scored := e.ScoreByContent([]domain.Product{y, x}, &ref)

	assert.InDelta(t, 2+2+0+2.0/3.0, scoreOf(scored, "x"), 1e-9)
	assert.Zero(t, scoreOf(scored, "y"))
	assert.Equal(t, []string{"y", "x"}, scoredIDs(scored), "scorer keeps input order")
}

func TestScoreByContent_MaximumScore(t *testing.T) {
	e := NewEngine(DefaultConfig())
	ref := product("ref", func(p *domain.Product) { p.Keywords = domain.Keywords{"Steel", "pan"} })
	twin := product("twin", func(p *domain.Product) { p.Keywords = domain.Keywords{"pan", "steel"} })

	scored := e.ScoreByContent([]domain.Product{twin}, &ref)

	assert.InDelta(t, 7.0, scored[0].Score, 1e-9)
}

func TestScoreByContent_TrimmedCaseSensitiveAttributes(t *testing.T) {
	e := NewEngine(DefaultConfig())
	ref := product("ref", func(p *domain.Product) {
		p.Category = "Home"
		p.SubCategory = "Decor"
		p.Brand = "Acme"
		p.Keywords = domain.Keywords{"x"}
	})
	padded := product("padded", func(p *domain.Product) {
		p.Category = " Home "
		p.SubCategory = "decor"
		p.Brand = "Acme "
		p.Keywords = domain.Keywords{"y"}
	})

	scored := e.ScoreByContent([]domain.Product{padded}, &ref)

	assert.InDelta(t, 2+1, scored[0].Score, 1e-9)
}

func TestScoreByContent_BlankReferenceAttributesNeverMatch(t *testing.T) {
	e := NewEngine(DefaultConfig())
	ref := product("ref", func(p *domain.Product) {
		p.SubCategory = ""
		p.Brand = "  "
		p.Keywords = domain.Keywords{"k"}
	})
	blank := product("blank", func(p *domain.Product) {
		p.SubCategory = ""
		p.Brand = ""
		p.Keywords = domain.Keywords{"other"}
	})

	scored := e.ScoreByContent([]domain.Product{blank}, &ref)

	assert.InDelta(t, 2.0, scored[0].Score, 1e-9, "only the category matches")
}

func TestScoreByContent_CustomPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BrandPoints = 10
	e := NewEngine(cfg)
	ref := product("ref", func(p *domain.Product) {
		p.Category = "Home"
		p.SubCategory = "A"
		p.Keywords = domain.Keywords{"k"}
	})
	same := product("same", func(p *domain.Product) {
		p.Category = "Shoes"
		p.SubCategory = "B"
		p.Keywords = domain.Keywords{"z"}
	})

	scored := e.ScoreByContent([]domain.Product{same}, &ref)

	assert.InDelta(t, 10.0, scored[0].Score, 1e-9)
}
