package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogFile(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
products:
  - id: p-1
    name: Trail Runner
    category: Shoes
    subCategory: Running
    brand: Acme
    stock: 4
    priceCents: 8900
    rating: {stars: 4.5, count: 20}
    keywords: shoe, trail
  - name: Lamp
    category: Home
    stock: 2
    priceCents: 2500
    rating: [4, 5]
`)

	products, err := loadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, domain.ID("p-1"), products[0].ID)
	assert.Equal(t, domain.Keywords{"shoe", "trail"}, products[0].Keywords)
	avg, ok := products[0].Rating.Average()
	assert.True(t, ok)
	assert.Equal(t, 4.5, avg)

	assert.NotEmpty(t, products[1].ID)
	assert.NotNil(t, products[1].Keywords)
}

func TestLoadCatalogFile_Errors(t *testing.T) {
	_, err := loadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	dup := writeFile(t, "dup.yaml", "products:\n  - id: a\n  - id: a\n")
	_, err = loadCatalogFile(dup)
	assert.ErrorContains(t, err, "duplicate product id")
}

func TestRecommendCommand(t *testing.T) {
	path := writeFile(t, "input.json", `{
		"products": [
			{"id": "a", "category": "Kitchen", "stock": 3, "priceCents": 1000, "rating": 4},
			{"id": "b", "category": "Kitchen", "stock": 0, "priceCents": 1000, "rating": 4}
		],
		"viewEvents": [{"productId": "a"}, {"productId": "a"}, {"productId": "a"}, {"productId": "b"}]
	}`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"recommend", "--input", path})
	require.NoError(t, rootCmd.Execute())

	var res struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
		ColdStart bool `json:"coldStart"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Products, 1)
	assert.Equal(t, "a", res.Products[0].ID)
	assert.True(t, res.ColdStart)
}

func TestRecommendCommand_Stdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(`{"products": "not a list"}`))
	rootCmd.SetArgs([]string{"recommend", "--input", "-"})
	require.NoError(t, rootCmd.Execute())

	assert.JSONEq(t, `{"products":[],"coldStart":true}`, out.String())
}
