package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProducts(t *testing.T) {
	products, err := readProducts(filepath.Join("..", "..", "db", "seed", "products.json"))
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.True(t, p.Price.IsPositive(), p.ID)
	}
}

func TestReadProducts_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","price":"0","stock":1}]`), 0o600))

	_, err := readProducts(path)
	assert.Error(t, err)
}

func TestDemoCouponsValid(t *testing.T) {
	for _, req := range demoCoupons(time.Now()) {
		assert.NoError(t, req.Validate(), req.Code)
	}
}
