package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopd/internal/catalog"
)

func TestDefaultListStableOrder(t *testing.T) {
	c := catalog.Default()

	first := c.List()
	second := c.List()
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "tshirt-001", first[0].ID)
	assert.Equal(t, "hoodie-002", first[1].ID)
	assert.Equal(t, "jeans-003", first[2].ID)
}

func TestListReturnsCopy(t *testing.T) {
	c := catalog.Default()

	got := c.List()
	got[0].Price = 1

	p, err := c.Find("tshirt-001")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), p.Price)
}

func TestFind(t *testing.T) {
	c := catalog.Default()

	p, err := c.Find("hoodie-002")
	require.NoError(t, err)
	assert.Equal(t, "Comfy Hoodie", p.Name)
	assert.Equal(t, int64(4999), p.Price)
	assert.Equal(t, "usd", p.Currency)

	_, err = c.Find("nope-999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
