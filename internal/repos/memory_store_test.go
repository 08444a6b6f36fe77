package repos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopd/internal/domain"
	"shopd/internal/repos"
)

func TestMemoryStoreLazyInit(t *testing.T) {
	s := repos.NewMemoryCartStore()

	lines, err := s.Get("s1")
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestMemoryStoreSessionsAreIndependent(t *testing.T) {
	s := repos.NewMemoryCartStore()

	require.NoError(t, s.Save("s1", []domain.CartLine{{ProductID: "a", Qty: 1, Price: 100}}))

	other, err := s.Get("s2")
	require.NoError(t, err)
	assert.Empty(t, other)

	mine, err := s.Get("s1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].ProductID)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := repos.NewMemoryCartStore()
	require.NoError(t, s.Save("s1", []domain.CartLine{{ProductID: "a", Qty: 1}}))

	got, err := s.Get("s1")
	require.NoError(t, err)
	got[0].Qty = 99

	again, err := s.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), again[0].Qty)
}

func TestMemoryStoreClear(t *testing.T) {
	s := repos.NewMemoryCartStore()
	require.NoError(t, s.Save("s1", []domain.CartLine{{ProductID: "a", Qty: 2}}))

	require.NoError(t, s.Clear("s1"))

	lines, err := s.Get("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}
