package boolmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ixorlive/formal-lang-course/boolmatrix"
)

func TestNewZero_InvalidShape(t *testing.T) {
	_, err := boolmatrix.NewZero(0, 3)
	assert.ErrorIs(t, err, boolmatrix.ErrInvalidShape)

	_, err = boolmatrix.NewZero(3, -1)
	assert.ErrorIs(t, err, boolmatrix.ErrInvalidShape)
}

func TestSetGetClear(t *testing.T) {
	m, err := boolmatrix.NewZero(3, 3)
	require.NoError(t, err)

	ok, err := m.Get(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(1, 2))
	ok, err = m.Get(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, m.NNZ())

	require.NoError(t, m.Clear(1, 2))
	assert.Equal(t, 0, m.NNZ())

	_, err = m.Get(5, 0)
	assert.ErrorIs(t, err, boolmatrix.ErrIndexOutOfBounds)
}

func TestMul(t *testing.T) {
	// A: 0->1, B: 1->2 ⇒ A·B: 0->2
	a, err := boolmatrix.NewZero(3, 3)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 1))

	b, err := boolmatrix.NewZero(3, 3)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 2))

	c, err := boolmatrix.Mul(a, b)
	require.NoError(t, err)
	ok, err := c.Get(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, c.NNZ())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a, _ := boolmatrix.NewZero(2, 3)
	b, _ := boolmatrix.NewZero(2, 2)
	_, err := boolmatrix.Mul(a, b)
	assert.ErrorIs(t, err, boolmatrix.ErrDimensionMismatch)
}

func TestKron_Shape(t *testing.T) {
	a, _ := boolmatrix.NewZero(2, 3)
	require.NoError(t, a.Set(0, 0))
	b, _ := boolmatrix.NewZero(4, 5)
	require.NoError(t, b.Set(1, 1))

	k, err := boolmatrix.Kron(a, b)
	require.NoError(t, err)
	assert.Equal(t, 8, k.Rows())
	assert.Equal(t, 15, k.Cols())

	ok, err := k.Get(1, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, k.NNZ())
}

func TestBlockDiag(t *testing.T) {
	a, _ := boolmatrix.NewZero(2, 2)
	require.NoError(t, a.Set(0, 1))
	b, _ := boolmatrix.NewZero(3, 3)
	require.NoError(t, b.Set(2, 0))

	bd, err := boolmatrix.BlockDiag(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5, bd.Rows())
	assert.Equal(t, 5, bd.Cols())

	ok, err := bd.Get(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bd.Get(4, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// cross-block entries stay false
	ok, err = bd.Get(0, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransitiveClosure(t *testing.T) {
	// chain 0->1->2->3
	m, _ := boolmatrix.NewZero(4, 4)
	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 2))
	require.NoError(t, m.Set(2, 3))

	tc, err := boolmatrix.TransitiveClosure(m)
	require.NoError(t, err)
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}} {
		ok, err := tc.Get(pair[0], pair[1])
		require.NoError(t, err)
		assert.Truef(t, ok, "expected reachability %v", pair)
	}
	ok, err := tc.Get(3, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrInPlace_ReportsGrowth(t *testing.T) {
	a, _ := boolmatrix.NewZero(2, 2)
	require.NoError(t, a.Set(0, 0))
	b, _ := boolmatrix.NewZero(2, 2)
	require.NoError(t, b.Set(0, 0))

	grew, err := a.OrInPlace(b)
	require.NoError(t, err)
	assert.False(t, grew, "no new bits, already present")

	require.NoError(t, b.Set(1, 1))
	grew, err = a.OrInPlace(b)
	require.NoError(t, err)
	assert.True(t, grew)
}
