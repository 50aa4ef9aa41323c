package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyvernchess/wyvern/square"
)

func TestSingleAndContains(t *testing.T) {
	b := Single(square.E4)
	assert.True(t, b.Contains(square.E4))
	assert.False(t, b.Contains(square.E5))
}

func TestWithInsertedAndRemoved(t *testing.T) {
	b := Empty.WithInserted(square.A1).WithInserted(square.H8)
	assert.True(t, b.Contains(square.A1))
	assert.True(t, b.Contains(square.H8))

	b = b.WithRemoved(square.A1)
	assert.False(t, b.Contains(square.A1))
	assert.True(t, b.Contains(square.H8))
}

func TestInsertIf(t *testing.T) {
	b := Empty.InsertIf(true, square.D4).InsertIf(false, square.D5)
	assert.True(t, b.Contains(square.D4))
	assert.False(t, b.Contains(square.D5))
}

func TestSetAlgebra(t *testing.T) {
	a := Single(square.A1).Union(Single(square.B1))
	b := Single(square.B1).Union(Single(square.C1))

	assert.Equal(t, Single(square.B1), a.Intersection(b))
	assert.True(t, a.Intersects(b))
	assert.Equal(t, Single(square.A1), a.Difference(b))
	assert.Equal(t, Single(square.A1).Union(Single(square.C1)), a.SymmetricDifference(b))
}

func TestLenAndLSBAndPopLSB(t *testing.T) {
	b := Single(square.B1).Union(Single(square.D1))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, square.B1, b.LSB())

	s, rest := b.PopLSB()
	assert.Equal(t, square.B1, s)
	assert.Equal(t, square.D1, rest.LSB())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.False(t, Single(square.A1).IsEmpty())
}

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, 8, FileA.Len())
	assert.True(t, FileA.Contains(square.A1))
	assert.True(t, FileA.Contains(square.A8))
	assert.False(t, FileA.Contains(square.B1))

	assert.Equal(t, 8, Rank1.Len())
	assert.True(t, Rank1.Contains(square.A1))
	assert.True(t, Rank1.Contains(square.H1))
	assert.False(t, Rank1.Contains(square.A2))
}

func TestSquares(t *testing.T) {
	b := Single(square.D4).Union(Single(square.A1))
	assert.Equal(t, []square.Square{square.A1, square.D4}, b.Squares())
}

func TestShiftDropsOffBoard(t *testing.T) {
	b := Single(square.H1)
	assert.True(t, b.Shift(1, 0).IsEmpty())
	assert.Equal(t, Single(square.H2), b.Shift(0, 1))
}
