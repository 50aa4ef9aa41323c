package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/movegen"
)

func neverStop() bool { return false }

func TestNegamaxFindsBackRankMate(t *testing.T) {
	// White to move, rook delivers immediate mate on h8.
	b, err := board.ParseFEN("5k2/7R/5K2/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)

	cache := NewCache(1 << 20)
	move, score := Search(b, cache, 2, neverStop)

	assert.Equal(t, "h7h8", move.UCI())
	assert.Greater(t, score, float32(800_000))
}

func TestNegamaxDetectsStalemate(t *testing.T) {
	// Black to move, no legal moves, not in check: stalemate scores 0.
	b, err := board.ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	moves, inCheck := movegen.GenerateDetailed(b)
	require.Empty(t, moves)
	require.False(t, inCheck)

	cache := NewCache(1 << 20)
	score := Negamax(b, cache, 3, PosInf, neverStop)

	assert.Equal(t, float32(0), score)
}

func TestNegamaxDetectsCheckmate(t *testing.T) {
	// Black to move, back-rank mate against Black.
	b, err := board.ParseFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)
	moves, inCheck := movegen.GenerateDetailed(b)
	require.Empty(t, moves)
	require.True(t, inCheck)

	cache := NewCache(1 << 20)
	score := Negamax(b, cache, 3, PosInf, neverStop)

	assert.Less(t, score, float32(-800_000))
}

func TestCacheRespectsLRUCapacity(t *testing.T) {
	c := NewCache(entrySize * 2) // room for exactly 2 entries

	c.Put(1, 4, 1.5)
	c.Put(2, 4, -2.5)
	_, _, ok := c.Get(1) // touch 1, making 2 the least recently used
	require.True(t, ok)

	c.Put(3, 4, 0.5) // evicts 2, not 1

	_, _, ok = c.Get(2)
	assert.False(t, ok)
	_, score, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), score)
	_, _, ok = c.Get(3)
	assert.True(t, ok)
}

func TestMateScoreOrdersFasterMatesWorse(t *testing.T) {
	fast := MateScore(5)
	slow := MateScore(1)
	assert.Less(t, fast, slow, "a mate reachable with more depth remaining must score worse (more negative)")
}
