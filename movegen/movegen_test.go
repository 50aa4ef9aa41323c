package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/square"
)

func parseBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	require.NoError(t, err)
	return b
}

func sq(t *testing.T, name string) square.Square {
	t.Helper()
	s, ok := square.Parse(name)
	require.True(t, ok)
	return s
}

func TestContextDetectsCheck(t *testing.T) {
	b := parseBoard(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	c := newContext(b)
	assert.True(t, c.inCheck)
	assert.Equal(t, 1, c.numCheckers)
}

func TestContextDetectsDoubleCheck(t *testing.T) {
	b := parseBoard(t, "8/8/8/8/8/3n4/4r3/4K3 w - - 0 1")
	c := newContext(b)
	assert.Equal(t, 2, c.numCheckers)
}

func TestComputePinsFindsOrthogonalPin(t *testing.T) {
	b := parseBoard(t, "4k3/8/8/8/4r3/8/4R3/4K3 w - - 0 1")
	c := newContext(b)
	assert.True(t, c.pinned.Contains(sq(t, "e2")))
}

func TestComputePinsIgnoresUnrelatedPieces(t *testing.T) {
	b := parseBoard(t, "4k3/8/8/8/4r3/8/8/4K3 w - - 0 1")
	c := newContext(b)
	assert.True(t, c.pinned.IsEmpty())
}

func TestEnPassantHorizontalPinForbidden(t *testing.T) {
	// Black just played ...e7-e5; a white pawn on d5 capturing en passant
	// would clear both d5 and e5 off the fifth rank, exposing the White
	// king on g5 to the rook on a5.
	b := parseBoard(t, "8/8/8/r2Pp1K1/8/8/8/8 w - e6 0 1")
	c := newContext(b)
	assert.False(t, c.enPassantLegal(sq(t, "d5"), sq(t, "e6")))
}

func TestEnPassantLegalWithoutRankPin(t *testing.T) {
	b := parseBoard(t, "8/8/8/3Pp3/8/4K2k/8/8 w - e6 0 1")
	c := newContext(b)
	assert.True(t, c.enPassantLegal(sq(t, "d5"), sq(t, "e6")))
}

// A pinned piece whose pin line doesn't intersect the check-evasion squares
// has no legal moves at all: the rook on e5 is pinned to the king along the
// e-file by the queen on e8, but the only check is from the knight on c3,
// off that file, so the rook cannot both stay on the pin line and address
// the check.
func TestPinnedPieceWithDisjointCheckHasNoMoves(t *testing.T) {
	b := parseBoard(t, "4q3/8/8/4R3/4K3/2n5/8/7k w - - 0 1")
	c := newContext(b)
	require.True(t, c.inCheck)
	require.True(t, c.pinned.Contains(sq(t, "e5")))

	restrict := c.restrictionFor(sq(t, "e5"))
	assert.True(t, restrict.IsEmpty())

	for _, m := range Generate(b) {
		assert.NotEqual(t, sq(t, "e5"), m.From, "pinned rook must not move while the pin ray and check evasion squares are disjoint")
	}
}
