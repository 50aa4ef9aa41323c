package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
)

func mustSquare(t *testing.T, name string) square.Square {
	t.Helper()
	s, ok := square.Parse(name)
	require.True(t, ok)
	return s
}

func move(t *testing.T, from, to string) Move {
	t.Helper()
	return Move{From: mustSquare(t, from), To: mustSquare(t, to)}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/3Pp3/8/4K2k/8/8 w - e6 0 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, b.String())
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	_, err := ParseFEN("not a fen")
	assert.Error(t, err)
}

func TestMakeUnmakeDefaultMove(t *testing.T) {
	b := Start()
	before := *b
	beforeHash := b.Hash

	token := b.MakeMove(move(t, "e2", "e4"))
	assert.NotEqual(t, beforeHash, b.Hash)
	assert.Equal(t, piece.Black, b.SideToMove)

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.SideToMove, b.SideToMove)
	assert.Equal(t, before.Pieces, b.Pieces)
}

func TestMakeUnmakeCapture(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	before := *b
	beforeHash := b.Hash

	token := b.MakeMove(move(t, "e4", "d5"))
	_, hasPiece := b.Pieces.At(mustSquare(t, "d5")).Get()
	assert.True(t, hasPiece)

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.Pieces, b.Pieces)
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	b, err := ParseFEN("8/8/8/3Pp3/8/4K2k/8/8 w - e6 0 1")
	require.NoError(t, err)
	before := *b
	beforeHash := b.Hash

	m := Move{From: mustSquare(t, "d5"), To: mustSquare(t, "e6")}
	token := b.MakeMove(m)

	_, capturedStillThere := b.Pieces.At(mustSquare(t, "e5")).Get()
	assert.False(t, capturedStillThere)
	_, landed := b.Pieces.At(mustSquare(t, "e6")).Get()
	assert.True(t, landed)

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.Pieces, b.Pieces)
	assert.Equal(t, before.EnPassant, b.EnPassant)
}

func TestMakeUnmakePromotion(t *testing.T) {
	b, err := ParseFEN("8/4P1k1/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	before := *b
	beforeHash := b.Hash

	m := Move{From: mustSquare(t, "e7"), To: mustSquare(t, "e8"), Promotes: true, Promotion: piece.Queen}
	token := b.MakeMove(m)

	occ, ok := b.Pieces.At(mustSquare(t, "e8")).Get()
	require.True(t, ok)
	assert.Equal(t, piece.Queen, occ.Kind())

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.Pieces, b.Pieces)
}

func TestMakeUnmakePromotionWithCapture(t *testing.T) {
	b, err := ParseFEN("4n1k1/4P3/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	before := *b
	beforeHash := b.Hash

	m := Move{From: mustSquare(t, "e7"), To: mustSquare(t, "e8"), Promotes: true, Promotion: piece.Rook}
	token := b.MakeMove(m)
	assert.True(t, token.HasCaptured)

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.Pieces, b.Pieces)
}

func TestMakeUnmakeCastling(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := *b
	beforeHash := b.Hash

	token := b.MakeMove(move(t, "e1", "g1"))
	rook, ok := b.Pieces.At(mustSquare(t, "f1")).Get()
	require.True(t, ok)
	assert.Equal(t, piece.Rook, rook.Kind())
	assert.False(t, b.Castling.Has(WhiteKingside))
	assert.False(t, b.Castling.Has(WhiteQueenside))

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.Pieces, b.Pieces)
	assert.Equal(t, before.Castling, b.Castling)
}

func TestMakeUnmakeDoublePushWithoutAdjacentPawnSetsNoEnPassant(t *testing.T) {
	b := Start()
	before := *b
	beforeHash := b.Hash

	token := b.MakeMove(move(t, "e2", "e4"))
	assert.Equal(t, square.None, b.EnPassant)

	b.UnmakeMove(token)
	assert.Equal(t, beforeHash, b.Hash)
	assert.Equal(t, before.EnPassant, b.EnPassant)
}

func TestRookMoveRevokesCastlingRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	b.MakeMove(move(t, "h1", "h2"))
	assert.False(t, b.Castling.Has(WhiteKingside))
	assert.True(t, b.Castling.Has(WhiteQueenside))
}

func TestCapturingRookCornerRevokesRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/6P1/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	b.MakeMove(Move{From: mustSquare(t, "g7"), To: mustSquare(t, "h8"), Promotes: true, Promotion: piece.Queen})
	assert.False(t, b.Castling.Has(BlackKingside))
}

func TestHalfmoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	b := Start()
	b.MakeMove(move(t, "g1", "f3"))
	assert.Equal(t, 1, b.HalfmoveClock)

	b.MakeMove(move(t, "g8", "f6"))
	assert.Equal(t, 2, b.HalfmoveClock)

	b.MakeMove(move(t, "e2", "e4"))
	assert.Equal(t, 0, b.HalfmoveClock)
}
