package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/movegen"
	"github.com/wyvernchess/wyvern/square"
)

func squareOf(t *testing.T, name string) square.Square {
	t.Helper()
	s, ok := square.Parse(name)
	require.True(t, ok)
	return s
}

func perft(b *board.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := movegen.Generate(b)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		token := b.MakeMove(m)
		nodes += perft(b, depth-1)
		b.UnmakeMove(token)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	b, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	want := []int{20, 400, 8902, 197281}
	if !testing.Short() {
		want = append(want, 4865609)
	}
	for depth, w := range want {
		got := perft(b, depth+1)
		require.Equalf(t, w, got, "perft(%d) from starting position", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	want := []int{48, 2039, 97862}
	if !testing.Short() {
		want = append(want, 4085603)
	}
	for depth, w := range want {
		got := perft(b, depth+1)
		require.Equalf(t, w, got, "perft(%d) from the Kiwipete position", depth+1)
	}
}

func TestPerftPosition3(t *testing.T) {
	b, err := board.ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)

	want := []int{14, 191, 2812, 43238}
	for depth, w := range want {
		got := perft(b, depth+1)
		require.Equalf(t, w, got, "perft(%d) from position 3", depth+1)
	}
}

func TestPerftPosition4(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)

	want := []int{6, 264, 9467}
	for depth, w := range want {
		got := perft(b, depth+1)
		require.Equalf(t, w, got, "perft(%d) from position 4", depth+1)
	}
}

func TestPerftPosition5(t *testing.T) {
	b, err := board.ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)

	want := []int{44, 1486, 62379}
	for depth, w := range want {
		got := perft(b, depth+1)
		require.Equalf(t, w, got, "perft(%d) from position 5", depth+1)
	}
}

func TestSimpleKingCapture(t *testing.T) {
	b, err := board.ParseFEN("8/8/8/8/3Kp2k/8/8/8 w - - 0 1")
	require.NoError(t, err)
	from := squareOf(t, "d4")
	to := squareOf(t, "e4")
	require.Contains(t, movegen.Generate(b), board.Move{From: from, To: to})
}

func TestNoSelfCapture(t *testing.T) {
	b, err := board.ParseFEN("8/8/8/8/3KP2k/8/8/8 w - - 0 1")
	require.NoError(t, err)
	from := squareOf(t, "d4")
	to := squareOf(t, "e4")
	require.NotContains(t, movegen.Generate(b), board.Move{From: from, To: to})
}

func TestBishopPin(t *testing.T) {
	b, err := board.ParseFEN("K7/8/2P5/8/4b3/8/8/k7 w - - 0 1")
	require.NoError(t, err)
	from := squareOf(t, "c6")
	to := squareOf(t, "c7")
	require.NotContains(t, movegen.Generate(b), board.Move{From: from, To: to})
}

func TestCastlingThroughAttackExcluded(t *testing.T) {
	b, err := board.ParseFEN("3rkr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	e1 := squareOf(t, "e1")
	g1 := squareOf(t, "g1")
	c1 := squareOf(t, "c1")
	moves := movegen.Generate(b)
	require.NotContains(t, moves, board.Move{From: e1, To: g1})
	require.NotContains(t, moves, board.Move{From: e1, To: c1})
}

func TestLegalCastling(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	e1 := squareOf(t, "e1")
	g1 := squareOf(t, "g1")
	c1 := squareOf(t, "c1")
	moves := movegen.Generate(b)
	require.Contains(t, moves, board.Move{From: e1, To: g1})
	require.Contains(t, moves, board.Move{From: e1, To: c1})
}
