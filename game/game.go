// Package game layers the bookkeeping a full chess game needs on top of a
// bare position: repetition and fifty-move tracking, insufficient-material
// detection, and game-result classification. None of this is consulted by
// the search, which only ever asks the move generator whether the current
// position has legal moves.
package game

import (
	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/movegen"
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/zobrist"
)

// Result is the outcome of a finished game. The zero value means the game
// is still in progress.
type Result int

const (
	ResultInProgress Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

// Termination names why a finished game ended.
type Termination int

const (
	TerminationUnterminated Termination = iota
	TerminationCheckmate
	TerminationStalemate
	TerminationInsufficientMaterial
	TerminationFiftyMove
	TerminationThreefoldRepetition
)

// Game wraps a Board with the history a complete game needs: the current
// legal move list (recomputed after every push) and a repetition table
// keyed on the incremental Zobrist hash already maintained by the board.
type Game struct {
	Board       *board.Board
	LegalMoves  []board.Move
	InCheck     bool
	Result      Result
	Termination Termination

	repetitions map[zobrist.Key]int
}

// New starts a Game from the standard opening position.
func New() *Game {
	return FromBoard(board.Start())
}

// FromBoard wraps an existing board, computing its legal moves and seeding
// the repetition table with its current hash.
func FromBoard(b *board.Board) *Game {
	g := &Game{
		Board:       b,
		repetitions: make(map[zobrist.Key]int, 1),
	}
	g.repetitions[b.Hash] = 1
	g.refresh()
	return g
}

// refresh recomputes LegalMoves and InCheck, and updates Result/Termination
// from scratch against the current position and history.
func (g *Game) refresh() {
	g.LegalMoves, g.InCheck = movegen.GenerateDetailed(g.Board)

	switch {
	case len(g.LegalMoves) == 0 && g.InCheck:
		g.Result, g.Termination = resultFor(g.Board.SideToMove.Other()), TerminationCheckmate
	case len(g.LegalMoves) == 0:
		g.Result, g.Termination = ResultDraw, TerminationStalemate
	case g.IsInsufficientMaterial():
		g.Result, g.Termination = ResultDraw, TerminationInsufficientMaterial
	case g.Board.HalfmoveClock >= 100:
		g.Result, g.Termination = ResultDraw, TerminationFiftyMove
	case g.IsThreefoldRepetition():
		g.Result, g.Termination = ResultDraw, TerminationThreefoldRepetition
	default:
		g.Result, g.Termination = ResultInProgress, TerminationUnterminated
	}
}

func resultFor(winner piece.Color) Result {
	if winner == piece.White {
		return ResultWhiteWins
	}
	return ResultBlackWins
}

// IsLegal reports whether m appears in the current legal move list.
func (g *Game) IsLegal(m board.Move) bool {
	for _, lm := range g.LegalMoves {
		if lm == m {
			return true
		}
	}
	return false
}

// Push plays m, which the caller must already know is legal, and returns its
// Standard Algebraic Notation. The repetition table is cleared on any
// irreversible move (capture, pawn move, castle), since positions before an
// irreversible move can never recur.
func (g *Game) Push(m board.Move) string {
	moved, _ := g.Board.Pieces.At(m.From).Get()
	_, destOccupied := g.Board.Pieces.At(m.To).Get()
	isEnPassant := m.To == g.Board.EnPassant && moved.Kind() == piece.Pawn
	isCapture := destOccupied || isEnPassant
	isCastle := moved.Kind() == piece.King && abs(int(m.From)-int(m.To)) == 2

	san := formatSAN(g.Board, g.LegalMoves, m, moved, isCapture)

	irreversible := isCapture || moved.Kind() == piece.Pawn || isCastle
	if irreversible {
		clear(g.repetitions)
	}

	g.Board.MakeMove(m)
	g.repetitions[g.Board.Hash]++
	g.refresh()

	if g.Termination == TerminationCheckmate {
		san += "#"
	} else if g.InCheck {
		san += "+"
	}
	return san
}

// IsThreefoldRepetition reports whether the current position's Zobrist hash
// has now occurred at least three times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitions[g.Board.Hash] >= 3
}

// darkSquares is every dark-colored square, used to compare bishop colors.
const darkSquares = 0xAA55AA55AA55AA55

// IsInsufficientMaterial reports whether neither side has enough material
// left to force checkmate: king vs king, king+minor vs king, king+bishop vs
// king+bishop with same-colored bishops, or king+knight vs king+knight.
func (g *Game) IsInsufficientMaterial() bool {
	ps := &g.Board.Pieces
	if ps.Bitboards[piece.New(piece.White, piece.Pawn)] != 0 ||
		ps.Bitboards[piece.New(piece.Black, piece.Pawn)] != 0 ||
		ps.Bitboards[piece.New(piece.White, piece.Rook)] != 0 ||
		ps.Bitboards[piece.New(piece.Black, piece.Rook)] != 0 ||
		ps.Bitboards[piece.New(piece.White, piece.Queen)] != 0 ||
		ps.Bitboards[piece.New(piece.Black, piece.Queen)] != 0 {
		return false
	}

	wb := ps.Bitboards[piece.New(piece.White, piece.Bishop)]
	bb := ps.Bitboards[piece.New(piece.Black, piece.Bishop)]
	wn := ps.Bitboards[piece.New(piece.White, piece.Knight)]
	bn := ps.Bitboards[piece.New(piece.Black, piece.Knight)]

	minorCount := wb.Len() + bb.Len() + wn.Len() + bn.Len()
	switch {
	case minorCount == 0:
		return true
	case minorCount == 1:
		return true
	case minorCount == 2 && wb.Len() == 1 && bb.Len() == 1:
		return wb.Intersects(darkSquares) == bb.Intersects(darkSquares)
	case minorCount == 2 && wn.Len() == 1 && bn.Len() == 1:
		return true
	default:
		return false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
