// Package eval provides the static position evaluator the search calls at
// its leaves: material plus a piece-square bonus, from the perspective of
// the side to move.
package eval

import (
	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
)

// materialValue holds the pawn-unit value of each piece kind.
var materialValue = [6]float32{
	piece.Pawn:   1.0,
	piece.Knight: 3.0,
	piece.Bishop: 3.5,
	piece.Rook:   5.0,
	piece.Queen:  8.0,
	piece.King:   0.0,
}

// pieceSquareTable[k][s] is the positional bonus for a piece of kind k
// standing on square s, from White's perspective; Black's pieces read the
// table mirrored vertically (file, 7-rank).
var pieceSquareTable = buildTables()

func buildTables() [6][64]float32 {
	var t [6][64]float32

	// Pawns: discouraged on the back ranks, rewarded for advancing and for
	// occupying the center.
	for s := 0; s < 64; s++ {
		rank := s / 8
		file := s % 8
		center := centerBonus(file, rank)
		t[piece.Pawn][s] = float32(rank-1)*0.05 + center
	}

	// Knights: strongly favor the center, penalize the rim.
	for s := 0; s < 64; s++ {
		file, rank := s%8, s/8
		t[piece.Knight][s] = 0.30 * centerBonus(file, rank)
	}

	// Bishops: mild center preference.
	for s := 0; s < 64; s++ {
		file, rank := s%8, s/8
		t[piece.Bishop][s] = 0.15 * centerBonus(file, rank)
	}

	// Rooks: flat, with a small bonus for the seventh rank (White's
	// perspective) where they harass enemy pawns.
	for s := 0; s < 64; s++ {
		rank := s / 8
		if rank == 6 {
			t[piece.Rook][s] = 0.20
		}
	}

	// Queens: very mild center preference.
	for s := 0; s < 64; s++ {
		file, rank := s%8, s/8
		t[piece.Queen][s] = 0.05 * centerBonus(file, rank)
	}

	// King: favors the back-rank corners (castled safety) over the center.
	for s := 0; s < 64; s++ {
		file, rank := s%8, s/8
		t[piece.King][s] = -0.30*centerBonus(file, rank) + backRankBonus(rank)
	}

	return t
}

// centerBonus peaks at the center four squares and falls off toward the
// edge, in the 0..1 range.
func centerBonus(file, rank int) float32 {
	df := float32(file) - 3.5
	dr := float32(rank) - 3.5
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	dist := df
	if dr > dist {
		dist = dr
	}
	return 1.0 - dist/3.5
}

func backRankBonus(rank int) float32 {
	if rank == 0 {
		return 0.15
	}
	return 0
}

// mirror returns s as seen from Black's side of the board: same file,
// rank reflected about the center.
func mirror(s square.Square) square.Square {
	return square.New(s.File(), 7-s.Rank())
}

// Evaluate returns a static score for b from the perspective of its side to
// move: positive favors the side to move, negative favors the opponent.
func Evaluate(b *board.Board) float32 {
	var own, opp float32
	for c := piece.White; c <= piece.Black; c++ {
		for k := piece.Pawn; k <= piece.King; k++ {
			bb := b.Pieces.Bitboards[piece.New(c, k)]
			for rest := bb; !rest.IsEmpty(); {
				var s square.Square
				s, rest = rest.PopLSB()

				tableSquare := s
				if c == piece.Black {
					tableSquare = mirror(s)
				}
				pieceScore := materialValue[k] + pieceSquareTable[k][tableSquare]
				if c == b.SideToMove {
					own += pieceScore
				} else {
					opp += pieceScore
				}
			}
		}
	}
	return own - opp
}
