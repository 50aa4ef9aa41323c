// Package attacks holds the precomputed attack sets every legal-move query
// consults: fixed per-square tables for pawns, knights and kings, and
// magic-bitboard tables for the sliding pieces (bishop, rook; queen is their
// union). All tables are built once, at package init, and treated as
// read-only static data afterward.
package attacks

import (
	"github.com/wyvernchess/wyvern/bitboard"
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
)

// Pawn[c][s] is the set of squares a color-c pawn standing on s attacks.
var Pawn [2][64]bitboard.Bitboard

// Knight[s] is the set of squares a knight standing on s attacks.
var Knight [64]bitboard.Bitboard

// King[s] is the set of squares a king standing on s attacks (not counting
// castling, which the move generator handles separately).
var King [64]bitboard.Bitboard

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for i := 0; i < 64; i++ {
		s := square.Square(i)

		Pawn[piece.White][i] = leaperSet(s, [2][2]int{{-1, 1}, {1, 1}})
		Pawn[piece.Black][i] = leaperSet(s, [2][2]int{{-1, -1}, {1, -1}})

		var knight, king bitboard.Bitboard
		for _, d := range knightOffsets {
			if dst := s.Offset(d[0], d[1]); dst.Valid() {
				knight = knight.WithInserted(dst)
			}
		}
		for _, d := range kingOffsets {
			if dst := s.Offset(d[0], d[1]); dst.Valid() {
				king = king.WithInserted(dst)
			}
		}
		Knight[i] = knight
		King[i] = king
	}
}

func leaperSet(s square.Square, offsets [2][2]int) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, d := range offsets {
		if dst := s.Offset(d[0], d[1]); dst.Valid() {
			bb = bb.WithInserted(dst)
		}
	}
	return bb
}
