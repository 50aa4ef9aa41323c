// Package zobrist provides the incremental position-hash keys: one random
// key per (piece, square), one per castling-rights value, one per en-passant
// file, and one for side-to-move, so make/unmake can maintain the hash with
// pure XOR toggles instead of recomputing it from scratch.
//
// This deliberately departs from a from-scratch-recompute, 64-square-keyed
// en-passant scheme: only 8 file keys exist, and callers toggle the
// en-passant key only when an enemy pawn is actually positioned to capture
// en passant, not merely when a double push occurred.
package zobrist

import (
	"math/rand/v2"

	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
)

// Key is a 64-bit Zobrist hash.
type Key uint64

var (
	// PieceSquare[p][s] is the key toggled when piece p occupies square s.
	PieceSquare [piece.Count][64]Key

	// Castling[rights] is the key for a given 4-bit castling-rights value
	// (bit 0: White kingside, 1: White queenside, 2: Black kingside,
	// 3: Black queenside), XORed in whole whenever rights change.
	Castling [16]Key

	// EnPassantFile[file] is the key toggled when an en-passant capture is
	// currently possible into that file.
	EnPassantFile [8]Key

	// SideToMove is XORed in whenever the side to move changes.
	SideToMove Key
)

func init() {
	seed := rand.NewPCG(0x7761_7665, 0x666c_7567)
	rng := rand.New(seed)

	for p := 0; p < piece.Count; p++ {
		for s := 0; s < 64; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}
	for r := range Castling {
		Castling[r] = Key(rng.Uint64())
	}
	for f := range EnPassantFile {
		EnPassantFile[f] = Key(rng.Uint64())
	}
	SideToMove = Key(rng.Uint64())
}

// TogglePiece XORs the key for p standing on s into h and returns the
// result.
func TogglePiece(h Key, p piece.Piece, s square.Square) Key {
	return h ^ PieceSquare[p][s]
}

// ToggleCastling XORs the key for the given castling-rights nibble into h.
func ToggleCastling(h Key, rights uint8) Key {
	return h ^ Castling[rights&0xF]
}

// ToggleEnPassant XORs the key for the given file into h.
func ToggleEnPassant(h Key, file int) Key {
	return h ^ EnPassantFile[file&7]
}

// ToggleSideToMove XORs the side-to-move key into h.
func ToggleSideToMove(h Key) Key {
	return h ^ SideToMove
}
