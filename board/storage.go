package board

import (
	"github.com/wyvernchess/wyvern/bitboard"
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
	"github.com/wyvernchess/wyvern/zobrist"
)

// Occupant is an optional Piece: the mailbox entry for one square.
type Occupant struct {
	piece piece.Piece
	ok    bool
}

// Empty is the zero Occupant, representing an empty square.
var Empty Occupant

// Occupied wraps p as a present Occupant.
func Occupied(p piece.Piece) Occupant { return Occupant{piece: p, ok: true} }

// Get returns the occupying piece and true, or the zero Piece and false.
func (o Occupant) Get() (piece.Piece, bool) { return o.piece, o.ok }

// PieceStorage is the redundant board representation: twelve per-piece
// bitboards plus a 64-entry mailbox. Every mutation keeps both in sync and
// reports the piece-square Zobrist toggles it performed.
//
// Invariant: for every square s and piece p, Mailbox[s] holds p exactly when
// Bitboards[p] has s set, and at most one bitboard has s set.
type PieceStorage struct {
	Bitboards [piece.Count]bitboard.Bitboard
	Mailbox   [64]Occupant
}

// At returns the occupant of s.
func (s *PieceStorage) At(sq square.Square) Occupant { return s.Mailbox[sq] }

// Set clears whatever occupies sq, then places occ there (if any),
// XOR-ing the Zobrist piece-square keys for whichever pieces left or
// arrived into h, and returns the updated hash.
func (s *PieceStorage) Set(h zobrist.Key, sq square.Square, occ Occupant) zobrist.Key {
	if old, ok := s.Mailbox[sq].Get(); ok {
		s.Bitboards[old] = s.Bitboards[old].WithRemoved(sq)
		h = zobrist.TogglePiece(h, old, sq)
	}
	s.Mailbox[sq] = occ
	if p, ok := occ.Get(); ok {
		s.Bitboards[p] = s.Bitboards[p].WithInserted(sq)
		h = zobrist.TogglePiece(h, p, sq)
	}
	return h
}

// Friendly returns the union of every bitboard belonging to c.
func (s *PieceStorage) Friendly(c piece.Color) bitboard.Bitboard {
	var u bitboard.Bitboard
	for k := piece.Pawn; k <= piece.King; k++ {
		u = u.Union(s.Bitboards[piece.New(c, k)])
	}
	return u
}

// All returns the union of every occupied square.
func (s *PieceStorage) All() bitboard.Bitboard {
	return s.Friendly(piece.White).Union(s.Friendly(piece.Black))
}

// KingSquare returns the square holding c's king. Panics if absent: the
// board invariant guarantees exactly one king of each color is present.
func (s *PieceStorage) KingSquare(c piece.Color) square.Square {
	bb := s.Bitboards[piece.New(c, piece.King)]
	sq := bb.LSB()
	if !sq.Valid() {
		panic("board: no king present for " + c.String())
	}
	return sq
}
