// Package square implements the fixed 64-square board indexing: file is the
// low 3 bits, rank is the high 3 bits, squares run a1=0 .. h8=63.
package square

import "fmt"

// Square is a board square in 0..63, or None for "no square".
type Square int8

// None represents the absence of a square (e.g. no en-passant target).
const None Square = -1

// New builds a Square from a zero-based file (0=a..7=h) and rank (0=1..7=8).
// Returns None if either coordinate is out of bounds.
func New(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return None
	}
	return Square(rank*8 + file)
}

// File returns the zero-based file, 0=a .. 7=h.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the zero-based rank, 0=rank-1 .. 7=rank-8.
func (s Square) Rank() int { return int(s) >> 3 }

// Valid reports whether s is a real board square.
func (s Square) Valid() bool { return s >= 0 && s <= 63 }

// String renders algebraic notation, e.g. "e4", or "-" if invalid.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// Parse reads a two-character algebraic square name ("e4"). ok is false for
// anything else, including "-".
func Parse(name string) (s Square, ok bool) {
	if len(name) != 2 {
		return None, false
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return None, false
	}
	return New(file, rank), true
}

// Offset returns the square reached by moving dFile files and dRank ranks
// from s, or None if the result would leave the board.
func (s Square) Offset(dFile, dRank int) Square {
	return New(s.File()+dFile, s.Rank()+dRank)
}

const (
	A1 = Square(iota)
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
