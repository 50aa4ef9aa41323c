package board

import (
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
	"github.com/wyvernchess/wyvern/zobrist"
)

// Move is a from/to square pair plus an optional promotion kind. It carries
// no information about the board it applies to; legality is the move
// generator's concern.
type Move struct {
	From, To  square.Square
	Promotion piece.Kind
	Promotes  bool
}

// UCI renders the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotes {
		s += string(promotionChar(m.Promotion))
	}
	return s
}

func promotionChar(k piece.Kind) byte {
	c := k.Char()
	return c - 'A' + 'a'
}

// promotionKindFromChar maps a UCI promotion letter ('q','r','b','n') to a
// Kind. ok is false for anything else.
func promotionKindFromChar(c byte) (piece.Kind, bool) {
	switch c {
	case 'q':
		return piece.Queen, true
	case 'r':
		return piece.Rook, true
	case 'b':
		return piece.Bishop, true
	case 'n':
		return piece.Knight, true
	}
	return 0, false
}

// ParseUCIMove parses a long-algebraic move string such as "e2e4" or
// "e7e8q". It does not validate legality, only syntax.
func ParseUCIMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := square.Parse(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := square.Parse(s[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		k, ok := promotionKindFromChar(s[4])
		if !ok {
			return Move{}, false
		}
		m.Promotion = k
		m.Promotes = true
	}
	return m, true
}

// UnmakeToken captures exactly what MakeMove cannot reconstruct from the
// post-move board and the Move itself, so UnmakeMove can restore the prior
// board exactly: the moved piece's kind, whatever was captured (if
// anything), and the prior en-passant target, castling rights, halfmove
// clock, and hash.
type UnmakeToken struct {
	Move Move

	MovedColor piece.Color
	MovedKind  piece.Kind

	Captured     piece.Kind
	HasCaptured  bool
	CaptureSquare square.Square

	PriorEnPassant square.Square
	PriorCastling  CastlingRights
	PriorHalfmove  int
	PriorHash      zobrist.Key
}
