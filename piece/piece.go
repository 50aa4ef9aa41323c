// Package piece defines the chess piece catalog: the two colors, the six
// piece kinds, and the combined Piece value used to index bitboards and the
// mailbox.
package piece

// Color is one of White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// BackRank returns the color's home rank (0-indexed: White=0, Black=7).
func (c Color) BackRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PromotionRank returns the rank on which the color's pawns promote.
func (c Color) PromotionRank() int {
	return c.Other().BackRank()
}

// PawnStartRank returns the rank on which the color's pawns begin the game.
func (c Color) PawnStartRank() int {
	if c == White {
		return 1
	}
	return 6
}

// Forward returns +1 for White (increasing rank) and -1 for Black.
func (c Color) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind is one of the six piece kinds.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// kindChars maps a Kind to its uppercase FEN letter.
var kindChars = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Char returns the FEN character for the kind, uppercase.
func (k Kind) Char() byte { return kindChars[k] }

// Piece packs a Color and a Kind into a single small value: Color*6 + Kind.
// The zero value is a White Pawn; callers that need an "empty square"
// sentinel use the Occupant type in the board package rather than a
// distinguished Piece value.
type Piece uint8

// New builds a Piece from a Color and a Kind.
func New(c Color, k Kind) Piece { return Piece(int(c)*6 + int(k)) }

// Color returns the piece's color.
func (p Piece) Color() Color { return Color(p / 6) }

// Kind returns the piece's kind.
func (p Piece) Kind() Kind { return Kind(p % 6) }

// Char returns the FEN character: uppercase for White, lowercase for Black.
func (p Piece) Char() byte {
	c := p.Kind().Char()
	if p.Color() == Black {
		return c - 'A' + 'a'
	}
	return c
}

// FromChar parses a FEN piece character. ok is false for any other byte.
func FromChar(c byte) (p Piece, ok bool) {
	color := White
	upper := c
	if c >= 'a' && c <= 'z' {
		color = Black
		upper = c - 'a' + 'A'
	}
	for k, kc := range kindChars {
		if kc == upper {
			return New(color, Kind(k)), true
		}
	}
	return 0, false
}

// Count is the number of distinct (kind, color) pieces.
const Count = 12
