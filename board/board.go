// Package board implements the mutable chess position: the piece-storage
// invariant, FEN I/O, and move application via an exact-reversal
// make/unmake pair built on incremental Zobrist hashing.
package board

import (
	"fmt"

	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
	"github.com/wyvernchess/wyvern/zobrist"
)

// CastlingRights packs the four independent castling privileges into one
// byte. The bit pattern doubles as the Zobrist castling-key index.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Has reports whether all bits of want are set.
func (r CastlingRights) Has(want CastlingRights) bool { return r&want == want }

// Board is a complete, mutable chess position.
type Board struct {
	Pieces         PieceStorage
	SideToMove     piece.Color
	EnPassant      square.Square // square.None if no target
	Castling       CastlingRights
	HalfmoveClock  int
	FullmoveNumber int
	Hash           zobrist.Key
}

// Start returns the standard initial position.
func Start() *Board {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("board: malformed built-in starting FEN: " + err.Error())
	}
	return b
}

// castlingRookHome returns the corner square a castling rook starts from.
func (b *Board) castlingRookHome(c piece.Color, kingside bool) square.Square {
	rank := c.BackRank()
	if kingside {
		return square.New(7, rank)
	}
	return square.New(0, rank)
}

func (b *Board) castlingRookDestination(c piece.Color, kingside bool) square.Square {
	rank := c.BackRank()
	if kingside {
		return square.New(5, rank)
	}
	return square.New(3, rank)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies m, assumed at least pseudo-legal and sourced from a piece
// actually on m.From, and returns the token needed to reverse it exactly.
func (b *Board) MakeMove(m Move) UnmakeToken {
	movedOcc, ok := b.Pieces.At(m.From).Get()
	if !ok {
		panic("board: MakeMove source square is empty")
	}
	mover := movedOcc.Color()
	movedKind := movedOcc.Kind()

	token := UnmakeToken{
		Move:           m,
		MovedColor:     mover,
		MovedKind:      movedKind,
		PriorEnPassant: b.EnPassant,
		PriorCastling:  b.Castling,
		PriorHalfmove:  b.HalfmoveClock,
		PriorHash:      b.Hash,
	}

	h := b.Hash
	if b.EnPassant.Valid() {
		pusher := mover.Other()
		landing := square.New(b.EnPassant.File(), b.EnPassant.Rank()+pusher.Forward())
		if b.enemyPawnAdjacent(pusher, landing) {
			h = zobrist.ToggleEnPassant(h, b.EnPassant.File())
		}
	}

	dFile := m.To.File() - m.From.File()
	dRank := m.To.Rank() - m.From.Rank()

	destOcc, destHasPiece := b.Pieces.At(m.To).Get()

	isEnPassant := movedKind == piece.Pawn && !destHasPiece && dFile != 0 && m.To == b.EnPassant
	isCastling := movedKind == piece.King && abs(dFile) == 2
	isDoublePush := movedKind == piece.Pawn && abs(dRank) == 2

	switch {
	case isEnPassant:
		token.HasCaptured = true
		token.Captured = piece.Pawn
		capSq := square.New(m.To.File(), m.From.Rank())
		token.CaptureSquare = capSq

		h = b.Pieces.Set(h, m.From, Empty)
		h = b.Pieces.Set(h, capSq, Empty)
		h = b.Pieces.Set(h, m.To, Occupied(movedOcc))

	case m.Promotes:
		if destHasPiece {
			token.HasCaptured = true
			token.Captured = destOcc.Kind()
			token.CaptureSquare = m.To
		}
		h = b.Pieces.Set(h, m.From, Empty)
		h = b.Pieces.Set(h, m.To, Occupied(piece.New(mover, m.Promotion)))

	case isCastling:
		kingside := dFile > 0
		rookFrom := b.castlingRookHome(mover, kingside)
		rookTo := b.castlingRookDestination(mover, kingside)

		h = b.Pieces.Set(h, m.From, Empty)
		h = b.Pieces.Set(h, m.To, Occupied(movedOcc))
		h = b.Pieces.Set(h, rookFrom, Empty)
		h = b.Pieces.Set(h, rookTo, Occupied(piece.New(mover, piece.Rook)))

	default:
		if destHasPiece {
			token.HasCaptured = true
			token.Captured = destOcc.Kind()
			token.CaptureSquare = m.To
		}
		h = b.Pieces.Set(h, m.From, Empty)
		h = b.Pieces.Set(h, m.To, Occupied(movedOcc))
	}

	priorCastling := b.Castling
	newCastling := priorCastling
	switch {
	case isCastling:
		if mover == piece.White {
			newCastling &^= WhiteKingside | WhiteQueenside
		} else {
			newCastling &^= BlackKingside | BlackQueenside
		}
	case movedKind == piece.King:
		if mover == piece.White {
			newCastling &^= WhiteKingside | WhiteQueenside
		} else {
			newCastling &^= BlackKingside | BlackQueenside
		}
	case movedKind == piece.Rook:
		switch m.From {
		case square.A1:
			newCastling &^= WhiteQueenside
		case square.H1:
			newCastling &^= WhiteKingside
		case square.A8:
			newCastling &^= BlackQueenside
		case square.H8:
			newCastling &^= BlackKingside
		}
	}
	if token.HasCaptured {
		switch token.CaptureSquare {
		case square.A1:
			newCastling &^= WhiteQueenside
		case square.H1:
			newCastling &^= WhiteKingside
		case square.A8:
			newCastling &^= BlackQueenside
		case square.H8:
			newCastling &^= BlackKingside
		}
	}
	if newCastling != priorCastling {
		h = zobrist.ToggleCastling(h, uint8(priorCastling))
		h = zobrist.ToggleCastling(h, uint8(newCastling))
	}
	b.Castling = newCastling

	b.EnPassant = square.None
	if isDoublePush {
		mid := square.New(m.To.File(), (m.From.Rank()+m.To.Rank())/2)
		if b.enemyPawnAdjacent(mover, m.To) {
			b.EnPassant = mid
			h = zobrist.ToggleEnPassant(h, mid.File())
		}
	}

	if token.HasCaptured || movedKind == piece.Pawn {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if mover == piece.Black {
		b.FullmoveNumber++
	}

	h = zobrist.ToggleSideToMove(h)
	b.SideToMove = mover.Other()
	b.Hash = h

	return token
}

// enemyPawnAdjacent reports whether an enemy pawn sits on a file adjacent to
// dest's file, on dest's rank, ready to capture en passant there — the
// condition under which the en-passant Zobrist key is actually toggled.
func (b *Board) enemyPawnAdjacent(mover piece.Color, dest square.Square) bool {
	enemyPawn := piece.New(mover.Other(), piece.Pawn)
	bb := b.Pieces.Bitboards[enemyPawn]
	rank := dest.Rank()
	for _, df := range [2]int{-1, 1} {
		sq := square.New(dest.File()+df, rank)
		if sq.Valid() && bb.Contains(sq) {
			return true
		}
	}
	return false
}

// UnmakeMove reverses the move captured by token, which must be the most
// recent call to MakeMove on b (strict LIFO).
func (b *Board) UnmakeMove(token UnmakeToken) {
	m := token.Move
	mover := token.MovedColor
	moved := piece.New(mover, token.MovedKind)

	isEnPassant := token.HasCaptured && token.CaptureSquare != m.To
	isCastling := token.MovedKind == piece.King && abs(m.To.File()-m.From.File()) == 2

	switch {
	case isEnPassant:
		b.Pieces.Set(0, m.To, Empty)
		b.Pieces.Set(0, m.From, Occupied(moved))
		b.Pieces.Set(0, token.CaptureSquare, Occupied(piece.New(mover.Other(), piece.Pawn)))

	case m.Promotes:
		b.Pieces.Set(0, m.To, Empty)
		b.Pieces.Set(0, m.From, Occupied(moved))
		if token.HasCaptured {
			b.Pieces.Set(0, m.To, Occupied(piece.New(mover.Other(), token.Captured)))
		}

	case isCastling:
		kingside := m.To.File()-m.From.File() > 0
		rookFrom := b.castlingRookHome(mover, kingside)
		rookTo := b.castlingRookDestination(mover, kingside)

		b.Pieces.Set(0, m.To, Empty)
		b.Pieces.Set(0, m.From, Occupied(moved))
		b.Pieces.Set(0, rookTo, Empty)
		b.Pieces.Set(0, rookFrom, Occupied(piece.New(mover, piece.Rook)))

	default:
		b.Pieces.Set(0, m.To, Empty)
		b.Pieces.Set(0, m.From, Occupied(moved))
		if token.HasCaptured {
			b.Pieces.Set(0, m.To, Occupied(piece.New(mover.Other(), token.Captured)))
		}
	}

	b.SideToMove = mover
	b.EnPassant = token.PriorEnPassant
	b.Castling = token.PriorCastling
	b.HalfmoveClock = token.PriorHalfmove
	if mover == piece.Black {
		b.FullmoveNumber--
	}
	b.Hash = token.PriorHash
}

// String renders the board as its FEN string.
func (b *Board) String() string {
	s, err := b.FEN()
	if err != nil {
		return fmt.Sprintf("<invalid board: %v>", err)
	}
	return s
}
