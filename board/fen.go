package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
	"github.com/wyvernchess/wyvern/zobrist"
)

// ParseFEN parses a standard six-field Forsyth-Edwards string into a Board.
// Any departure from the format produces a descriptive error and a nil
// Board.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: FEN %q: want 6 fields, got %d", fen, len(fields))
	}

	b := &Board{EnPassant: square.None}

	if err := parsePlacement(&b.Pieces, fields[0], &b.Hash); err != nil {
		return nil, fmt.Errorf("board: FEN %q: %w", fen, err)
	}

	switch fields[1] {
	case "w":
		b.SideToMove = piece.White
	case "b":
		b.SideToMove = piece.Black
		b.Hash = zobrist.ToggleSideToMove(b.Hash)
	default:
		return nil, fmt.Errorf("board: FEN %q: bad active color %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			var bit CastlingRights
			switch fields[2][i] {
			case 'K':
				bit = WhiteKingside
			case 'Q':
				bit = WhiteQueenside
			case 'k':
				bit = BlackKingside
			case 'q':
				bit = BlackQueenside
			default:
				return nil, fmt.Errorf("board: FEN %q: bad castling char %q", fen, fields[2][i])
			}
			b.Castling |= bit
		}
	}
	b.Hash = zobrist.ToggleCastling(b.Hash, uint8(b.Castling))

	if fields[3] != "-" {
		ep, ok := square.Parse(fields[3])
		if !ok {
			return nil, fmt.Errorf("board: FEN %q: bad en-passant square %q", fen, fields[3])
		}
		b.EnPassant = ep
		pusher := b.SideToMove.Other()
		landing := square.New(ep.File(), ep.Rank()+pusher.Forward())
		if b.enemyPawnAdjacent(pusher, landing) {
			b.Hash = zobrist.ToggleEnPassant(b.Hash, ep.File())
		}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: FEN %q: bad halfmove clock %q", fen, fields[4])
	}
	b.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: FEN %q: bad fullmove number %q", fen, fields[5])
	}
	b.FullmoveNumber = fullmove

	return b, nil
}

func parsePlacement(s *PieceStorage, placement string, hash *zobrist.Key) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement %q: want 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := piece.FromChar(c)
			if !ok {
				return fmt.Errorf("piece placement %q: bad character %q", placement, c)
			}
			if file > 7 {
				return fmt.Errorf("piece placement %q: rank %d overflows", placement, rank+1)
			}
			sq := square.New(file, rank)
			*hash = s.Set(*hash, sq, Occupied(p))
			file++
		}
		if file != 8 {
			return fmt.Errorf("piece placement %q: rank %d has %d files, want 8", placement, rank+1, file)
		}
	}
	return nil
}

// FEN serializes b into its canonical six-field Forsyth-Edwards string.
func (b *Board) FEN() (string, error) {
	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			occ, ok := b.Pieces.At(square.New(file, rank)).Get()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte('0' + byte(empty))
				empty = 0
			}
			out.WriteByte(occ.Char())
		}
		if empty > 0 {
			out.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}

	out.WriteByte(' ')
	out.WriteString(b.SideToMove.String())

	out.WriteByte(' ')
	if b.Castling == 0 {
		out.WriteByte('-')
	} else {
		if b.Castling.Has(WhiteKingside) {
			out.WriteByte('K')
		}
		if b.Castling.Has(WhiteQueenside) {
			out.WriteByte('Q')
		}
		if b.Castling.Has(BlackKingside) {
			out.WriteByte('k')
		}
		if b.Castling.Has(BlackQueenside) {
			out.WriteByte('q')
		}
	}

	out.WriteByte(' ')
	if b.EnPassant.Valid() {
		out.WriteString(b.EnPassant.String())
	} else {
		out.WriteByte('-')
	}

	fmt.Fprintf(&out, " %d %d", b.HalfmoveClock, b.FullmoveNumber)

	return out.String(), nil
}
