package game

import (
	"strings"

	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/piece"
)

var pieceLetters = [6]byte{0, 'N', 'B', 'R', 'Q', 'K'}

// formatSAN encodes m to its Standard Algebraic Notation. The check and
// checkmate suffixes are appended by the caller once the move has actually
// been played and the resulting position is known.
func formatSAN(b *board.Board, legalMoves []board.Move, m board.Move, moved piece.Piece, isCapture bool) string {
	if moved.Kind() == piece.King && abs(int(m.From)-int(m.To)) == 2 {
		if m.To.File() < m.From.File() {
			return "O-O-O"
		}
		return "O-O"
	}

	var sb strings.Builder
	sb.Grow(6)

	if moved.Kind() != piece.Pawn {
		sb.WriteByte(pieceLetters[moved.Kind()])
		if letter, ok := disambiguation(b, legalMoves, m, moved); ok {
			sb.WriteByte(letter)
		}
	}

	if isCapture {
		if moved.Kind() == piece.Pawn {
			sb.WriteByte("abcdefgh"[m.From.File()])
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if m.Promotes {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.Promotion])
	}

	return sb.String()
}

// disambiguation returns the file or rank letter needed to distinguish m
// from another legal move of the same piece kind to the same destination,
// following the standard file-first, then rank, precedence.
func disambiguation(b *board.Board, legalMoves []board.Move, m board.Move, moved piece.Piece) (byte, bool) {
	var sameFile, sameRank bool
	found := false
	for _, lm := range legalMoves {
		if lm.To != m.To || lm.From == m.From {
			continue
		}
		other, ok := b.Pieces.At(lm.From).Get()
		if !ok || other != moved {
			continue
		}
		found = true
		if lm.From.File() == m.From.File() {
			sameFile = true
		}
		if lm.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !found {
		return 0, false
	}
	if !sameFile {
		return "abcdefgh"[m.From.File()], true
	}
	if !sameRank {
		return "12345678"[m.From.Rank()], true
	}
	return "abcdefgh"[m.From.File()], true
}
