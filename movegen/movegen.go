// Package movegen generates the complete, exact set of legal moves from a
// position: pseudo-legal generation per piece kind, restricted by checks,
// pins, and the special cases of castling and en passant (including the
// horizontal-pin case where an en-passant capture would expose the king
// along a rank).
package movegen

import (
	"github.com/wyvernchess/wyvern/attacks"
	"github.com/wyvernchess/wyvern/bitboard"
	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
)

// promotionKinds are emitted in this fixed order whenever a pawn move
// expands into promotion choices.
var promotionKinds = [4]piece.Kind{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

// Generate returns every legal move available to the side to move in b.
func Generate(b *board.Board) []board.Move {
	moves, _ := GenerateDetailed(b)
	return moves
}

// AppendTo generates every legal move for b's side to move and appends it
// to moves, which the caller is responsible for clearing first.
func AppendTo(b *board.Board, moves *[]board.Move) {
	c := newContext(b)
	c.genKingMoves(moves)
	if c.numCheckers >= 2 {
		return
	}
	c.genCastling(moves)
	c.genPawnMoves(moves)
	c.genPieceMoves(moves)
}

// GenerateDetailed is Generate plus whether the side to move is currently in
// check, computed as a side effect of the same analysis pass — used by the
// search to distinguish checkmate from stalemate without a second pass.
func GenerateDetailed(b *board.Board) (moves []board.Move, inCheck bool) {
	c := newContext(b)
	moves = make([]board.Move, 0, 48)
	c.genKingMoves(&moves)
	if c.numCheckers < 2 {
		c.genCastling(&moves)
		c.genPawnMoves(&moves)
		c.genPieceMoves(&moves)
	}
	return moves, c.inCheck
}

// InCheck reports whether b's side to move is currently in check.
func InCheck(b *board.Board) bool {
	c := newContext(b)
	return c.inCheck
}

func forEachSquare(bb bitboard.Bitboard, fn func(square.Square)) {
	for rest := bb; !rest.IsEmpty(); {
		var s square.Square
		s, rest = rest.PopLSB()
		fn(s)
	}
}

func (c *context) genKingMoves(moves *[]board.Move) {
	dests := attacks.King[c.kingSq].Difference(c.friendly).Difference(c.kingDanger)
	forEachSquare(dests, func(dst square.Square) {
		*moves = append(*moves, board.Move{From: c.kingSq, To: dst})
	})
}

func (c *context) genCastling(moves *[]board.Move) {
	if c.inCheck {
		return
	}
	rank := c.us.BackRank()
	if c.us == piece.White {
		if c.canCastleKingside(board.WhiteKingside) {
			*moves = append(*moves, board.Move{From: c.kingSq, To: square.New(6, rank)})
		}
		if c.canCastleQueenside(board.WhiteQueenside) {
			*moves = append(*moves, board.Move{From: c.kingSq, To: square.New(2, rank)})
		}
	} else {
		if c.canCastleKingside(board.BlackKingside) {
			*moves = append(*moves, board.Move{From: c.kingSq, To: square.New(6, rank)})
		}
		if c.canCastleQueenside(board.BlackQueenside) {
			*moves = append(*moves, board.Move{From: c.kingSq, To: square.New(2, rank)})
		}
	}
}

func (c *context) canCastleKingside(right board.CastlingRights) bool {
	if !c.b.Castling.Has(right) {
		return false
	}
	rank := c.us.BackRank()
	f := square.New(5, rank)
	g := square.New(6, rank)
	path := bitboard.Empty.WithInserted(f).WithInserted(g)
	return !c.all.Intersects(path) && !c.kingDanger.Intersects(path)
}

func (c *context) canCastleQueenside(right board.CastlingRights) bool {
	if !c.b.Castling.Has(right) {
		return false
	}
	rank := c.us.BackRank()
	b1 := square.New(1, rank)
	cc := square.New(2, rank)
	d := square.New(3, rank)
	emptyPath := bitboard.Empty.WithInserted(b1).WithInserted(cc).WithInserted(d)
	attackedPath := bitboard.Empty.WithInserted(cc).WithInserted(d)
	return !c.all.Intersects(emptyPath) && !c.kingDanger.Intersects(attackedPath)
}

func (c *context) genPawnMoves(moves *[]board.Move) {
	pawns := c.b.Pieces.Bitboards[piece.New(c.us, piece.Pawn)]
	forward := c.us.Forward()
	startRank := c.us.PawnStartRank()
	promoRank := c.us.PromotionRank()

	forEachSquare(pawns, func(s square.Square) {
		restrict := c.restrictionFor(s)

		one := s.Offset(0, forward)
		if one.Valid() && !c.all.Contains(one) {
			c.emitPawnDest(moves, s, one, restrict, promoRank)
			if s.Rank() == startRank {
				two := s.Offset(0, 2*forward)
				if two.Valid() && !c.all.Contains(two) {
					c.emitPawnDest(moves, s, two, restrict, promoRank)
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			dst := s.Offset(df, forward)
			if !dst.Valid() {
				continue
			}
			isEnPassant := dst == c.b.EnPassant
			if !c.enemy.Contains(dst) && !isEnPassant {
				continue
			}
			if isEnPassant && !c.enPassantLegal(s, dst) {
				continue
			}
			if restrict != bitboard.Full && !restrict.Contains(dst) {
				if !(isEnPassant && c.enPassantSatisfiesCheck(dst, restrict)) {
					continue
				}
			}
			c.emitPawnDest(moves, s, dst, bitboard.Full, promoRank)
		}
	})
}

// emitPawnDest appends the move (or four promotion moves) from s to dst,
// honoring restrict unless it's bitboard.Full (the pin/check destination
// filter for non-en-passant moves, which the caller has already applied for
// captures).
func (c *context) emitPawnDest(moves *[]board.Move, s, dst square.Square, restrict bitboard.Bitboard, promoRank int) {
	if restrict != bitboard.Full && !restrict.Contains(dst) {
		return
	}
	if dst.Rank() == promoRank {
		for _, k := range promotionKinds {
			*moves = append(*moves, board.Move{From: s, To: dst, Promotion: k, Promotes: true})
		}
		return
	}
	*moves = append(*moves, board.Move{From: s, To: dst})
}

// enPassantSatisfiesCheck reports whether capturing en passant to dst
// resolves the current check, i.e. the captured pawn's square is the lone
// checker.
func (c *context) enPassantSatisfiesCheck(dst square.Square, restrict bitboard.Bitboard) bool {
	capturedSq := square.New(dst.File(), dst.Offset(0, -c.us.Forward()).Rank())
	return restrict.Contains(capturedSq)
}

func (c *context) genPieceMoves(moves *[]board.Move) {
	for _, k := range [3]piece.Kind{piece.Knight, piece.Bishop, piece.Rook} {
		c.genSliderOrLeaperMoves(moves, k)
	}
	c.genSliderOrLeaperMoves(moves, piece.Queen)
}

func (c *context) genSliderOrLeaperMoves(moves *[]board.Move, k piece.Kind) {
	pieces := c.b.Pieces.Bitboards[piece.New(c.us, k)]
	forEachSquare(pieces, func(s square.Square) {
		var dests bitboard.Bitboard
		switch k {
		case piece.Knight:
			dests = attacks.Knight[s]
		case piece.Bishop:
			dests = attacks.Bishop(s, c.all)
		case piece.Rook:
			dests = attacks.Rook(s, c.all)
		case piece.Queen:
			dests = attacks.Queen(s, c.all)
		}
		dests = dests.Difference(c.friendly)

		restrict := c.restrictionFor(s)
		if restrict != bitboard.Full {
			dests = dests.Intersection(restrict)
		}
		forEachSquare(dests, func(dst square.Square) {
			*moves = append(*moves, board.Move{From: s, To: dst})
		})
	})
}

// restrictionFor returns the destination-bitboard restriction that applies
// to the piece on s: its pin line if pinned, the check-evasion squares if in
// check, their intersection if both, or bitboard.Full (no restriction)
// otherwise. Full, not Empty, is the "unrestricted" sentinel: when a piece is
// both pinned and in check with disjoint lines, the intersection is
// legitimately Empty — the piece has no legal destination at all — and that
// must stay distinguishable from "unrestricted" or callers would fall
// through to the piece's full pseudo-legal move set.
func (c *context) restrictionFor(s square.Square) bitboard.Bitboard {
	restrict := bitboard.Full
	pinned := c.pinned.Contains(s)
	if pinned {
		restrict = c.pinRay[s]
	}
	if c.inCheck {
		if pinned {
			restrict = restrict.Intersection(c.checkEvasion)
		} else {
			restrict = c.checkEvasion
		}
	}
	return restrict
}
