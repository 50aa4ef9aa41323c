package movegen

import (
	"github.com/wyvernchess/wyvern/attacks"
	"github.com/wyvernchess/wyvern/bitboard"
	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/piece"
	"github.com/wyvernchess/wyvern/square"
)

// context holds the per-position analysis shared by every move-generation
// step: occupancy, the king-danger mask, checkers, and pins.
type context struct {
	b *board.Board

	us, them piece.Color

	friendly, enemy, all bitboard.Bitboard
	kingSq               square.Square

	kingDanger   bitboard.Bitboard
	checkers     bitboard.Bitboard
	numCheckers  int
	inCheck      bool
	checkEvasion bitboard.Bitboard

	pinned bitboard.Bitboard
	pinRay [64]bitboard.Bitboard
}

func newContext(b *board.Board) *context {
	c := &context{
		b:  b,
		us: b.SideToMove,
	}
	c.them = c.us.Other()
	c.friendly = b.Pieces.Friendly(c.us)
	c.enemy = b.Pieces.Friendly(c.them)
	c.all = c.friendly.Union(c.enemy)
	c.kingSq = b.Pieces.KingSquare(c.us)

	c.kingDanger = c.attackersMask(c.them, c.all.WithRemoved(c.kingSq))
	c.checkers = c.checkersOf(c.kingSq)
	c.numCheckers = c.checkers.Len()
	c.inCheck = c.numCheckers > 0
	if c.numCheckers == 1 {
		c.checkEvasion = c.evasionSquares(c.kingSq, c.checkers)
	}

	c.computePins()
	return c
}

// attackersMask returns every square attacked by by's pieces, computed
// against occ (the caller may remove the friendly king from occ to avoid
// the king blocking its own escape-square calculation).
func (c *context) attackersMask(by piece.Color, occ bitboard.Bitboard) bitboard.Bitboard {
	ps := &c.b.Pieces
	var mask bitboard.Bitboard

	forEachSquare(ps.Bitboards[piece.New(by, piece.Pawn)], func(s square.Square) {
		mask = mask.Union(attacks.Pawn[by][s])
	})
	forEachSquare(ps.Bitboards[piece.New(by, piece.Knight)], func(s square.Square) {
		mask = mask.Union(attacks.Knight[s])
	})
	forEachSquare(ps.Bitboards[piece.New(by, piece.Bishop)], func(s square.Square) {
		mask = mask.Union(attacks.Bishop(s, occ))
	})
	forEachSquare(ps.Bitboards[piece.New(by, piece.Rook)], func(s square.Square) {
		mask = mask.Union(attacks.Rook(s, occ))
	})
	forEachSquare(ps.Bitboards[piece.New(by, piece.Queen)], func(s square.Square) {
		mask = mask.Union(attacks.Queen(s, occ))
	})
	forEachSquare(ps.Bitboards[piece.New(by, piece.King)], func(s square.Square) {
		mask = mask.Union(attacks.King[s])
	})
	return mask
}

// checkersOf returns the enemy pieces currently attacking kingSq.
func (c *context) checkersOf(kingSq square.Square) bitboard.Bitboard {
	ps := &c.b.Pieces
	var checkers bitboard.Bitboard

	checkers = checkers.Union(attacks.Pawn[c.us][kingSq].Intersection(ps.Bitboards[piece.New(c.them, piece.Pawn)]))
	checkers = checkers.Union(attacks.Knight[kingSq].Intersection(ps.Bitboards[piece.New(c.them, piece.Knight)]))
	bishopAttackers := ps.Bitboards[piece.New(c.them, piece.Bishop)].Union(ps.Bitboards[piece.New(c.them, piece.Queen)])
	checkers = checkers.Union(attacks.Bishop(kingSq, c.all).Intersection(bishopAttackers))
	rookAttackers := ps.Bitboards[piece.New(c.them, piece.Rook)].Union(ps.Bitboards[piece.New(c.them, piece.Queen)])
	checkers = checkers.Union(attacks.Rook(kingSq, c.all).Intersection(rookAttackers))
	return checkers
}

// evasionSquares returns the checker's square plus, if the checker is a
// slider, every square strictly between it and the king — the complete set
// of destinations that resolve a single check.
func (c *context) evasionSquares(kingSq square.Square, checkers bitboard.Bitboard) bitboard.Bitboard {
	checkerSq := checkers.LSB()
	occ, _ := c.b.Pieces.At(checkerSq).Get()
	evasion := bitboard.Empty.WithInserted(checkerSq)

	if occ.Kind() != piece.Bishop && occ.Kind() != piece.Rook && occ.Kind() != piece.Queen {
		return evasion
	}
	df := sign(checkerSq.File() - kingSq.File())
	dr := sign(checkerSq.Rank() - kingSq.Rank())
	for cur := kingSq.Offset(df, dr); cur.Valid() && cur != checkerSq; cur = cur.Offset(df, dr) {
		evasion = evasion.WithInserted(cur)
	}
	return evasion
}

// computePins implements the "king as phantom slider" trick: an enemy
// slider whose unobstructed mask reaches the king has its real,
// occupancy-aware attack set OR'd into an accumulator; intersecting the
// king's own real attack set against that accumulator isolates exactly the
// squares that are simultaneously the first blocker seen from both ends —
// i.e. the pinned piece, when there is exactly one blocker on the line.
func (c *context) computePins() {
	ps := &c.b.Pieces
	var orthoAcc, diagAcc bitboard.Bitboard

	rookLike := ps.Bitboards[piece.New(c.them, piece.Rook)].Union(ps.Bitboards[piece.New(c.them, piece.Queen)])
	forEachSquare(rookLike, func(s square.Square) {
		if attacks.Rook(s, bitboard.Empty).Contains(c.kingSq) {
			orthoAcc = orthoAcc.Union(attacks.Rook(s, c.all))
		}
	})
	bishopLike := ps.Bitboards[piece.New(c.them, piece.Bishop)].Union(ps.Bitboards[piece.New(c.them, piece.Queen)])
	forEachSquare(bishopLike, func(s square.Square) {
		if attacks.Bishop(s, bitboard.Empty).Contains(c.kingSq) {
			diagAcc = diagAcc.Union(attacks.Bishop(s, c.all))
		}
	})

	pinned := attacks.Rook(c.kingSq, c.all).Intersection(orthoAcc)
	pinned = pinned.Union(attacks.Bishop(c.kingSq, c.all).Intersection(diagAcc))
	pinned = pinned.Intersection(c.friendly)

	c.pinned = pinned
	forEachSquare(pinned, func(s square.Square) {
		c.pinRay[s] = lineThrough(c.kingSq, s)
	})
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// lineThrough returns every square on the infinite rank/file/diagonal line
// through a and b, extended to both board edges, including a itself.
func lineThrough(a, b square.Square) bitboard.Bitboard {
	df := sign(b.File() - a.File())
	dr := sign(b.Rank() - a.Rank())
	line := bitboard.Empty.WithInserted(a)
	for _, mult := range [2]int{1, -1} {
		for cur := a.Offset(df*mult, dr*mult); cur.Valid(); cur = cur.Offset(df*mult, dr*mult) {
			line = line.WithInserted(cur)
		}
	}
	return line
}

// enPassantLegal implements the horizontal-pin special case: capturing en
// passant removes both the capturing and captured pawn from the rank
// simultaneously, which can expose the king to a rook or queen on that rank
// even though neither pawn is individually pinned.
func (c *context) enPassantLegal(capSq, dst square.Square) bool {
	capturedSq := square.New(dst.File(), capSq.Rank())
	if c.kingSq.Rank() != capSq.Rank() {
		return true
	}
	dir := 1
	if capSq.File() < c.kingSq.File() {
		dir = -1
	}
	for cur := c.kingSq.Offset(dir, 0); cur.Valid(); cur = cur.Offset(dir, 0) {
		if cur == capSq || cur == capturedSq {
			continue
		}
		occ, ok := c.b.Pieces.At(cur).Get()
		if !ok {
			continue
		}
		if occ.Color() == c.them && (occ.Kind() == piece.Rook || occ.Kind() == piece.Queen) {
			return false
		}
		return true
	}
	return true
}
