// Package search implements alpha-beta negamax over the legal move
// generator, backed by a bounded transposition cache and pollable for
// cooperative cancellation mid-search.
package search

import (
	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/eval"
	"github.com/wyvernchess/wyvern/movegen"
	"github.com/wyvernchess/wyvern/piece"
)

// PosInf and NegInf bound the score range; no real position evaluates
// outside them, so they double as sentinels for "found a proven win/loss".
const (
	PosInf float32 = 1_000_000
	NegInf float32 = -PosInf
)

const (
	mateBase = 900_000
	mateUnit = 1_000
)

// MateScore returns the score assigned to a position with no legal moves
// while in check, scaled so that a mate discovered with more depth
// remaining — i.e. reachable in fewer plies from the search root — is
// judged worse than one found deeper in the tree.
func MateScore(depthRemaining int) float32 {
	return -(mateBase + float32(depthRemaining)*mateUnit)
}

// StopFunc is polled between sibling moves; once it reports true, the
// search abandons the remaining siblings at every level and unwinds with
// whatever best score it already has.
type StopFunc func() bool

// Negamax evaluates b to depthRemaining plies from the side to move's
// perspective, consulting and populating cache, and returns the moment
// stopFn reports true.
func Negamax(b *board.Board, cache *Cache, depthRemaining int, prune float32, stopFn StopFunc) float32 {
	if depthRemaining == 0 {
		return eval.Evaluate(b)
	}

	if depth, whiteScore, ok := cache.Get(b.Hash); ok && depth >= depthRemaining {
		if b.SideToMove == piece.Black {
			return -whiteScore
		}
		return whiteScore
	}

	moves, inCheck := movegen.GenerateDetailed(b)
	if len(moves) == 0 {
		if inCheck {
			return MateScore(depthRemaining)
		}
		return 0
	}

	best := evalMove(b, cache, moves[0], depthRemaining, prune, stopFn)
	for _, m := range moves[1:] {
		if stopFn() {
			break
		}
		val := evalMove(b, cache, m, depthRemaining, best, stopFn)
		if val >= PosInf {
			best = val
			break
		}
		if val > -prune {
			best = val
			break
		}
		if val > best {
			best = val
		}
	}

	whiteScore := best
	if b.SideToMove == piece.Black {
		whiteScore = -whiteScore
	}
	cache.Put(b.Hash, depthRemaining, whiteScore)

	return best
}

// evalMove plays m on b, recurses one ply shallower, and restores b before
// returning the negated child score.
func evalMove(b *board.Board, cache *Cache, m board.Move, depthRemaining int, prune float32, stopFn StopFunc) float32 {
	token := b.MakeMove(m)
	val := -Negamax(b, cache, depthRemaining-1, prune, stopFn)
	b.UnmakeMove(token)
	return val
}

// Search runs Negamax at depth from every legal root move and returns the
// one with the highest refutation score. The zero Move is returned if b has
// no legal moves.
func Search(b *board.Board, cache *Cache, depth int, stopFn StopFunc) (board.Move, float32) {
	moves, _ := movegen.GenerateDetailed(b)
	if len(moves) == 0 {
		return board.Move{}, 0
	}

	bestMove := moves[0]
	best := evalMove(b, cache, moves[0], depth, NegInf, stopFn)
	for _, m := range moves[1:] {
		if stopFn() {
			break
		}
		val := evalMove(b, cache, m, depth, best, stopFn)
		if val > best {
			best = val
			bestMove = m
		}
	}
	return bestMove, best
}
