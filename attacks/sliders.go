package attacks

import (
	"github.com/wyvernchess/wyvern/bitboard"
	"github.com/wyvernchess/wyvern/square"
)

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// bishopRelevant and rookRelevant are the relevant-occupancy masks: the
// squares along each ray excluding the board edge, since a blocker on the
// edge can never be "jumped" and so never changes the attack set.
var bishopRelevant [64]bitboard.Bitboard
var rookRelevant [64]bitboard.Bitboard

// bishopTable and rookTable are the magic-hashed attack tables, one slice
// per square, sized to that square's relevant-bit count.
var bishopTable [64][]bitboard.Bitboard
var rookTable [64][]bitboard.Bitboard

func init() {
	for i := 0; i < 64; i++ {
		s := square.Square(i)
		bishopRelevant[i] = relevantMask(s, bishopDirs)
		rookRelevant[i] = relevantMask(s, rookDirs)
	}

	for i := 0; i < 64; i++ {
		s := square.Square(i)
		buildTable(s, bishopDirs, bishopRelevant[i], bishopRelevantBits[i], bishopMagics[i], &bishopTable[i])
		buildTable(s, rookDirs, rookRelevant[i], rookRelevantBits[i], rookMagics[i], &rookTable[i])
	}
}

func buildTable(s square.Square, dirs [4][2]int, relevant bitboard.Bitboard, bits int, magic uint64, table *[]bitboard.Bitboard) {
	size := 1 << bits
	*table = make([]bitboard.Bitboard, size)
	for subset := 0; subset < size; subset++ {
		occ := occupancySubset(subset, relevant)
		key := (uint64(occ) * magic) >> (64 - bits)
		attack := rayAttacks(s, dirs, occ)
		if prev := (*table)[key]; !prev.IsEmpty() && prev != attack {
			panic("attacks: magic number collision for square " + s.String())
		}
		(*table)[key] = attack
	}
}

// relevantMask walks each ray from s, stopping one square short of the
// board edge.
func relevantMask(s square.Square, dirs [4][2]int) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, d := range dirs {
		cur := s
		for {
			next := cur.Offset(d[0], d[1])
			if !next.Valid() {
				break
			}
			if !next.Offset(d[0], d[1]).Valid() {
				break
			}
			bb = bb.WithInserted(next)
			cur = next
		}
	}
	return bb
}

// rayAttacks walks each ray from s until it falls off the board or hits a
// square set in occ, including that blocking square in the result.
func rayAttacks(s square.Square, dirs [4][2]int, occ bitboard.Bitboard) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, d := range dirs {
		cur := s
		for {
			next := cur.Offset(d[0], d[1])
			if !next.Valid() {
				break
			}
			bb = bb.WithInserted(next)
			if occ.Contains(next) {
				break
			}
			cur = next
		}
	}
	return bb
}

// occupancySubset maps an index in [0, 2^popcount(mask)) to the
// corresponding subset of mask's bits, lowest bit of mask first.
func occupancySubset(index int, mask bitboard.Bitboard) bitboard.Bitboard {
	var occ bitboard.Bitboard
	bit := 0
	for rest := mask; !rest.IsEmpty(); bit++ {
		var s square.Square
		s, rest = rest.PopLSB()
		if index&(1<<uint(bit)) != 0 {
			occ = occ.WithInserted(s)
		}
	}
	return occ
}

// Bishop returns the bishop attack set from s given board occupancy occ.
func Bishop(s square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	relevant := occ.Intersection(bishopRelevant[s])
	bits := bishopRelevantBits[s]
	key := (uint64(relevant) * bishopMagics[s]) >> (64 - bits)
	return bishopTable[s][key]
}

// Rook returns the rook attack set from s given board occupancy occ.
func Rook(s square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	relevant := occ.Intersection(rookRelevant[s])
	bits := rookRelevantBits[s]
	key := (uint64(relevant) * rookMagics[s]) >> (64 - bits)
	return rookTable[s][key]
}

// Queen returns the queen attack set from s: the union of the rook and
// bishop attack sets.
func Queen(s square.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	return Bishop(s, occ).Union(Rook(s, occ))
}

// RookRelevantMask returns s's relevant-occupancy mask for a rook: the file
// and rank through s, excluding the far edge square of each ray.
func RookRelevantMask(s square.Square) bitboard.Bitboard { return rookRelevant[s] }

// BishopRelevantMask returns s's relevant-occupancy mask for a bishop: the
// two diagonals through s, excluding the far edge square of each ray.
func BishopRelevantMask(s square.Square) bitboard.Bitboard { return bishopRelevant[s] }
