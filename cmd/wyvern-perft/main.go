// Command wyvern-perft walks the legal move generation tree to a fixed
// depth and counts leaf nodes (perft), optionally breaking the root move's
// subtree counts out individually ("divide") for comparing against a
// reference engine when a discrepancy needs to be isolated.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/boardtext"
	"github.com/wyvernchess/wyvern/movegen"
)

// perft walks b's legal move tree to depth and returns the leaf count.
func perft(b *board.Board, depth int) int {
	moves := movegen.Generate(b)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		token := b.MakeMove(m)
		nodes += perft(b, depth-1)
		b.UnmakeMove(token)
	}
	return nodes
}

// divide prints, for each legal root move, the leaf count of its subtree at
// depth-1, then returns the total.
func divide(b *board.Board, depth int) int {
	moves := movegen.Generate(b)
	total := 0
	for _, m := range moves {
		token := b.MakeMove(m)
		var cnt int
		if depth == 1 {
			cnt = 1
		} else {
			cnt = perft(b, depth-1)
		}
		b.UnmakeMove(token)
		fmt.Printf("%s: %d\n", m.UCI(), cnt)
		total += cnt
	}
	return total
}

func main() {
	depth := flag.Int("depth", 1, "perft depth")
	verbose := flag.Bool("verbose", false, "divide: print per-root-move subtree counts")
	fenFlag := flag.String("fen", "", "FEN to start from (default: the standard opening position)")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	flag.Parse()

	var b *board.Board
	if *fenFlag == "" {
		b = board.Start()
	} else {
		parsed, err := board.ParseFEN(*fenFlag)
		if err != nil {
			log.Fatalf("invalid fen: %v", err)
		}
		b = parsed
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("create cpu profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()

	var nodes int
	if *verbose {
		fmt.Print(boardtext.Board(b))
		nodes = divide(b, *depth)
	} else {
		nodes = perft(b, *depth)
	}

	elapsed := time.Since(start)
	fmt.Printf("\ndepth %d: %d nodes in %s (%.0f nodes/sec)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
