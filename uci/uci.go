// Package uci adapts the engine core to the Universal Chess Interface text
// protocol: a line-oriented stdin/stdout loop dispatching uci/isready/
// ucinewgame/position/go/stop/quit. Logging, option parsing, and worker
// lifecycle are entirely this package's concern — board, movegen, and
// search take no logger and emit no log calls.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"

	"github.com/wyvernchess/wyvern/board"
	"github.com/wyvernchess/wyvern/game"
	"github.com/wyvernchess/wyvern/internal/config"
	"github.com/wyvernchess/wyvern/search"
)

// Engine holds the protocol-adapter state: the current game, the shared
// transposition cache, and the in-flight search worker.
type Engine struct {
	cfg   config.Config
	game  *game.Game
	cache *search.Cache

	stop  atomic.Bool
	group errgroup.Group
}

// New builds an Engine from cfg, starting from the standard position.
func New(cfg config.Config) *Engine {
	return &Engine{
		cfg:   cfg,
		game:  game.New(),
		cache: search.NewCache(cfg.CacheBytes),
	}
}

// Run reads UCI commands from in and writes responses to out until "quit" is
// received or in is exhausted. It blocks until any in-flight search worker
// has wound down, so no goroutine outlives the call.
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "uci":
			e.handleUCI(out)
		case line == "isready":
			fmt.Fprintln(out, "readyok")
		case line == "ucinewgame":
			e.handleNewGame(ctx)
		case strings.HasPrefix(line, "setoption"):
			logw.Infof(ctx, "ignoring option: %v", line)
		case strings.HasPrefix(line, "position"):
			e.handlePosition(ctx, line)
		case strings.HasPrefix(line, "go"):
			e.handleGo(ctx, out, line)
		case line == "stop":
			e.stop.Store(true)
		case line == "quit":
			e.stop.Store(true)
			_ = e.group.Wait()
			logw.Infof(ctx, "quit")
			return nil
		default:
			logw.Warnf(ctx, "unrecognized command: %q", line)
		}
	}
	_ = e.group.Wait()
	return scanner.Err()
}

func (e *Engine) handleUCI(out io.Writer) {
	fmt.Fprintf(out, "id name %s\n", e.cfg.EngineName)
	fmt.Fprintf(out, "id author %s\n", e.cfg.Author)
	fmt.Fprintln(out, "uciok")
}

func (e *Engine) handleNewGame(ctx context.Context) {
	e.cache.Reset()
	e.game = game.New()
	logw.Infof(ctx, "new game")
}

// handlePosition parses "position [startpos | fen <6 fields>] [moves ...]"
// and replaces the current game with the resulting one.
func (e *Engine) handlePosition(ctx context.Context, line string) {
	args := strings.TrimSpace(strings.TrimPrefix(line, "position"))

	var b *board.Board
	var rest string
	switch {
	case strings.HasPrefix(args, "startpos"):
		b = board.Start()
		rest = strings.TrimSpace(strings.TrimPrefix(args, "startpos"))
	case strings.HasPrefix(args, "fen"):
		fields := strings.Fields(strings.TrimPrefix(args, "fen"))
		if len(fields) < 6 {
			logw.Warnf(ctx, "malformed fen in position command: %q", line)
			return
		}
		parsed, err := board.ParseFEN(strings.Join(fields[:6], " "))
		if err != nil {
			logw.Errorf(ctx, "invalid fen in position command: %v", err)
			return
		}
		b = parsed
		rest = strings.Join(fields[6:], " ")
	default:
		logw.Warnf(ctx, "malformed position command: %q", line)
		return
	}

	e.game = game.FromBoard(b)

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "moves") {
		for _, token := range strings.Fields(strings.TrimPrefix(rest, "moves")) {
			m, ok := board.ParseUCIMove(token)
			if !ok {
				logw.Warnf(ctx, "malformed move %q, stopping replay", token)
				break
			}
			if !e.game.IsLegal(m) {
				logw.Warnf(ctx, "illegal move %q, stopping replay", token)
				break
			}
			e.game.Push(m)
		}
	}
	logw.Infof(ctx, "position applied")
}

// handleGo parses an optional "depth N" argument and spawns the search
// worker. The worker itself polls the shared stop flag, so "stop" returns
// immediately; Run's group.Wait (on "quit" or at end of input) is what
// actually blocks until the worker notices and unwinds.
func (e *Engine) handleGo(ctx context.Context, out io.Writer, line string) {
	depth := e.cfg.DefaultDepth
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "depth" && i+1 < len(fields) {
			if d, err := strconv.Atoi(fields[i+1]); err == nil {
				depth = d
			}
		}
	}

	e.stop.Store(false)
	b := e.game.Board
	cache := e.cache

	logw.Infof(ctx, "search started: depth=%d", depth)
	e.group.Go(func() error {
		move, score := search.Search(b, cache, depth, e.stop.Load)
		fmt.Fprintf(out, "info depth %d score cp %d\n", depth, int(score*100))
		fmt.Fprintf(out, "bestmove %s\n", move.UCI())
		logw.Infof(ctx, "search stopped: bestmove=%s score=%.2f", move.UCI(), score)
		return nil
	})
}
