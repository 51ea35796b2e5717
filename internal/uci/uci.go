// Package uci implements a line-synchronous Universal Chess Interface
// driver over the core's position/move-generation API. It carries no
// search of its own: "go" replies with the first legal move (or 0000),
// since this module's scope is position representation and legal move
// generation, not play strength.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lucasmendes/chesscore/internal/board"
	"github.com/lucasmendes/chesscore/internal/logging"
	"github.com/lucasmendes/chesscore/internal/perft"
)

var log = logging.GetLog()

// UCI holds the driver's session state: the current position and an
// optional perft memoization cache.
type UCI struct {
	position  board.Board
	perftHash string // Hash setoption value, in MB; informational only
	cache     *perft.Cache
}

// New creates a UCI driver at the starting position with no perft cache.
func New() *UCI {
	return &UCI{position: board.StartingPosition()}
}

// NewWithCache creates a UCI driver that memoizes perft/divide subtree
// counts in cache (which may be nil).
func NewWithCache(cache *perft.Cache) *UCI {
	return &UCI{position: board.StartingPosition(), cache: cache}
}

// Run reads commands from stdin until "quit" or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// No search is ever in flight; nothing to stop.
		case "quit":
			return
		case "setoption":
			u.handleSetOption(args)
		case "d":
			fmt.Println(u.position.ToFEN())
		case "perft":
			u.handlePerft(args)
		case "divide":
			u.handleDivide(args)
		default:
			log.Warningf("unknown uci command: %q", cmd)
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name chesscore")
	fmt.Println("id author chesscore contributors")
	fmt.Println()
	fmt.Println("option name Hash type spin default 64 min 0 max 4096")
	fmt.Println("option name LogLevel type string default info")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.position = board.StartingPosition()
}

// handlePosition parses:
//
//	position startpos [moves ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int

	switch args[0] {
	case "startpos":
		u.position = board.StartingPosition()
		moveStart = len(args)
		for i, a := range args {
			if a == "moves" {
				moveStart = i + 1
				break
			}
		}
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		b, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			log.Errorf("position fen: %v", err)
			return
		}
		u.position = b
		moveStart = fenEnd
		if moveStart < len(args) && args[moveStart] == "moves" {
			moveStart++
		} else {
			moveStart = len(args)
		}
	default:
		return
	}

	for _, moveText := range args[moveStart:] {
		next, err := board.ApplyMoveFromUCI(u.position, moveText)
		if err != nil {
			log.Errorf("position: rejected move %q: %v", moveText, err)
			return
		}
		u.position = next
	}
}

// handleGo replies with the first move LegalMoves returns, ignoring
// every search-shaping argument — there is no search to shape.
func (u *UCI) handleGo(args []string) {
	_ = args
	moves := board.LegalMoves(u.position)
	if len(moves) == 0 {
		fmt.Println("bestmove 0000")
		return
	}
	fmt.Printf("bestmove %s\n", moves[0].UCI())
}

func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName, readingValue := false, false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName, readingValue = true, false
		case "value":
			readingName, readingValue = false, true
		default:
			if readingName {
				name = appendToken(name, arg)
			} else if readingValue {
				value = appendToken(value, arg)
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		u.perftHash = value
	case "loglevel":
		level, err := logging.ParseLevel(value)
		if err != nil {
			log.Warningf("setoption: ignoring unrecognized LogLevel %q: %v", value, err)
			return
		}
		logging.SetLevel(level)
	default:
		log.Infof("setoption: ignoring unsupported option %q", name)
	}
}

func appendToken(s, tok string) string {
	if s == "" {
		return tok
	}
	return s + " " + tok
}

func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	start := time.Now()
	nodes := perft.Perft(u.position, depth, u.cache)
	elapsed := time.Since(start)

	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/elapsed.Seconds())
	}
}

func (u *UCI) handleDivide(args []string) {
	depth := 1
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	breakdown := perft.Divide(u.position, depth, u.cache)
	var total int64
	for uciMove, n := range breakdown {
		fmt.Printf("%s: %d\n", uciMove, n)
		total += n
	}
	fmt.Printf("Total: %d\n", total)
}
