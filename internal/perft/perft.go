// Package perft counts the leaf nodes of the legal-move tree rooted at
// a position — the standard correctness oracle for a move generator —
// and exposes a per-move breakdown ("divide") for diagnosing which root
// move's subtree disagrees with a known-good count.
package perft

import (
	"github.com/lucasmendes/chesscore/internal/board"
	"github.com/lucasmendes/chesscore/internal/logging"
)

var log = logging.GetLog()

// Perft counts the leaf nodes reachable from b after exactly depth
// plies, by exhaustively applying every legal move. A nil or disabled
// cache degrades Perft to the plain recursive tree-walk; Perft's result
// never depends on whether a cache is present.
func Perft(b board.Board, depth int, cache *Cache) int64 {
	if depth == 0 {
		return 1
	}

	if cache != nil {
		if n, ok := cache.Get(b, depth); ok {
			return n
		}
	}

	moves := board.LegalMoves(b)
	var nodes int64
	if depth == 1 {
		nodes = int64(len(moves))
	} else {
		for _, m := range moves {
			nodes += Perft(board.ApplyMove(b, m), depth-1, cache)
		}
	}

	if cache != nil {
		cache.Put(b, depth, nodes)
	}

	return nodes
}

// Divide breaks perft's count down by root move: for each legal move
// from b, the subtree node count after playing it to depth-1. This is
// the standard way to localize a perft mismatch to a single root move
// instead of re-deriving the whole tree by hand.
func Divide(b board.Board, depth int, cache *Cache) map[string]int64 {
	result := make(map[string]int64)
	if depth < 1 {
		log.Warningf("divide called with depth %d, nothing to divide", depth)
		return result
	}
	for _, m := range board.LegalMoves(b) {
		result[m.UCI()] = Perft(board.ApplyMove(b, m), depth-1, cache)
	}
	return result
}
