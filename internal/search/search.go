package search

import (
	"sync/atomic"

	"github.com/shess-dev/shess/internal/shess"
)

// Result is the outcome of a finished or aborted search: the best move
// found (NoMove if none, e.g. the root was already terminal), its score
// from the root side-to-move's perspective, and how many nodes were
// visited.
type Result struct {
	Move  shess.Move
	Score int
	Nodes uint64
}

// Searcher runs the fixed-depth, unbounded negamax of §4.10: no
// alpha-beta pruning, no transposition table, just material score and
// mate distance. Deeper, faster search (alpha-beta, quiescence,
// iterative deepening with a transposition table) is out of scope here;
// internal/store's persisted hash->eval cache sits above this, keyed by
// root position, not consulted mid-search.
type Searcher struct {
	hasher *shess.Hasher

	nodes uint64
	stop  atomic.Bool
}

// NewSearcher builds a Searcher.
func NewSearcher(hasher *shess.Hasher) *Searcher {
	return &Searcher{hasher: hasher}
}

// Stop requests that an in-progress Search return as soon as possible.
func (s *Searcher) Stop() {
	s.stop.Store(true)
}

// Nodes returns the number of nodes visited by the most recent Search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search finds the best move for the position's side to move, searching
// depth plies, given hash (the position's current Zobrist hash) and
// history (its game's repetition chain, for draw detection).
func (s *Searcher) Search(b shess.BitBoard, hash shess.HashResult, history *shess.History, depth int) Result {
	s.nodes = 0
	s.stop.Store(false)

	moves := b.GenerateMoves()
	end := shess.Determine(&b, moves, history, hash)
	if end.IsOver() {
		return Result{Move: shess.NoMove, Score: terminalScore(end, 0), Nodes: s.nodes}
	}

	bestMove := moves[0]
	bestScore := -Infinity

	for _, m := range moves {
		child := b.Apply(m)
		childHash := s.hasher.Delta(&b.Metadata, hash, m)
		childHistory := history.Push(childHash)

		score := -s.negamax(child, childHash, childHistory, depth-1, 1)
		if s.stop.Load() {
			break
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}

	return Result{Move: bestMove, Score: bestScore, Nodes: s.nodes}
}

// negamax returns the score of b, ply half-moves below the search root,
// from b's side to move's perspective (§4.10's minimax skeleton: no
// pruning, every legal move at every depth is explored).
func (s *Searcher) negamax(b shess.BitBoard, hash shess.HashResult, history *shess.History, depth, ply int) int {
	s.nodes++
	if s.nodes&4095 == 0 && s.stop.Load() {
		return 0
	}

	moves := b.GenerateMoves()
	end := shess.Determine(&b, moves, history, hash)
	if end.IsOver() {
		return terminalScore(end, ply)
	}

	if depth <= 0 {
		return StaticEval(&b)
	}

	best := -Infinity
	for _, m := range moves {
		child := b.Apply(m)
		childHash := s.hasher.Delta(&b.Metadata, hash, m)
		childHistory := history.Push(childHash)

		score := -s.negamax(child, childHash, childHistory, depth-1, ply+1)
		if score > best {
			best = score
		}
	}

	return best
}

// terminalScore converts a GameEnd at the given ply into a score from
// the side-to-move's perspective: Determine only ever reports Checkmate
// against the side to move (it has no legal moves and is in check), so
// the mated side always sees a negative score -- closer mates (smaller
// ply) score more negative, so the search prefers the fastest mate.
func terminalScore(end shess.GameEnd, ply int) int {
	if end.Reason != shess.Checkmate {
		return 0
	}
	return -Mate + ply
}
