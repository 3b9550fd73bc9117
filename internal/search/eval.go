// Package search implements a plain negamax search (no alpha-beta
// pruning) over internal/shess positions (§4.10). Unlike a typical
// make/unmake engine, it never mutates a position in place --
// shess.BitBoard.Apply already returns a fresh value, so the search
// tree's nodes simply are distinct BitBoard values, while the persistent
// History chain shares its common prefix across branches.
package search

import "github.com/shess-dev/shess/internal/shess"

// Mate is the score magnitude assigned to a forced checkmate, large
// enough that no material evaluation can be confused for one. Ply is
// added/subtracted so that a mate found sooner scores higher than one
// found deeper in the tree.
const Mate = 1_000_000

// Infinity is the starting best score before any move is scored; every
// real score, mate included, is greater than -Infinity.
const Infinity = Mate + 1

// StaticEval returns the position's material balance in milli-pawns
// from the side-to-move's perspective (§4.10): no positional or
// piece-square term, since the engine's scope is move generation and
// search plumbing, not evaluation tuning (§9).
func StaticEval(b *shess.BitBoard) int {
	score := materialOf(&b.White) - materialOf(&b.Black)
	if b.Metadata.ToMove == shess.Black {
		score = -score
	}
	return score
}

func materialOf(h *shess.HalfBitBoard) int {
	total := 0
	for pk := shess.King; pk < shess.NoPieceKind; pk++ {
		total += h.PieceMask(pk).Occupied() * pk.MaterialValue()
	}
	return total
}
