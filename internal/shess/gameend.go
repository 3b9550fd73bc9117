package shess

// History is a persistent (cons-cell) chain of position hashes reaching
// back to the start of the game (§4.9). Persistent rather than a slice so
// that exploring a search tree can share the common prefix across
// branches instead of copying the whole game history at every node --
// the same reasoning that makes Apply return a new BitBoard instead of
// mutating in place (§4.6, §5).
type History struct {
	Hash   HashResult
	Parent *History
}

// Push conses hash onto h, returning the new head. h itself is untouched,
// so a caller exploring several candidate continuations from the same
// position can Push each candidate off the same parent.
func (h *History) Push(hash HashResult) *History {
	return &History{Hash: hash, Parent: h}
}

// Count returns how many times hash occurs in the chain starting at h,
// inclusive.
func (h *History) Count(hash HashResult) int {
	n := 0
	for node := h; node != nil; node = node.Parent {
		if node.Hash == hash {
			n++
		}
	}
	return n
}

// Reason names why a game has ended.
type Reason uint8

const (
	NotEnded Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	ForcedDrawClockReached
	ThreefoldRepetition
)

// GameEnd describes the terminal status of a position: whether the game
// has ended, why, and -- for Checkmate only -- who won.
type GameEnd struct {
	Reason Reason
	Winner Color // meaningful only when Reason == Checkmate
}

// IsOver reports whether g represents a terminated game.
func (g GameEnd) IsOver() bool {
	return g.Reason != NotEnded
}

// IsDraw reports whether g is a terminal draw.
func (g GameEnd) IsDraw() bool {
	return g.IsOver() && g.Reason != Checkmate
}

// Determine classifies the current position (§4.9): the forced-draw
// half-move clock first (it outranks everything else, since once tripped
// it stays tripped for many plies), then checkmate/stalemate from the
// legal-move list and check status, then insufficient material on both
// sides, then threefold repetition against hash in history. moves must
// be b.GenerateMoves()'s result for the position being classified, and
// hash must be its Zobrist hash.
func Determine(b *BitBoard, moves []Move, history *History, hash HashResult) GameEnd {
	if b.Metadata.HalfMoveClock() >= ForcedDrawClock {
		return GameEnd{Reason: ForcedDrawClockReached}
	}

	toMove := b.Metadata.ToMove
	if len(moves) == 0 {
		if b.IsInCheck(toMove) {
			return GameEnd{Reason: Checkmate, Winner: toMove.Other()}
		}
		return GameEnd{Reason: Stalemate}
	}

	if !b.White.SufficientMaterial() && !b.Black.SufficientMaterial() {
		return GameEnd{Reason: InsufficientMaterial}
	}

	if history.Count(hash) >= 3 {
		return GameEnd{Reason: ThreefoldRepetition}
	}

	return GameEnd{Reason: NotEnded}
}
