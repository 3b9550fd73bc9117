package shess_test

import (
	"testing"

	"github.com/shess-dev/shess/internal/notation"
	"github.com/shess-dev/shess/internal/shess"
)

func TestCheckmateBackRank(t *testing.T) {
	b, err := notation.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	moves := b.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %d", len(moves))
	}
	if !b.IsInCheck(shess.Black) {
		t.Fatal("expected black to be in check")
	}

	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	end := shess.Determine(&b, moves, (&shess.History{}).Push(hash), hash)
	if end.Reason != shess.Checkmate {
		t.Fatalf("expected Checkmate, got %v", end.Reason)
	}
	if end.Winner != shess.White {
		t.Fatalf("expected White to win, got %v", end.Winner)
	}
}

func TestNotCheckmateKingCanCapture(t *testing.T) {
	b, err := notation.ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move (Kxg8)")
	}

	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	end := shess.Determine(&b, moves, (&shess.History{}).Push(hash), hash)
	if end.IsOver() {
		t.Fatalf("expected game to continue, got %v", end.Reason)
	}
}

func TestStalemate(t *testing.T) {
	// Black king on a8 is not in check but has no legal moves.
	b, err := notation.ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	moves := b.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %d", len(moves))
	}
	if b.IsInCheck(shess.Black) {
		t.Fatal("expected black not to be in check")
	}

	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	end := shess.Determine(&b, moves, (&shess.History{}).Push(hash), hash)
	if end.Reason != shess.Stalemate {
		t.Fatalf("expected Stalemate, got %v", end.Reason)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	b, err := notation.ParseFEN("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	end := shess.Determine(&b, b.GenerateMoves(), (&shess.History{}).Push(hash), hash)
	if end.Reason != shess.InsufficientMaterial {
		t.Fatalf("expected InsufficientMaterial, got %v", end.Reason)
	}
	if !end.IsDraw() {
		t.Fatal("expected IsDraw to be true")
	}
}

// TestForcedDrawClockOutranksCheckmate covers §4.9's check ordering: a
// position that is simultaneously checkmate and past the forced-draw
// clock must report the clock, since the clock only resets on capture
// or pawn move and so stays tripped for many plies once reached.
func TestForcedDrawClockOutranksCheckmate(t *testing.T) {
	b, err := notation.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 150 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	moves := b.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %d", len(moves))
	}

	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	end := shess.Determine(&b, moves, (&shess.History{}).Push(hash), hash)
	if end.Reason != shess.ForcedDrawClockReached {
		t.Fatalf("expected ForcedDrawClockReached, got %v", end.Reason)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	b := shess.NewBitBoard()
	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	history := (&shess.History{}).Push(hash)

	// Shuffle knights back and forth: Nf3 Nf6 Ng1 Ng8 Nf3 Nf6 Ng1 Ng8,
	// returning to the starting position three times in total.
	sequence := []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}
	for _, san := range sequence {
		m, err := notation.ParseSAN(san, &b)
		if err != nil {
			t.Fatalf("parsing %q: %v", san, err)
		}
		hash = hasher.Delta(&b.Metadata, hash, m)
		b = b.Apply(m)
		history = history.Push(hash)
	}

	end := shess.Determine(&b, b.GenerateMoves(), history, hash)
	if end.Reason != shess.ThreefoldRepetition {
		t.Fatalf("expected ThreefoldRepetition, got %v", end.Reason)
	}
}
