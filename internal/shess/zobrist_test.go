package shess_test

import (
	"testing"

	"github.com/shess-dev/shess/internal/notation"
	"github.com/shess-dev/shess/internal/shess"
)

// TestHashDeltaMatchesFullRecompute checks invariant 6: incrementally
// updating a hash via Delta must always agree with hashing the resulting
// position from scratch, across every move from several positions.
func TestHashDeltaMatchesFullRecompute(t *testing.T) {
	hasher := shess.NewHasher()
	fens := []string{
		notation.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
	}

	for _, fen := range fens {
		b, err := notation.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		hash := hasher.HashFull(&b)

		for _, m := range b.GenerateMoves() {
			wantNext := b.Apply(m)
			gotHash := hasher.Delta(&b.Metadata, hash, m)
			wantHash := hasher.HashFull(&wantNext)
			if gotHash != wantHash {
				t.Errorf("fen %q move %v: Delta = %#x, HashFull(Apply) = %#x", fen, m, gotHash, wantHash)
			}
		}
	}
}

func TestHashFullDeterministic(t *testing.T) {
	h1 := shess.NewHasher()
	h2 := shess.NewHasher()
	b := shess.NewBitBoard()
	if h1.HashFull(&b) != h2.HashFull(&b) {
		t.Fatal("two Hashers built from the fixed seed produced different hashes")
	}
}

func TestHashSideToMoveBit(t *testing.T) {
	hasher := shess.NewHasher()
	b := shess.NewBitBoard()
	hash := hasher.HashFull(&b)
	if hash&shess.BlackToMove != 0 {
		t.Error("starting position (white to move) should not set BlackToMove")
	}

	m, err := notation.ParseSAN("e4", &b)
	if err != nil {
		t.Fatalf("ParseSAN: %v", err)
	}
	next := hasher.Delta(&b.Metadata, hash, m)
	if next&shess.BlackToMove == 0 {
		t.Error("after White's move, BlackToMove should be set")
	}
}
