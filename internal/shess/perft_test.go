package shess_test

import (
	"testing"

	"github.com/shess-dev/shess/internal/notation"
	"github.com/shess-dev/shess/internal/shess"
)

// perft counts leaf nodes at depth, the standard way to verify move
// generation and Apply agree with each other.
func perft(b shess.BitBoard, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		nodes += perft(b.Apply(m), depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	b := shess.NewBitBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		// depth 5 (4865609) takes longer; enable for thorough testing
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftKiwipete exercises castling, promotions, and the en-passant
// capture-square bookkeeping all at once.
func TestPerftKiwipete(t *testing.T) {
	b, err := notation.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestPerftEnPassantPin(t *testing.T) {
	// Black pawn on e4 could capture en passant onto d3, but doing so
	// would expose the black king on a4 to the white rook on h4.
	b, err := notation.ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("parsing FEN: %v", err)
	}

	for _, m := range b.GenerateMoves() {
		if m.IsCapture() && m.CaptureSq != m.To {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}
	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}
