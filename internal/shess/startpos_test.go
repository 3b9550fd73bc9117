package shess_test

import (
	"testing"

	"github.com/shess-dev/shess/internal/shess"
)

// TestStartingArrayIsAValidPermutation checks the Chess960 decoder never
// produces an illegal arrangement: exactly one king strictly between the
// two rooks, one queen, two bishops on opposite-colored squares, two
// knights, and no duplicated or missing piece.
func TestStartingArrayIsAValidPermutation(t *testing.T) {
	for n := 0; n < 960; n++ {
		arr := shess.StartingArray(n)

		counts := map[shess.PieceKind]int{}
		for _, pk := range arr {
			counts[pk]++
		}
		if counts[shess.King] != 1 || counts[shess.Queen] != 1 ||
			counts[shess.Bishop] != 2 || counts[shess.Knight] != 2 || counts[shess.Rook] != 2 {
			t.Fatalf("n=%d: bad piece counts %v", n, counts)
		}

		var kingFile, rookLo, rookHi int = -1, -1, -1
		for f, pk := range arr {
			switch pk {
			case shess.King:
				kingFile = f
			case shess.Rook:
				if rookLo == -1 {
					rookLo = f
				} else {
					rookHi = f
				}
			}
		}
		if !(rookLo < kingFile && kingFile < rookHi) {
			t.Fatalf("n=%d: king (file %d) not between rooks (files %d, %d)", n, kingFile, rookLo, rookHi)
		}

		var lightBishop, darkBishop = -1, -1
		for f, pk := range arr {
			if pk != shess.Bishop {
				continue
			}
			if f%2 == 0 {
				darkBishop = f
			} else {
				lightBishop = f
			}
		}
		if lightBishop == -1 || darkBishop == -1 {
			t.Fatalf("n=%d: bishops are not on opposite-colored squares", n)
		}
	}
}

func TestStartingArrayKnownArrangements(t *testing.T) {
	// Arrangement 518 is the standard chess back rank.
	standard := [8]shess.PieceKind{
		shess.Rook, shess.Knight, shess.Bishop, shess.Queen,
		shess.King, shess.Bishop, shess.Knight, shess.Rook,
	}
	if got := shess.StartingArray(518); got != standard {
		t.Errorf("StartingArray(518) = %v, want standard back rank %v", got, standard)
	}
}

func TestNewChess960BitBoardLegalOpening(t *testing.T) {
	for _, n := range []int{0, 518, 959} {
		b := shess.NewChess960BitBoard(n)
		if b.Metadata.ToMove != shess.White {
			t.Errorf("n=%d: expected White to move", n)
		}
		moves := b.GenerateMoves()
		if len(moves) == 0 {
			t.Errorf("n=%d: expected legal moves from the starting position", n)
		}
		if b.IsInCheck(shess.White) || b.IsInCheck(shess.Black) {
			t.Errorf("n=%d: starting position should not be check", n)
		}
	}
}
