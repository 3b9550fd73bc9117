package shess_test

import (
	"math/rand"
	"testing"

	"github.com/shess-dev/shess/internal/notation"
	"github.com/shess-dev/shess/internal/shess"
)

func maskOf(t *testing.T, squares ...string) shess.Mask {
	t.Helper()
	var m shess.Mask
	for _, s := range squares {
		sq, err := shess.ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", s, err)
		}
		m = m.Set(sq)
	}
	return m
}

func TestKnightJumpTables(t *testing.T) {
	d4, _ := shess.ParseSquare("d4")
	want := maskOf(t, "b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5")
	if got := shess.KnightMoves.At(d4); got != want {
		t.Errorf("knight_moves(d4) = %s, want %s", got, want)
	}

	a1, _ := shess.ParseSquare("a1")
	want = maskOf(t, "b3", "c2")
	if got := shess.KnightMoves.At(a1); got != want {
		t.Errorf("knight_moves(a1) = %s, want %s", got, want)
	}
}

func TestCastlingBothSidesAvailable(t *testing.T) {
	b, err := notation.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var foundOO, foundOOO bool
	for _, m := range b.GenerateMoves() {
		if !m.IsCastling() {
			continue
		}
		if m.Castling == shess.OO {
			foundOO = true
		} else {
			foundOOO = true
		}
	}
	if !foundOO || !foundOOO {
		t.Errorf("expected both O-O and O-O-O to be legal, got OO=%v OOO=%v", foundOO, foundOOO)
	}
}

// TestEnPassantPinExposesCheck is scenario 2 of §8: capturing en passant
// would expose the Black king to the White rook along the 4th rank, so
// exd3 must not appear among Black's legal moves.
func TestEnPassantPinExposesCheck(t *testing.T) {
	b, err := notation.ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	for _, m := range b.GenerateMoves() {
		if m.IsCapture() && m.CaptureSq != m.To {
			t.Errorf("en passant capture %v must not be legal here", m)
		}
	}
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	b, err := notation.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	hasher := shess.NewHasher()
	hash := hasher.HashFull(&b)
	end := shess.Determine(&b, b.GenerateMoves(), (&shess.History{}).Push(hash), hash)
	if end.Reason != shess.InsufficientMaterial {
		t.Fatalf("expected InsufficientMaterial, got %v", end.Reason)
	}
}

// TestSymmetryMirrorAndSwapColors implements §8's symmetry property test:
// mirroring a position across the horizontal axis and swapping colors
// yields a position with the same legal-move count.
func TestSymmetryMirrorAndSwapColors(t *testing.T) {
	positions := []string{
		notation.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range positions {
		b, err := notation.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		mirrored := mirrorAndSwapColors(t, b)

		want := len(b.GenerateMoves())
		got := len(mirrored.GenerateMoves())
		if got != want {
			t.Errorf("fen %q: mirrored legal-move count = %d, want %d", fen, got, want)
		}
	}
}

// mirrorAndSwapColors reflects b across the horizontal axis (rank r becomes
// rank 7-r) and swaps White and Black, producing a position equivalent to
// b up to the board's bilateral symmetry.
func mirrorAndSwapColors(t *testing.T, b shess.BitBoard) shess.BitBoard {
	t.Helper()
	var out shess.BitBoard

	flip := func(h *shess.HalfBitBoard) shess.HalfBitBoard {
		var fh shess.HalfBitBoard
		for pk := shess.King; pk < shess.NoPieceKind; pk++ {
			var fm shess.Mask
			for _, sq := range h.PieceMask(pk).Squares() {
				fm = fm.Set(shess.NewSquare(sq.File(), 7-sq.Rank()))
			}
			fh.XorPieceMask(pk, fm)
		}
		return fh
	}

	out.White = flip(&b.Black)
	out.Black = flip(&b.White)

	out.Metadata = shess.Metadata{
		ToMove:        b.Metadata.ToMove.Other(),
		WhiteCastling: b.Metadata.BlackCastling,
		BlackCastling: b.Metadata.WhiteCastling,
		Details:       b.Metadata.Details,
	}
	if b.Metadata.EnPassant != nil {
		ep := b.Metadata.EnPassant
		out.Metadata.EnPassant = &shess.EnPassant{
			To:      shess.NewSquare(ep.To.File(), 7-ep.To.Rank()),
			Capture: shess.NewSquare(ep.Capture.File(), 7-ep.Capture.Rank()),
		}
	}
	return out
}

// TestRandomGameInvariants plays random legal games from the starting
// position, checking invariants 1, 2, 5 and 6 of §8 after every move.
func TestRandomGameInvariants(t *testing.T) {
	hasher := shess.NewHasher()
	rng := rand.New(rand.NewSource(1))

	for game := 0; game < 20; game++ {
		b := shess.NewBitBoard()
		hash := hasher.HashFull(&b)

		for ply := 0; ply < 60; ply++ {
			moves := b.GenerateMoves()
			end := shess.Determine(&b, moves, (&shess.History{}).Push(hash), hash)
			if end.IsOver() {
				break
			}

			m := moves[rng.Intn(len(moves))]
			wantHash := hasher.HashFull(pointerApply(b, m))
			gotHash := hasher.Delta(&b.Metadata, hash, m)
			if gotHash != wantHash {
				t.Fatalf("game %d ply %d: Delta/HashFull mismatch for move %v", game, ply, m)
			}

			b = b.Apply(m)
			hash = gotHash

			if b.White.Kings.AsMask().Occupied() != 1 || b.Black.Kings.AsMask().Occupied() != 1 {
				t.Fatalf("game %d ply %d: expected exactly one king per side", game, ply)
			}
			if b.White.Occupation().Overlap(b.Black.Occupation()).Any() {
				t.Fatalf("game %d ply %d: white/black occupations overlap", game, ply)
			}
			for _, mv := range b.GenerateMoves() {
				next := b.Apply(mv)
				mover, _ := mv.ColorPiece.Split()
				if next.IsInCheck(mover) {
					t.Fatalf("game %d ply %d: move %v leaves mover in check", game, ply, mv)
				}
			}
		}
	}
}

func pointerApply(b shess.BitBoard, m shess.Move) *shess.BitBoard {
	next := b.Apply(m)
	return &next
}
