package shess

// HalfBitBoard bundles one side's six piece sets. Invariant: the six masks
// are pairwise disjoint and their union equals the side's occupancy (§3).
type HalfBitBoard struct {
	Kings   Kings
	Queens  Queens
	Rooks   Rooks
	Bishops Bishops
	Knights Knights
	Pawns   Pawns
}

// Occupation returns the union of all six piece masks.
func (h *HalfBitBoard) Occupation() Mask {
	return h.Kings.AsMask().
		Overlay(h.Queens.AsMask()).
		Overlay(h.Rooks.AsMask()).
		Overlay(h.Bishops.AsMask()).
		Overlay(h.Knights.AsMask()).
		Overlay(h.Pawns.AsMask())
}

// PieceAt returns the PieceKind occupying sq on this side, and whether any
// piece of this side is there, checking in K,Q,R,B,N,P order.
func (h *HalfBitBoard) PieceAt(sq Square) (PieceKind, bool) {
	switch {
	case h.Kings.AsMask().Contains(sq):
		return King, true
	case h.Queens.AsMask().Contains(sq):
		return Queen, true
	case h.Rooks.AsMask().Contains(sq):
		return Rook, true
	case h.Bishops.AsMask().Contains(sq):
		return Bishop, true
	case h.Knights.AsMask().Contains(sq):
		return Knight, true
	case h.Pawns.AsMask().Contains(sq):
		return Pawn, true
	default:
		return NoPieceKind, false
	}
}

// PieceMask selects the mask of the given kind.
func (h *HalfBitBoard) PieceMask(pk PieceKind) Mask {
	switch pk {
	case King:
		return h.Kings.AsMask()
	case Queen:
		return h.Queens.AsMask()
	case Rook:
		return h.Rooks.AsMask()
	case Bishop:
		return h.Bishops.AsMask()
	case Knight:
		return h.Knights.AsMask()
	case Pawn:
		return h.Pawns.AsMask()
	default:
		return Nil()
	}
}

// XorPieceMask XORs delta into the mask of the given kind -- the primitive
// move-application uses to flip a piece from one square to another (§4.6).
func (h *HalfBitBoard) XorPieceMask(pk PieceKind, delta Mask) {
	switch pk {
	case King:
		h.Kings = Kings(Mask(h.Kings) ^ delta)
	case Queen:
		h.Queens = Queens(Mask(h.Queens) ^ delta)
	case Rook:
		h.Rooks = Rooks(Mask(h.Rooks) ^ delta)
	case Bishop:
		h.Bishops = Bishops(Mask(h.Bishops) ^ delta)
	case Knight:
		h.Knights = Knights(Mask(h.Knights) ^ delta)
	case Pawn:
		h.Pawns = Pawns(Mask(h.Pawns) ^ delta)
	}
}

// Threats returns the union of squares any piece of this side attacks,
// given the full post-move blockers occupancy and, optionally, one square
// of this side's own pieces to treat as captured/removed (§4.4). Pass
// NoSquare for removeSquare when no hypothetical capture applies.
func (h *HalfBitBoard) Threats(color Color, blockers Mask, removeSquare Square) Mask {
	kings := h.Kings
	queens := h.Queens
	rooks := h.Rooks
	bishops := h.Bishops
	knights := h.Knights
	pawns := h.Pawns

	if removeSquare != NoSquare {
		kings = kings.Without(removeSquare)
		queens = queens.Without(removeSquare)
		rooks = rooks.Without(removeSquare)
		bishops = bishops.Without(removeSquare)
		knights = knights.Without(removeSquare)
		pawns = pawns.Without(removeSquare)
	}

	return kings.Threats().
		Overlay(queens.Threats(blockers)).
		Overlay(rooks.Threats(blockers)).
		Overlay(bishops.Threats(blockers)).
		Overlay(knights.Threats()).
		Overlay(pawns.Threats(color))
}

// SufficientMaterial reports whether this side retains mating material
// (§4.9): any pawn, rook, or queen; or a bishop pair on opposite shades;
// or two or more knights; or one knight plus one bishop.
func (h *HalfBitBoard) SufficientMaterial() bool {
	if h.Pawns.AsMask().Any() || h.Rooks.AsMask().Any() || h.Queens.AsMask().Any() {
		return true
	}
	knightCount := h.Knights.AsMask().Occupied()
	bishopCount := h.Bishops.AsMask().Occupied()
	if knightCount >= 2 {
		return true
	}
	if knightCount >= 1 && bishopCount >= 1 {
		return true
	}
	if bishopCount >= 2 {
		lightSquares := Mask(0xAA55AA55AA55AA55)
		darkSquares := lightSquares.Inverse()
		bm := h.Bishops.AsMask()
		return bm.Overlap(lightSquares).Any() && bm.Overlap(darkSquares).Any()
	}
	return false
}
