package shess

// BitBoard is a full chess position: Metadata plus each side's
// HalfBitBoard. Invariant: the two sides' occupations are disjoint; the
// side to move has a king; if EnPassant is set its Capture square holds a
// pawn of the opposite color (§3).
type BitBoard struct {
	Metadata Metadata
	White    HalfBitBoard
	Black    HalfBitBoard
}

// Side returns the HalfBitBoard belonging to c.
func (b *BitBoard) Side(c Color) *HalfBitBoard {
	if c == White {
		return &b.White
	}
	return &b.Black
}

// Occupation returns the union of both sides' occupations.
func (b *BitBoard) Occupation() Mask {
	return b.White.Occupation().Overlay(b.Black.Occupation())
}

// PieceAt returns the ColorPiece occupying sq, or NoColorPiece if empty.
func (b *BitBoard) PieceAt(sq Square) ColorPiece {
	if pk, ok := b.White.PieceAt(sq); ok {
		return NewColorPiece(White, pk)
	}
	if pk, ok := b.Black.PieceAt(sq); ok {
		return NewColorPiece(Black, pk)
	}
	return NoColorPiece
}

// NewBitBoard returns the standard starting position.
func NewBitBoard() BitBoard {
	var b BitBoard
	b.Metadata = NewMetadata()

	place := func(h *HalfBitBoard, pk PieceKind, sq Square) {
		switch pk {
		case King:
			h.Kings = Kings(h.Kings.AsMask().Set(sq))
		case Queen:
			h.Queens = Queens(h.Queens.AsMask().Set(sq))
		case Rook:
			h.Rooks = Rooks(h.Rooks.AsMask().Set(sq))
		case Bishop:
			h.Bishops = Bishops(h.Bishops.AsMask().Set(sq))
		case Knight:
			h.Knights = Knights(h.Knights.AsMask().Set(sq))
		case Pawn:
			h.Pawns = Pawns(h.Pawns.AsMask().Set(sq))
		}
	}

	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := File(0); f <= 7; f++ {
		place(&b.White, backRank[f], NewSquare(f, 0))
		place(&b.White, Pawn, NewSquare(f, 1))
		place(&b.Black, Pawn, NewSquare(f, 6))
		place(&b.Black, backRank[f], NewSquare(f, 7))
	}
	return b
}

// IsInCheck reports whether color's king is attacked in the current
// position (no hypothetical move applied).
func (b *BitBoard) IsInCheck(color Color) bool {
	kingMask := b.Side(color).Kings.AsMask()
	if !kingMask.Any() {
		return false
	}
	opp := color.Other()
	oppThreats := b.Side(opp).Threats(opp, b.Occupation(), NoSquare)
	return kingMask.Overlap(oppThreats).Any()
}

// wouldBeInCheck reports whether, after applying candidate move m (not yet
// committed), the mover's king is attacked -- the legality filter of §4.5,
// built without mutating b: it recomputes opponent threats against the
// hypothetical post-move occupancy (§4.4) rather than making and unmaking
// the move.
func (b *BitBoard) wouldBeInCheck(mover Color, m Move) bool {
	opp := mover.Other()
	moverOcc := b.Side(mover).Occupation() ^ m.FromToMask()
	oppOcc := b.Side(opp).Occupation()

	removeSquare := NoSquare
	if m.IsCapture() && m.CapturePk != NoPieceKind {
		// A normal capture removes the victim from the opponent's own
		// occupancy too; an en-passant capture's victim square differs
		// from the destination square, so it must be dropped explicitly
		// even though it was never part of moverOcc/oppOcc math above.
		oppOcc = oppOcc.Unset(m.CaptureSq)
		removeSquare = m.CaptureSq
	}

	blockers := moverOcc.Overlay(oppOcc)

	kingMask := b.Side(mover).Kings.AsMask()
	if kingMask.Contains(m.From) {
		kingMask = kingMask.Unset(m.From).Set(m.To)
	}

	oppThreats := b.Side(opp).Threats(opp, blockers, removeSquare)
	return kingMask.Overlap(oppThreats).Any()
}
