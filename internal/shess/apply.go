package shess

// Apply returns the position resulting from playing move m, which must be
// one of the moves b.GenerateMoves() just returned (§7: applying a move
// that wasn't legally generated is a precondition violation, not a
// reportable error). Apply is a pure function -- b is left untouched -- so
// callers exploring a search tree never need to undo anything (§4.6, §5).
func (b BitBoard) Apply(m Move) BitBoard {
	assertInvariant(!m.IsNoMove(), "Apply called with NoMove")
	assertInvariant(m.ColorPiece.Color() == b.Metadata.ToMove, "Apply called with a move for the side not to move")

	color, kind := m.ColorPiece.Split()
	opp := color.Other()

	b.Metadata.ToMove = opp
	b.Metadata.Tempo++

	if kind == Pawn || m.IsCapture() {
		b.Metadata.LastChange = b.Metadata.Tempo
	}

	if ep := m.EnPassantAfter(); ep != nil {
		b.Metadata.EnPassant = ep
	} else {
		b.Metadata.EnPassant = nil
	}

	moverDelta, oppDelta := m.CastlingRightsDelta(b.Metadata.Details)
	moverRights := b.Metadata.CastlingRightsFor(color)
	moverRights.Update(moverDelta)
	b.Metadata.SetCastlingRightsFor(color, moverRights)
	oppRights := b.Metadata.CastlingRightsFor(opp)
	oppRights.Update(oppDelta)
	b.Metadata.SetCastlingRightsFor(opp, oppRights)

	mine := b.Side(color)
	theirs := b.Side(opp)

	if m.IsPromotion() {
		mine.XorPieceMask(Pawn, m.From.AsMask())
		mine.XorPieceMask(m.Promotion, m.To.AsMask())
	} else {
		mine.XorPieceMask(kind, m.FromToMask())
	}

	if m.IsCapture() {
		theirs.XorPieceMask(m.CapturePk, m.CaptureSq.AsMask())
	}

	if m.IsCastling() {
		rank := color.StartingRank()
		detail := b.Metadata.Details.Select(m.Castling, color)
		rookFrom := NewSquare(detail.RookFrom, rank)
		rookTo := NewSquare(detail.RookTo, rank)
		mine.XorPieceMask(Rook, rookFrom.AsMask().Overlay(rookTo.AsMask()))
	}

	return b
}
