package shess

// GenerateMoves returns every legal move for the side to move (§4.5): all
// pseudo-legal destinations per piece kind, filtered to those that don't
// leave the mover's own king in check. Enumeration order is not
// contractual (§5).
func (b *BitBoard) GenerateMoves() []Move {
	moves := make([]Move, 0, 48)
	color := b.Metadata.ToMove
	mine := b.Side(color)
	opp := b.Side(color.Other())
	own := mine.Occupation()
	other := opp.Occupation()

	appendIfLegal := func(m Move) {
		if !b.wouldBeInCheck(color, m) {
			moves = append(moves, m)
		}
	}

	cp := func(pk PieceKind) ColorPiece { return NewColorPiece(color, pk) }

	// Knights
	for sq, rest := mine.Knights.AsMask().PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		dests := KnightMoves.At(sq) &^ own
		for d, r2 := dests.PopFirst(); d != NoSquare; d, r2 = r2.PopFirst() {
			m := newMove(cp(Knight), sq, d)
			if other.Contains(d) {
				pk, _ := opp.PieceAt(d)
				m = m.withCapture(d, pk)
			}
			appendIfLegal(m)
		}
	}

	// King, non-castling
	for sq, rest := mine.Kings.AsMask().PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		dests := KingMoves.At(sq) &^ own
		for d, r2 := dests.PopFirst(); d != NoSquare; d, r2 = r2.PopFirst() {
			m := newMove(cp(King), sq, d)
			if other.Contains(d) {
				pk, _ := opp.PieceAt(d)
				m = m.withCapture(d, pk)
			}
			appendIfLegal(m)
		}
	}

	// Rooks / Bishops / Queens
	genSlider := func(pieces Mask, pk PieceKind, dirs [4]rayDir) {
		for sq, rest := pieces.PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
			var dests Mask
			for _, rd := range dirs {
				dests = dests.Overlay(SlideStop(rd.ascending, rd.table.At(sq), own, other))
			}
			for d, r2 := dests.PopFirst(); d != NoSquare; d, r2 = r2.PopFirst() {
				m := newMove(cp(pk), sq, d)
				if other.Contains(d) {
					cpk, _ := opp.PieceAt(d)
					m = m.withCapture(d, cpk)
				}
				appendIfLegal(m)
			}
		}
	}
	genSlider(mine.Rooks.AsMask(), Rook, rookDirs)
	genSlider(mine.Bishops.AsMask(), Bishop, bishopDirs)
	genSlider(mine.Queens.AsMask(), Queen, rookDirs)
	genSlider(mine.Queens.AsMask(), Queen, bishopDirs)

	// Pawns: push, capture, en passant, promotion
	promotionRank := Rank(7)
	if color == Black {
		promotionRank = 0
	}
	for sq, rest := mine.Pawns.AsMask().PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		ascending := color == White
		table := &whitePawnPushes
		if color == Black {
			table = &blackPawnPushes
		}
		dests := SlideStop(ascending, table.At(sq), own.Overlay(other), Nil())
		for d, r2 := dests.PopFirst(); d != NoSquare; d, r2 = r2.PopFirst() {
			emitPawnMove(&moves, appendIfLegal, cp(Pawn), sq, d, NoSquare, NoPieceKind, d.Rank() == promotionRank)
		}

		attackTable := &whitePawnAttacks
		if color == Black {
			attackTable = &blackPawnAttacks
		}
		capDests := attackTable.At(sq) & other
		for d, r2 := capDests.PopFirst(); d != NoSquare; d, r2 = r2.PopFirst() {
			cpk, _ := opp.PieceAt(d)
			emitPawnMove(&moves, appendIfLegal, cp(Pawn), sq, d, d, cpk, d.Rank() == promotionRank)
		}

		if ep := b.Metadata.EnPassant; ep != nil && attackTable.At(sq).Contains(ep.To) {
			m := newMove(cp(Pawn), sq, ep.To).withCapture(ep.Capture, Pawn)
			appendIfLegal(m)
		}
	}

	// Castling
	if color == White {
		b.genCastling(&moves, White, b.Metadata.WhiteCastling)
	} else {
		b.genCastling(&moves, Black, b.Metadata.BlackCastling)
	}

	return moves
}

// promotionKinds is the four pieces a pawn may promote to, queen first
// (the order callers/tests usually scan).
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// emitPawnMove appends either a single move, or -- if isPromotion -- one
// move per promotion kind (§4.5).
func emitPawnMove(moves *[]Move, appendIfLegal func(Move), cp ColorPiece, from, to, captureSq Square, capturePk PieceKind, isPromotion bool) {
	base := newMove(cp, from, to)
	if captureSq != NoSquare {
		base = base.withCapture(captureSq, capturePk)
	}
	if !isPromotion {
		appendIfLegal(base)
		return
	}
	for _, pk := range promotionKinds {
		appendIfLegal(base.withPromotion(pk))
	}
}

// genCastling appends the legal castling moves for color, checking rights,
// path occupancy, and that the king does not pass through check (§4.5).
// Unlike the other piece kinds, castling's own four-point check is a
// complete legality test on its own, so legal moves are appended directly
// rather than re-filtered through wouldBeInCheck (which only reasons about
// the king's own from/to squares and would ignore the rook's companion
// move).
func (b *BitBoard) genCastling(moves *[]Move, color Color, rights CastlingRights) {
	mine := b.Side(color)
	opp := b.Side(color.Other())
	occBoth := mine.Occupation().Overlay(opp.Occupation())
	rank := color.StartingRank()

	try := func(side CastlingSide, has bool) {
		if !has {
			return
		}
		detail := b.Metadata.Details.Select(side, color)
		kingFrom := NewSquare(detail.KingFrom, rank)
		kingTo := NewSquare(detail.KingTo, rank)
		rookFrom := NewSquare(detail.RookFrom, rank)

		if !mine.Kings.AsMask().Contains(kingFrom) || !mine.Rooks.AsMask().Contains(rookFrom) {
			return
		}

		exclude := kingFrom.AsMask().Overlay(rookFrom.AsMask())
		blocking := occBoth &^ exclude
		if detail.KingPathMask.Overlap(blocking).Any() {
			return
		}
		if detail.RookPathMask.Overlap(blocking).Any() {
			return
		}

		oppThreats := opp.Threats(color.Other(), occBoth, NoSquare)
		if detail.KingPathMask.Overlap(oppThreats).Any() {
			return
		}

		m := newCastlingMove(NewColorPiece(color, King), kingFrom, kingTo, side)
		*moves = append(*moves, m)
	}

	try(OOO, rights.OOO)
	try(OO, rights.OO)
}
