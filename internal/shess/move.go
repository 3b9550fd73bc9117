package shess

// Move is an encoded chess move, packed to 8 bytes (§3, §6): the zero
// value (ColorPiece == NoColorPiece) is NoMove, giving the type a niche
// the way Rust's non-zero-discriminant encoding gives Option<Move> one --
// Go has no analogous union niche, so a zeroed Move plays that role here
// instead (see DESIGN.md).
type Move struct {
	ColorPiece ColorPiece   // mover's color+kind; NoColorPiece means NoMove
	From       Square
	To         Square
	CaptureSq  Square       // captured square, NoSquare if no capture (differs from To for en passant)
	CapturePk  PieceKind    // captured kind, NoPieceKind if no capture
	Promotion  PieceKind    // promoted-to kind, NoPieceKind if not a promotion
	Castling   CastlingSide // meaningful only when IsCastling() is true
	flags      uint8
}

const flagCastling uint8 = 1 << 0

// NoMove is the zero Move, meaning "no move".
var NoMove = Move{}

// IsNoMove reports whether m is the zero/sentinel move.
func (m Move) IsNoMove() bool {
	return m.ColorPiece == NoColorPiece
}

// IsCapture reports whether m captures a piece.
func (m Move) IsCapture() bool {
	return m.CaptureSq != NoSquare
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceKind
}

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool {
	return m.flags&flagCastling != 0
}

func newMove(cp ColorPiece, from, to Square) Move {
	return Move{ColorPiece: cp, From: from, To: to, CaptureSq: NoSquare, CapturePk: NoPieceKind, Promotion: NoPieceKind}
}

func (m Move) withCapture(sq Square, pk PieceKind) Move {
	m.CaptureSq = sq
	m.CapturePk = pk
	return m
}

func (m Move) withPromotion(pk PieceKind) Move {
	m.Promotion = pk
	return m
}

func newCastlingMove(cp ColorPiece, from, to Square, side CastlingSide) Move {
	m := newMove(cp, from, to)
	m.Castling = side
	m.flags |= flagCastling
	return m
}

// FromToMask returns the union of From and To as a Mask -- the primitive
// Apply XORs into the moving piece's PieceSet mask.
func (m Move) FromToMask() Mask {
	return m.From.AsMask().Overlay(m.To.AsMask())
}

// CastlingRightsDelta computes the monotone castling-rights update induced
// by m (§4.7): a right is cleared (false) when the king moves, when a rook
// moves off its origin square, or when a rook on its origin square is
// captured. Rights are never restored here -- callers AND the delta into
// the existing rights.
func (m Move) CastlingRightsDelta(details CastlingDetails) (mover, opponent CastlingRights) {
	mover = AllCastlingRights()
	opponent = AllCastlingRights()

	color, kind := m.ColorPiece.Split()

	if kind == King {
		mover = CastlingRights{}
	}
	if kind == Rook {
		ooo := details.Select(OOO, color)
		oo := details.Select(OO, color)
		if m.From.File() == ooo.RookFrom && m.From.Rank() == color.StartingRank() {
			mover.OOO = false
		}
		if m.From.File() == oo.RookFrom && m.From.Rank() == color.StartingRank() {
			mover.OO = false
		}
	}

	if m.IsCapture() && m.CapturePk == Rook {
		oppColor := color.Other()
		ooo := details.Select(OOO, oppColor)
		oo := details.Select(OO, oppColor)
		if m.CaptureSq.File() == ooo.RookFrom && m.CaptureSq.Rank() == oppColor.StartingRank() {
			opponent.OOO = false
		}
		if m.CaptureSq.File() == oo.RookFrom && m.CaptureSq.Rank() == oppColor.StartingRank() {
			opponent.OO = false
		}
	}

	return mover, opponent
}

// EnPassantAfter returns the en-passant target Apply should install after
// m, or nil if m isn't a two-square pawn push.
func (m Move) EnPassantAfter() *EnPassant {
	_, kind := m.ColorPiece.Split()
	if kind != Pawn {
		return nil
	}
	fromR, toR := int(m.From.Rank()), int(m.To.Rank())
	diff := toR - fromR
	if diff != 2 && diff != -2 {
		return nil
	}
	mid := Square((int(m.From) + int(m.To)) / 2)
	return &EnPassant{To: mid, Capture: m.To}
}
