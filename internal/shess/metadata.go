package shess

// CastlingRights holds one side's queenside/kingside castling
// entitlements. Rights are only ever lost, never regained, by Apply (§4.7).
type CastlingRights struct {
	OOO bool
	OO  bool
}

// AllCastlingRights returns both rights held.
func AllCastlingRights() CastlingRights {
	return CastlingRights{OOO: true, OO: true}
}

// Update ANDs delta into cr -- a right already lost stays lost.
func (cr *CastlingRights) Update(delta CastlingRights) {
	cr.OOO = cr.OOO && delta.OOO
	cr.OO = cr.OO && delta.OO
}

// CastlingDetail is the geometric description of one side's castling move:
// the rook's and king's origin/destination files on that color's back
// rank, plus the masks (on that back rank) the king and rook must find
// clear to castle. Parameterizing this (rather than hard-coding e1/c1/g1)
// is what lets the generator support Chess960 unchanged (§4.5, §9).
type CastlingDetail struct {
	RookFrom, RookTo File
	KingFrom, KingTo File
	RookPathMask     Mask // path the rook's square must be empty along, back rank only
	KingPathMask     Mask // squares the king must not be attacked on/pass through
}

// CastlingDetails holds one CastlingDetail per side (queenside, kingside).
type CastlingDetails struct {
	OOO, OO CastlingDetail
}

// rankFilesMask returns the eight squares of rank r as a Mask over the given
// file bits (used to place back-rank path masks on White's or Black's
// back rank).
func rankFilesMask(r Rank, files Mask) Mask {
	shift := uint(r) * 8
	return (files & Rank1) << shift
}

// StandardCastlingDetails returns the standard-chess castling geometry:
// rooks on a/h, king on e, castling to c/g, mirrored on the eighth rank
// for Black (the rank itself is selected by the caller via Color).
func StandardCastlingDetails() CastlingDetails {
	return CastlingDetails{
		OOO: CastlingDetail{
			RookFrom: 0, RookTo: 3,
			KingFrom: 4, KingTo: 2,
			RookPathMask: fileRange(0, 3), // a,b,c,d: the rook's full path, inclusive
			KingPathMask: fileRange(2, 4), // c,d,e: the king's full path, inclusive
		},
		OO: CastlingDetail{
			RookFrom: 7, RookTo: 5,
			KingFrom: 4, KingTo: 6,
			RookPathMask: fileRange(5, 7), // f,g,h: the rook's full path, inclusive
			KingPathMask: fileRange(4, 6), // e,f,g: the king's full path, inclusive
		},
	}
}

// fileRange returns a rank-1-relative mask of files [lo,hi] inclusive,
// meant to be shifted onto the correct back rank by the caller.
func fileRange(lo, hi File) Mask {
	var m Mask
	for f := lo; f <= hi; f++ {
		m = m.Set(Square(f))
	}
	return m
}

// onRank returns detail's path masks shifted onto color's back rank.
func (d CastlingDetail) onRank(c Color) CastlingDetail {
	shift := uint(c.StartingRank()) * 8
	d.RookPathMask = d.RookPathMask << shift
	d.KingPathMask = d.KingPathMask << shift
	return d
}

// Select returns the detail for the requested side, in the given color's
// back rank.
func (cd CastlingDetails) Select(side CastlingSide, c Color) CastlingDetail {
	if side == OOO {
		return cd.OOO.onRank(c)
	}
	return cd.OO.onRank(c)
}

// CastlingSide names which castling move: queenside or kingside.
type CastlingSide uint8

const (
	OOO CastlingSide = iota
	OO
)

// EnPassant names a pawn double-push's target square and the square of
// the pawn that can be captured there.
type EnPassant struct {
	To      Square
	Capture Square
}

// Metadata is the non-piece-placement state of a position: side to move,
// move counters, castling rights/geometry, and the en-passant target.
type Metadata struct {
	ToMove Color

	// Tempo is the monotonic half-move counter since game start.
	Tempo int
	// LastChange is the Tempo value at the most recent capture or pawn
	// move -- the fifty(/seventy-five)-move clock is Tempo-LastChange.
	LastChange int

	WhiteCastling CastlingRights
	BlackCastling CastlingRights
	Details       CastlingDetails

	EnPassant *EnPassant // nil if none
}

// NewMetadata returns the metadata of the standard starting position.
func NewMetadata() Metadata {
	return Metadata{
		ToMove:        White,
		Tempo:         0,
		LastChange:    0,
		WhiteCastling: AllCastlingRights(),
		BlackCastling: AllCastlingRights(),
		Details:       StandardCastlingDetails(),
	}
}

// CastlingRightsFor returns the castling rights for color c.
func (md *Metadata) CastlingRightsFor(c Color) CastlingRights {
	if c == White {
		return md.WhiteCastling
	}
	return md.BlackCastling
}

// SetCastlingRightsFor stores cr as color c's castling rights.
func (md *Metadata) SetCastlingRightsFor(c Color, cr CastlingRights) {
	if c == White {
		md.WhiteCastling = cr
	} else {
		md.BlackCastling = cr
	}
}

// HalfMoveClock is Tempo-LastChange, the number of half-moves since the
// last capture or pawn move.
func (md *Metadata) HalfMoveClock() int {
	return md.Tempo - md.LastChange
}

// ForcedDrawClock is the spec's 150-half-move (75-move) forced-draw
// threshold (§4.9, §9: stricter than the 100-half-move claimable rule,
// which this engine doesn't model).
const ForcedDrawClock = 150
