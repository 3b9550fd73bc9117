package shess

// Each PieceSet variant is a newtype over Mask giving it a piece identity
// (§3/§4.2): the occupation mask of every piece of that kind for one side,
// plus (via package-level tables) the precomputed attack geometry.
type (
	Kings   Mask
	Queens  Mask
	Rooks   Mask
	Bishops Mask
	Knights Mask
	Pawns   Mask
)

// AsMask returns the underlying occupation mask.
func (k Kings) AsMask() Mask   { return Mask(k) }
func (q Queens) AsMask() Mask  { return Mask(q) }
func (r Rooks) AsMask() Mask   { return Mask(r) }
func (b Bishops) AsMask() Mask { return Mask(b) }
func (n Knights) AsMask() Mask { return Mask(n) }
func (p Pawns) AsMask() Mask   { return Mask(p) }

// Without returns the set with sq removed, used to build the
// "hypothetical capture" occupancy of §4.4.
func (k Kings) Without(sq Square) Kings     { return Kings(Mask(k).Unset(sq)) }
func (q Queens) Without(sq Square) Queens   { return Queens(Mask(q).Unset(sq)) }
func (r Rooks) Without(sq Square) Rooks     { return Rooks(Mask(r).Unset(sq)) }
func (b Bishops) Without(sq Square) Bishops { return Bishops(Mask(b).Unset(sq)) }
func (n Knights) Without(sq Square) Knights { return Knights(Mask(n).Unset(sq)) }
func (p Pawns) Without(sq Square) Pawns     { return Pawns(Mask(p).Unset(sq)) }

// Threats returns every square this king threatens.
func (k Kings) Threats() Mask {
	return KingMoves.Overlays(Mask(k))
}

// Threats returns every square these knights threaten.
func (n Knights) Threats() Mask {
	return KnightMoves.Overlays(Mask(n))
}

// Threats returns every square these pawns (of color c) threaten.
func (p Pawns) Threats(c Color) Mask {
	if c == White {
		return whitePawnAttacks.Overlays(Mask(p))
	}
	return blackPawnAttacks.Overlays(Mask(p))
}

// Threats returns every square these rooks threaten given the combined
// (both-sides) blocker occupancy blockers -- see §4.4 step 5: the ray
// stops at, and includes, the first piece of either color.
func (r Rooks) Threats(blockers Mask) Mask {
	return slidingDestinations(Mask(r), rookDirs, Nil(), blockers)
}

// Threats returns every square these bishops threaten, analogous to Rooks.
func (b Bishops) Threats(blockers Mask) Mask {
	return slidingDestinations(Mask(b), bishopDirs, Nil(), blockers)
}

// Threats returns every square these queens threaten: rook rays union
// bishop rays.
func (q Queens) Threats(blockers Mask) Mask {
	return slidingDestinations(Mask(q), rookDirs, Nil(), blockers).
		Overlay(slidingDestinations(Mask(q), bishopDirs, Nil(), blockers))
}

// PushDestinations returns the squares these pawns (color c) can push to,
// truncated against the combined occupancy (a piece of either side blocks
// a push, and a push can never capture -- §4.5).
func (p Pawns) PushDestinations(c Color, occupancy Mask) Mask {
	table := &whitePawnPushes
	if c == Black {
		table = &blackPawnPushes
	}
	var res Mask
	for sq, rest := Mask(p).PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		ascending := c == White
		res = res.Overlay(SlideStop(ascending, table.At(sq), occupancy, Nil()))
	}
	return res
}

// CaptureDestinations returns the squares these pawns (color c) can
// capture on, i.e. their attack squares intersected with opponent.
func (p Pawns) CaptureDestinations(c Color, opponent Mask) Mask {
	return p.Threats(c) & opponent
}
