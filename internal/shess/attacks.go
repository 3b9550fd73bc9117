package shess

import "math/bits"

// Precomputed, per-square move/attack tables built once at init() so no
// runtime cost is paid generating them (§4.2). Table contents never change
// after init.
var (
	KnightMoves MaskBoardMap
	KingMoves   MaskBoardMap

	// Pawn push rays: 1 square normally, 2 from the starting rank. Actual
	// reachability against an occupancy is computed by SlideStop.
	whitePawnPushes MaskBoardMap
	blackPawnPushes MaskBoardMap

	// Pawn attack (capture) squares: the two forward diagonals.
	whitePawnAttacks MaskBoardMap
	blackPawnAttacks MaskBoardMap

	// Full empty-board rays, one table per direction, used by sliding
	// pieces. North/NorthEast/NorthWest/East are "ascending" (bit index
	// increases with distance); South/SouthWest/SouthEast/West are
	// "descending".
	rayNorth, raySouth, rayEast, rayWest             MaskBoardMap
	rayNorthEast, rayNorthWest, raySouthEast, raySouthWest MaskBoardMap
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		KnightMoves.Put(sq, buildKnightMoves(sq))
		KingMoves.Put(sq, buildKingMoves(sq))

		whitePawnPushes.Put(sq, buildPawnPush(sq, White))
		blackPawnPushes.Put(sq, buildPawnPush(sq, Black))
		whitePawnAttacks.Put(sq, buildPawnAttacks(sq, White))
		blackPawnAttacks.Put(sq, buildPawnAttacks(sq, Black))

		rayNorth.Put(sq, buildRay(sq, North))
		raySouth.Put(sq, buildRay(sq, South))
		rayEast.Put(sq, buildRay(sq, East))
		rayWest.Put(sq, buildRay(sq, West))
		rayNorthEast.Put(sq, buildRay(sq, NorthEast))
		rayNorthWest.Put(sq, buildRay(sq, NorthWest))
		raySouthEast.Put(sq, buildRay(sq, SouthEast))
		raySouthWest.Put(sq, buildRay(sq, SouthWest))
	}
}

func buildKnightMoves(sq Square) Mask {
	var m Mask
	for _, d := range knightDirs {
		if to, ok := sq.Go(d); ok {
			m = m.Set(to)
		}
	}
	return m
}

func buildKingMoves(sq Square) Mask {
	var m Mask
	for _, d := range [8]Dir{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest} {
		if to, ok := sq.Go(d); ok {
			m = m.Set(to)
		}
	}
	return m
}

func buildPawnPush(sq Square, c Color) Mask {
	dir := North
	startRank := Rank(1)
	if c == Black {
		dir = South
		startRank = 6
	}
	var m Mask
	one, ok := sq.Go(dir)
	if !ok {
		return m
	}
	m = m.Set(one)
	if sq.Rank() == startRank {
		if two, ok := one.Go(dir); ok {
			m = m.Set(two)
		}
	}
	return m
}

func buildPawnAttacks(sq Square, c Color) Mask {
	var dirs [2]Dir
	if c == White {
		dirs = [2]Dir{NorthEast, NorthWest}
	} else {
		dirs = [2]Dir{SouthEast, SouthWest}
	}
	var m Mask
	for _, d := range dirs {
		if to, ok := sq.Go(d); ok {
			m = m.Set(to)
		}
	}
	return m
}

func buildRay(sq Square, d Dir) Mask {
	var m Mask
	cur := sq
	for {
		next, ok := cur.Go(d)
		if !ok {
			break
		}
		m = m.Set(next)
		cur = next
	}
	return m
}

// ascendingDir reports whether d's bit index increases with distance from
// the source square -- needed by SlideStop's branchless blocker search.
func ascendingDir(d Dir) bool {
	return d == North || d == NorthEast || d == NorthWest || d == East
}

// SlideStop truncates a full empty-board ray against an occupancy,
// implementing §4.3: the reachable squares are those strictly between the
// source and the nearest blocker, plus the blocker itself if it belongs to
// "other" (a capturable piece). When the ray runs in a descending
// direction the word is bit-reversed, the ascending trick applied, then
// reversed back.
func SlideStop(ascending bool, ray, same, other Mask) Mask {
	blockers := ray & (same | other)
	if blockers == 0 {
		return ray
	}
	if ascending {
		nearestInclusive := ray & ((blockers - 1) ^ blockers)
		return nearestInclusive &^ same
	}
	rRay := Mask(bits.Reverse64(uint64(ray)))
	rBlockers := Mask(bits.Reverse64(uint64(blockers)))
	rNearest := rRay & ((rBlockers - 1) ^ rBlockers)
	nearestInclusive := Mask(bits.Reverse64(uint64(rNearest)))
	return nearestInclusive &^ same
}

// rookDirs and bishopDirs are the direction/ray-table pairs a rook/bishop
// slides along; queen uses the union of both.
type rayDir struct {
	dir       Dir
	ascending bool
	table     *MaskBoardMap
}

var rookDirs = [4]rayDir{
	{North, true, &rayNorth},
	{South, false, &raySouth},
	{East, true, &rayEast},
	{West, false, &rayWest},
}

var bishopDirs = [4]rayDir{
	{NorthEast, true, &rayNorthEast},
	{NorthWest, true, &rayNorthWest},
	{SouthEast, false, &raySouthEast},
	{SouthWest, false, &raySouthWest},
}

// slidingDestinations unions SlideStop over the given rays for every
// source square in pieces.
func slidingDestinations(pieces Mask, dirs [4]rayDir, same, other Mask) Mask {
	var res Mask
	for sq, rest := pieces.PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		for _, rd := range dirs {
			res = res.Overlay(SlideStop(rd.ascending, rd.table.At(sq), same, other))
		}
	}
	return res
}
