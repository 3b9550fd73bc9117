package shess

// BoardMap is a 64-slot table indexed by Square, used to hold one value per
// square -- e.g. a precomputed per-source attack Mask, or a Zobrist key.
type BoardMap[T any] [64]T

// At returns the value stored at sq.
func (bm *BoardMap[T]) At(sq Square) T {
	return bm[sq]
}

// Put stores v at sq.
func (bm *BoardMap[T]) Put(sq Square, v T) {
	bm[sq] = v
}

// overlaysImpl folds a BoardMap by OR-ing together the Masks that get
// extracts from the entries named by selected; MaskBoardMap.Overlays is
// the Mask-table form, e.g. KnightMoves.Overlays(myKnights) is every
// square attacked by any knight in myKnights.
func (bm *BoardMap[T]) overlaysImpl(selected Mask, zero Mask, get func(T) Mask) Mask {
	res := zero
	for sq, rest := selected.PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		res = res.Overlay(get(bm[sq]))
	}
	return res
}

// MaskBoardMap is a BoardMap specialized to Mask entries, carrying the
// overlay/overlap folds that the generator leans on (§4.1).
type MaskBoardMap BoardMap[Mask]

// At returns the Mask stored at sq.
func (bm *MaskBoardMap) At(sq Square) Mask { return bm[sq] }

// Put stores m at sq.
func (bm *MaskBoardMap) Put(sq Square, m Mask) { bm[sq] = m }

// Overlays returns the union, over every square in selected, of the Mask
// stored at that square.
func (bm *MaskBoardMap) Overlays(selected Mask) Mask {
	res := Nil()
	for sq, rest := selected.PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		res = res.Overlay(bm[sq])
	}
	return res
}

// Overlaps returns the intersection, over every square in selected, of the
// Mask stored at that square. The empty selection overlaps to Full().
func (bm *MaskBoardMap) Overlaps(selected Mask) Mask {
	res := Full()
	for sq, rest := selected.PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		res = res.Overlap(bm[sq])
	}
	return res
}

// HashBoardMap is a BoardMap specialized to Zobrist keys (§4.8).
type HashBoardMap BoardMap[uint64]

// At returns the key stored at sq.
func (bm *HashBoardMap) At(sq Square) uint64 { return bm[sq] }

// Put stores k at sq.
func (bm *HashBoardMap) Put(sq Square, k uint64) { bm[sq] = k }

// HashMask XORs together the keys of every square in m.
func (bm *HashBoardMap) HashMask(m Mask) uint64 {
	var res uint64
	for sq, rest := m.PopFirst(); sq != NoSquare; sq, rest = rest.PopFirst() {
		res ^= bm[sq]
	}
	return res
}
