package shess

// HashResult is a Zobrist hash: 63 bits of position payload plus a
// reserved side-to-move flag in the high bit (§4.8).
type HashResult = uint64

// BlackToMove is the reserved side-to-move flag (the high bit).
const BlackToMove HashResult = 1 << 63

// HashBits masks off BlackToMove, leaving just the payload.
const HashBits HashResult = ^BlackToMove

// Seed is the fixed 32-byte PRNG seed used to generate every Zobrist key,
// the literal digits of pi (§4.8, §6), so hash values are reproducible
// across runs and processes -- required for a persisted hash cache to be
// useful at all (see internal/store).
const Seed = "3.141592653589793238462643383279"

// prng is a small xorshift64* generator seeded deterministically from
// Seed, used only to fill the Zobrist tables once at Hasher construction.
type prng struct {
	state uint64
}

func newSeededPRNG() *prng {
	var seed uint64
	for i, c := range []byte(Seed) {
		seed ^= uint64(c) << uint((i%8)*8)
	}
	if seed == 0 {
		seed = 1
	}
	return &prng{state: seed}
}

func (p *prng) next() HashResult {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// halfHasher holds the random keys for one side's pieces and castling
// rights.
type halfHasher struct {
	castling struct{ OOO, OO HashResult }
	kings    HashBoardMap
	queens   HashBoardMap
	rooks    HashBoardMap
	bishops  HashBoardMap
	knights  HashBoardMap
	pawns    HashBoardMap
}

func (h *halfHasher) fill(rng *prng) {
	h.castling.OOO = rng.next() & HashBits
	h.castling.OO = rng.next() & HashBits
	for sq := A1; sq <= H8; sq++ {
		h.kings.Put(sq, rng.next()&HashBits)
		h.queens.Put(sq, rng.next()&HashBits)
		h.rooks.Put(sq, rng.next()&HashBits)
		h.bishops.Put(sq, rng.next()&HashBits)
		h.knights.Put(sq, rng.next()&HashBits)
		h.pawns.Put(sq, rng.next()&HashBits)
	}
}

func (h *halfHasher) hasherFor(pk PieceKind) *HashBoardMap {
	switch pk {
	case King:
		return &h.kings
	case Queen:
		return &h.queens
	case Rook:
		return &h.rooks
	case Bishop:
		return &h.bishops
	case Knight:
		return &h.knights
	case Pawn:
		return &h.pawns
	default:
		return nil
	}
}

func (h *halfHasher) hashPiece(pk PieceKind, sq Square) HashResult {
	if bm := h.hasherFor(pk); bm != nil {
		return bm.At(sq)
	}
	return 0
}

func (h *halfHasher) hash(hbb *HalfBitBoard) HashResult {
	return h.kings.HashMask(hbb.Kings.AsMask()) ^
		h.queens.HashMask(hbb.Queens.AsMask()) ^
		h.rooks.HashMask(hbb.Rooks.AsMask()) ^
		h.bishops.HashMask(hbb.Bishops.AsMask()) ^
		h.knights.HashMask(hbb.Knights.AsMask()) ^
		h.pawns.HashMask(hbb.Pawns.AsMask())
}

func (h *halfHasher) hashCastle(cr CastlingRights) HashResult {
	var res HashResult
	if cr.OOO {
		res ^= h.castling.OOO
	}
	if cr.OO {
		res ^= h.castling.OO
	}
	return res
}

// Hasher holds the Zobrist random tables and computes full and
// incremental position hashes (§4.8). It is built once and is
// thereafter read-only (§5).
type Hasher struct {
	enPassantFile [8]HashResult
	white, black  halfHasher
}

// NewHasher builds a Hasher from the fixed Seed.
func NewHasher() *Hasher {
	rng := newSeededPRNG()
	h := &Hasher{}
	for f := 0; f < 8; f++ {
		h.enPassantFile[f] = rng.next() & HashBits
	}
	h.white.fill(rng)
	h.black.fill(rng)
	return h
}

func (h *Hasher) halfFor(c Color) *halfHasher {
	if c == White {
		return &h.white
	}
	return &h.black
}

func hashToMove(c Color) HashResult {
	if c == Black {
		return BlackToMove
	}
	return 0
}

func (h *Hasher) hashEnPassant(ep *EnPassant) HashResult {
	if ep == nil {
		return 0
	}
	return h.enPassantFile[ep.To.File()]
}

// HashFull computes the hash of b from scratch: piece-square entries for
// every occupied square, castling-right entries for every held right, the
// en-passant file entry if set, and the side-to-move flag iff Black.
func (h *Hasher) HashFull(b *BitBoard) HashResult {
	md := &b.Metadata
	return hashToMove(md.ToMove) ^
		h.hashEnPassant(md.EnPassant) ^
		h.white.hashCastle(md.WhiteCastling) ^
		h.black.hashCastle(md.BlackCastling) ^
		h.white.hash(&b.White) ^
		h.black.hash(&b.Black)
}

// Delta computes the hash of the position after playing mv, given the
// pre-move Metadata and the pre-move position's hash (§4.8). It must
// equal HashFull of the resulting position (§8 invariant 6).
func (h *Hasher) Delta(metadata *Metadata, hash HashResult, mv Move) HashResult {
	color, kind := mv.ColorPiece.Split()
	opp := color.Other()
	same, opposite := h.halfFor(color), h.halfFor(opp)

	hash &= HashBits
	hash ^= hashToMove(opp)

	if mv.IsPromotion() {
		hash ^= same.hashPiece(Pawn, mv.From) ^ same.hashPiece(mv.Promotion, mv.To)
	} else {
		hash ^= same.hashPiece(kind, mv.From) ^ same.hashPiece(kind, mv.To)
	}

	if mv.IsCapture() {
		hash ^= opposite.hashPiece(mv.CapturePk, mv.CaptureSq)
	}

	if mv.IsCastling() {
		rank := color.StartingRank()
		detail := metadata.Details.Select(mv.Castling, color)
		rookFrom := NewSquare(detail.RookFrom, rank)
		rookTo := NewSquare(detail.RookTo, rank)
		hash ^= same.hashPiece(Rook, rookFrom) ^ same.hashPiece(Rook, rookTo)
	}

	sameCast := metadata.CastlingRightsFor(color)
	oppCast := metadata.CastlingRightsFor(opp)
	hash ^= same.hashCastle(sameCast) ^ opposite.hashCastle(oppCast)

	sameDelta, oppDelta := mv.CastlingRightsDelta(metadata.Details)
	sameCast.Update(sameDelta)
	oppCast.Update(oppDelta)
	hash ^= same.hashCastle(sameCast) ^ opposite.hashCastle(oppCast)

	hash ^= h.hashEnPassant(metadata.EnPassant) ^ h.hashEnPassant(mv.EnPassantAfter())

	return hash
}
