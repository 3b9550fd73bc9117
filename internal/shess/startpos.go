package shess

// knightPlacementTable enumerates the 10 ways two knights can occupy the
// squares left over once both bishops and the queen are placed, indexed
// by the Chess960 knight digit (0-9) -- the standard numbering scheme's
// table for that digit.
var knightPlacementTable = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// StartingArray computes the back-rank piece arrangement for Chess960
// position number n (0-959), using the standard Scharnagl numbering: the
// light- and dark-squared bishops are placed first (n mod 4 and the next
// digit mod 4), then the queen among the remaining squares (next digit
// mod 6), then the two knights (remaining digit indexes
// knightPlacementTable), and finally the two rooks and king fill what's
// left, rook-king-rook in file order so the king always starts between
// the rooks (§9, scenario 6).
func StartingArray(n int) [8]PieceKind {
	var arr [8]PieceKind
	for i := range arr {
		arr[i] = NoPieceKind
	}

	lightBishop := n % 4
	n /= 4
	arr[lightBishop*2+1] = Bishop

	darkBishop := n % 4
	n /= 4
	arr[darkBishop*2] = Bishop

	queenSlot := n % 6
	n /= 6
	empty := emptyFiles(arr)
	arr[empty[queenSlot]] = Queen

	knights := knightPlacementTable[n%10]
	empty = emptyFiles(arr)
	arr[empty[knights[0]]] = Knight
	arr[empty[knights[1]]] = Knight

	empty = emptyFiles(arr)
	arr[empty[0]] = Rook
	arr[empty[1]] = King
	arr[empty[2]] = Rook

	return arr
}

func emptyFiles(arr [8]PieceKind) []int {
	var out []int
	for i, pk := range arr {
		if pk == NoPieceKind {
			out = append(out, i)
		}
	}
	return out
}

// NewChess960BitBoard returns the starting position for Chess960 game
// number n, with CastlingDetails derived from wherever the rooks and king
// actually land (§9).
func NewChess960BitBoard(n int) BitBoard {
	arr := StartingArray(n)
	var b BitBoard

	var kingFile, rookLo, rookHi File
	for f, pk := range arr {
		if pk == King {
			kingFile = File(f)
		}
	}
	foundRook := false
	for f, pk := range arr {
		if pk != Rook {
			continue
		}
		if !foundRook {
			rookLo = File(f)
			foundRook = true
		} else {
			rookHi = File(f)
		}
	}

	details := CastlingDetails{
		OOO: CastlingDetail{
			RookFrom: rookLo, RookTo: 3,
			KingFrom: kingFile, KingTo: 2,
			RookPathMask: fileSpan(rookLo, 3),
			KingPathMask: fileSpan(kingFile, 2),
		},
		OO: CastlingDetail{
			RookFrom: rookHi, RookTo: 5,
			KingFrom: kingFile, KingTo: 6,
			RookPathMask: fileSpan(rookHi, 5),
			KingPathMask: fileSpan(kingFile, 6),
		},
	}

	b.Metadata = Metadata{
		ToMove:        White,
		WhiteCastling: AllCastlingRights(),
		BlackCastling: AllCastlingRights(),
		Details:       details,
	}

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

	for f := File(0); f <= 7; f++ {
		place(&b.White, arr[f], NewSquare(f, 0))
		place(&b.White, Pawn, NewSquare(f, 1))
		place(&b.Black, Pawn, NewSquare(f, 6))
		place(&b.Black, arr[f], NewSquare(f, 7))
	}
	return b
}

// fileSpan returns an inclusive rank-1-relative mask between files a and
// b regardless of order (a castling path can run in either direction
// depending on where Chess960 happened to drop the rook).
func fileSpan(a, b File) Mask {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return fileRange(lo, hi)
}
