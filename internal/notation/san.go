package notation

import (
	"strconv"
	"strings"

	"github.com/shess-dev/shess/internal/shess"
)

// ToSAN renders m, played from position b, in Standard Algebraic
// Notation, including a trailing '+' or '#' if m gives check or mate.
func ToSAN(b *shess.BitBoard, m shess.Move) string {
	if m.IsNoMove() {
		return "-"
	}

	if m.IsCastling() {
		s := "O-O"
		if m.Castling == shess.OOO {
			s = "O-O-O"
		}
		return s + checkSuffix(b, m)
	}

	_, kind := m.ColorPiece.Split()

	var sb strings.Builder
	if kind != shess.Pawn {
		sb.WriteByte(kind.Char())
		sb.WriteString(disambiguation(b, m, kind))
	}

	if m.IsCapture() {
		if kind == shess.Pawn {
			sb.WriteByte('a' + byte(m.From.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Char())
	}

	sb.WriteString(checkSuffix(b, m))
	return sb.String()
}

func checkSuffix(b *shess.BitBoard, m shess.Move) string {
	next := b.Apply(m)
	moves := next.GenerateMoves()
	if len(moves) > 0 {
		if next.IsInCheck(next.Metadata.ToMove) {
			return "+"
		}
		return ""
	}
	if next.IsInCheck(next.Metadata.ToMove) {
		return "#"
	}
	return ""
}

// disambiguation returns the minimal file/rank/square prefix needed to
// pick m.From out from among other legal moves of the same kind landing
// on the same square (§6).
func disambiguation(b *shess.BitBoard, m shess.Move, kind shess.PieceKind) string {
	var sameFile, sameRank, any bool
	for _, other := range b.GenerateMoves() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		_, otherKind := other.ColorPiece.Split()
		if otherKind != kind {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	if !sameFile {
		return string(rune('a' + byte(m.From.File())))
	}
	if !sameRank {
		return string(rune('1' + byte(m.From.Rank())))
	}
	return m.From.String()
}

// ParseSAN resolves s against the legal moves of b, returning
// ErrParseFailure if s isn't recognizable notation, ErrNoSuchMove if no
// legal move matches, or ErrAmbiguousMove if more than one does.
func ParseSAN(s string, b *shess.BitBoard) (shess.Move, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")
	s = strings.TrimSuffix(s, "!")
	s = strings.TrimSuffix(s, "?")

	moves := b.GenerateMoves()

	if s == "O-O" || s == "0-0" {
		return findCastling(moves, shess.OO)
	}
	if s == "O-O-O" || s == "0-0-0" {
		return findCastling(moves, shess.OOO)
	}

	var promo shess.PieceKind = shess.NoPieceKind
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+1 >= len(s) {
			return shess.NoMove, ErrParseFailure
		}
		pk, ok := shess.PieceKindFromChar(s[idx+1])
		if !ok {
			return shess.NoMove, ErrParseFailure
		}
		promo = pk
		s = s[:idx]
	}

	isCapture := strings.ContainsRune(s, 'x')
	s = strings.ReplaceAll(s, "x", "")

	kind := shess.Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		pk, ok := shess.PieceKindFromChar(s[0])
		if !ok {
			return shess.NoMove, ErrParseFailure
		}
		kind = pk
		s = s[1:]
	}

	if len(s) < 2 {
		return shess.NoMove, ErrParseFailure
	}
	dest, err := shess.ParseSquare(s[len(s)-2:])
	if err != nil {
		return shess.NoMove, ErrParseFailure
	}
	s = s[:len(s)-2]

	disambigFile := -1
	disambigRank := -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		default:
			return shess.NoMove, ErrParseFailure
		}
	}

	var candidates []shess.Move
	for _, m := range moves {
		if m.IsCastling() || m.To != dest {
			continue
		}
		_, mk := m.ColorPiece.Split()
		if mk != kind {
			continue
		}
		if disambigFile >= 0 && int(m.From.File()) != disambigFile {
			continue
		}
		if disambigRank >= 0 && int(m.From.Rank()) != disambigRank {
			continue
		}
		if isCapture != m.IsCapture() {
			continue
		}
		if promo != shess.NoPieceKind && m.Promotion != promo {
			continue
		}
		if promo == shess.NoPieceKind && m.IsPromotion() {
			continue
		}
		candidates = append(candidates, m)
	}

	switch len(candidates) {
	case 0:
		return shess.NoMove, ErrNoSuchMove
	case 1:
		return candidates[0], nil
	default:
		return shess.NoMove, ErrAmbiguousMove
	}
}

func findCastling(moves []shess.Move, side shess.CastlingSide) (shess.Move, error) {
	for _, m := range moves {
		if m.IsCastling() && m.Castling == side {
			return m, nil
		}
	}
	return shess.NoMove, ErrNoSuchMove
}

// LineToSAN renders a sequence of moves played in order from b, numbered
// like a PGN movetext body (§6, supplemented move-log feature).
func LineToSAN(b shess.BitBoard, moves []shess.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if b.Metadata.ToMove == shess.White {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(b.Metadata.Tempo/2 + 1))
			sb.WriteByte('.')
			sb.WriteByte(' ')
		} else if i == 0 {
			sb.WriteString(strconv.Itoa(b.Metadata.Tempo/2 + 1))
			sb.WriteString("... ")
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(ToSAN(&b, m))
		b = b.Apply(m)
	}
	return sb.String()
}
