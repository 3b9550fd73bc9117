package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shess-dev/shess/internal/shess"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a position. Castling fields follow
// standard FEN (KQkq) for the standard back rank; a file letter instead
// of KQkq (Shredder-FEN / X-FEN, e.g. "HAha") names the rook's file
// directly and is accepted too (§9). FEN writes castling rights only as
// KQkq, so a rook file set this way is not written back out.
func ParseFEN(fen string) (shess.BitBoard, error) {
	var b shess.BitBoard

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return b, fmt.Errorf("%w: need at least 4 FEN fields, got %d", ErrParseFailure, len(fields))
	}

	var white, black shess.HalfBitBoard
	if err := parsePlacement(fields[0], &white, &black); err != nil {
		return b, err
	}

	var toMove shess.Color
	switch fields[1] {
	case "w":
		toMove = shess.White
	case "b":
		toMove = shess.Black
	default:
		return b, fmt.Errorf("%w: bad side to move %q", ErrParseFailure, fields[1])
	}

	details, whiteRights, blackRights, err := parseCastling(fields[2], white, black)
	if err != nil {
		return b, err
	}

	var ep *shess.EnPassant
	if fields[3] != "-" {
		toSq, err := shess.ParseSquare(fields[3])
		if err != nil {
			return b, fmt.Errorf("%w: bad en passant square %q", ErrParseFailure, fields[3])
		}
		capRank := toSq.Rank() - 1
		if toMove == shess.Black {
			capRank = toSq.Rank() + 1
		}
		ep = &shess.EnPassant{To: toSq, Capture: shess.NewSquare(toSq.File(), capRank)}
	}

	tempo := 0
	lastChange := 0
	if len(fields) > 4 {
		hmc, err := strconv.Atoi(fields[4])
		if err != nil {
			return b, fmt.Errorf("%w: bad half-move clock %q", ErrParseFailure, fields[4])
		}
		lastChange = -hmc
	}
	if len(fields) > 5 {
		fullMove, err := strconv.Atoi(fields[5])
		if err != nil {
			return b, fmt.Errorf("%w: bad full-move number %q", ErrParseFailure, fields[5])
		}
		tempo = (fullMove - 1) * 2
		if toMove == shess.Black {
			tempo++
		}
		lastChange += tempo
	}

	b.White = white
	b.Black = black
	b.Metadata = shess.Metadata{
		ToMove:        toMove,
		Tempo:         tempo,
		LastChange:    lastChange,
		WhiteCastling: whiteRights,
		BlackCastling: blackRights,
		Details:       details,
		EnPassant:     ep,
	}
	return b, nil
}

func parsePlacement(placement string, white, black *shess.HalfBitBoard) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrParseFailure, len(ranks))
	}

	place := func(h *shess.HalfBitBoard, pk shess.PieceKind, sq shess.Square) {
		switch pk {
		case shess.King:
			h.Kings = shess.Kings(h.Kings.AsMask().Set(sq))
		case shess.Queen:
			h.Queens = shess.Queens(h.Queens.AsMask().Set(sq))
		case shess.Rook:
			h.Rooks = shess.Rooks(h.Rooks.AsMask().Set(sq))
		case shess.Bishop:
			h.Bishops = shess.Bishops(h.Bishops.AsMask().Set(sq))
		case shess.Knight:
			h.Knights = shess.Knights(h.Knights.AsMask().Set(sq))
		case shess.Pawn:
			h.Pawns = shess.Pawns(h.Pawns.AsMask().Set(sq))
		}
	}

	for i, rankStr := range ranks {
		rank := shess.Rank(7 - i)
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares on rank %d", ErrParseFailure, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pk, ok := shess.PieceKindFromChar(byte(c) & ^byte(0x20))
			if !ok {
				return fmt.Errorf("%w: bad piece char %q", ErrParseFailure, c)
			}
			sq := shess.NewSquare(shess.File(file), rank)
			if c >= 'a' && c <= 'z' {
				place(black, pk, sq)
			} else {
				place(white, pk, sq)
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d doesn't sum to 8 files", ErrParseFailure, rank+1)
		}
	}
	return nil
}

func parseCastling(field string, white, black shess.HalfBitBoard) (shess.CastlingDetails, shess.CastlingRights, shess.CastlingRights, error) {
	details := shess.StandardCastlingDetails()
	var whiteRights, blackRights shess.CastlingRights
	if field == "-" {
		return details, whiteRights, blackRights, nil
	}

	whiteKingFile := fileOf(white.Kings.AsMask())
	blackKingFile := fileOf(black.Kings.AsMask())

	for _, c := range field {
		switch c {
		case 'K':
			whiteRights.OO = true
		case 'Q':
			whiteRights.OOO = true
		case 'k':
			blackRights.OO = true
		case 'q':
			blackRights.OOO = true
		default:
			f, ok := fileChar(byte(c))
			if !ok {
				return details, whiteRights, blackRights, fmt.Errorf("%w: bad castling char %q", ErrParseFailure, c)
			}
			if c >= 'A' && c <= 'Z' {
				if f > whiteKingFile {
					whiteRights.OO = true
					details.OO.RookFrom = f
				} else {
					whiteRights.OOO = true
					details.OOO.RookFrom = f
				}
			} else {
				if f > blackKingFile {
					blackRights.OO = true
					details.OO.RookFrom = f
				} else {
					blackRights.OOO = true
					details.OOO.RookFrom = f
				}
			}
		}
	}
	return details, whiteRights, blackRights, nil
}

func fileOf(m shess.Mask) shess.File {
	sq := m.First()
	if sq == shess.NoSquare {
		return 4
	}
	return sq.File()
}

func fileChar(c byte) (shess.File, bool) {
	switch {
	case c >= 'a' && c <= 'h':
		return shess.File(c - 'a'), true
	case c >= 'A' && c <= 'H':
		return shess.File(c - 'A'), true
	default:
		return 0, false
	}
}

// FEN renders b as a FEN string.
func FEN(b *shess.BitBoard) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := shess.NewSquare(shess.File(file), shess.Rank(rank))
			cp := b.PieceAt(sq)
			if cp == shess.NoColorPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(cp.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.Metadata.ToMove == shess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castle := castlingField(b.Metadata.WhiteCastling, b.Metadata.BlackCastling)
	sb.WriteString(castle)

	sb.WriteByte(' ')
	if b.Metadata.EnPassant != nil {
		sb.WriteString(b.Metadata.EnPassant.To.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.Metadata.HalfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.Metadata.Tempo/2 + 1))

	return sb.String()
}

func castlingField(white, black shess.CastlingRights) string {
	var sb strings.Builder
	if white.OO {
		sb.WriteByte('K')
	}
	if white.OOO {
		sb.WriteByte('Q')
	}
	if black.OO {
		sb.WriteByte('k')
	}
	if black.OOO {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
