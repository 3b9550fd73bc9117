// Command shess is a terminal collaborator for exploring positions: it
// reads moves and inspection commands from stdin and prints the board,
// legal moves, and search results back.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/shess-dev/shess/internal/notation"
	"github.com/shess-dev/shess/internal/search"
	"github.com/shess-dev/shess/internal/shess"
	"github.com/shess-dev/shess/internal/store"
)

var (
	dbDir    = flag.String("db", "", "directory for the persisted evaluation cache (disabled if empty)")
	startFEN = flag.String("fen", "", "starting position FEN (default: standard start)")
	depth    = flag.Int("depth", 4, "default search depth in plies for the 'go' command")
)

func main() {
	flag.Parse()

	var cache *store.Cache
	if *dbDir != "" {
		c, err := store.Open(*dbDir)
		if err != nil {
			log.Fatalf("opening eval cache: %v", err)
		}
		cache = c
		defer c.Close()
	}

	hasher := shess.NewHasher()
	session := newSession(hasher, cache)
	if *startFEN != "" {
		if err := session.reset(*startFEN); err != nil {
			log.Fatalf("parsing -fen: %v", err)
		}
	} else {
		session.reset(notation.StartFEN)
	}

	fmt.Println("shess -- type a SAN move or a command ('help' for a list)")
	repl(session)
}

// session is the REPL's mutable state: the current position, its
// Zobrist hash, and the repetition chain since the session began.
type session struct {
	hasher    *shess.Hasher
	cache     *store.Cache
	rng       *rand.Rand
	board     shess.BitBoard
	hash      shess.HashResult
	history   *shess.History
	moveLog   []shess.Move
	rootBoard shess.BitBoard
}

func newSession(hasher *shess.Hasher, cache *store.Cache) *session {
	return &session{hasher: hasher, cache: cache, rng: rand.New(rand.NewSource(1))}
}

func (s *session) reset(fen string) error {
	b, err := notation.ParseFEN(fen)
	if err != nil {
		return err
	}
	s.board = b
	s.rootBoard = b
	s.hash = s.hasher.HashFull(&b)
	s.history = (&shess.History{}).Push(s.hash)
	s.moveLog = nil
	return nil
}

func (s *session) play(m shess.Move) {
	s.hash = s.hasher.Delta(&s.board.Metadata, s.hash, m)
	s.board = s.board.Apply(m)
	s.history = s.history.Push(s.hash)
	s.moveLog = append(s.moveLog, m)
}

// resyncAfterEdit re-derives the hash from scratch and rebases the
// history and move log on the just-edited board: i/d/w/b mutate s.board
// directly rather than through Apply, so the incremental Hasher.Delta
// chain and the SAN move log (both relative to the prior rootBoard) no
// longer describe how the position was reached.
func (s *session) resyncAfterEdit() {
	s.hash = s.hasher.HashFull(&s.board)
	s.history = (&shess.History{}).Push(s.hash)
	s.rootBoard = s.board
	s.moveLog = nil
}

func repl(s *session) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !dispatch(s, line) {
			return
		}
	}
}

func dispatch(s *session, line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		printHelp()
	case "new":
		fen := notation.StartFEN
		if len(args) > 0 {
			fen = strings.Join(args, " ")
		}
		if err := s.reset(fen); err != nil {
			fmt.Println("error:", err)
		}
	case "reset":
		fen := notation.FEN(&s.rootBoard)
		if err := s.reset(fen); err != nil {
			fmt.Println("error:", err)
		}
	case "ls":
		printMoves(s)
	case "log":
		fmt.Println(notation.LineToSAN(s.rootBoard, s.moveLog))
	case "meta":
		printMeta(s)
	case "threats":
		printThreats(s, args)
	case "i":
		placePiece(s, args)
	case "d":
		deletePiece(s, args)
	case "cast":
		printCastling(s, args)
	case "w":
		setToMove(s, shess.White)
	case "b":
		setToMove(s, shess.Black)
	case "r":
		n := 1
		if len(args) > 0 {
			if v, err := strconv.Atoi(args[0]); err == nil {
				n = v
			}
		}
		randomMove(s, n)
	case "go":
		d := *depth
		if len(args) > 0 {
			if v, err := strconv.Atoi(args[0]); err == nil {
				d = v
			}
		}
		runSearch(s, d)
	default:
		playSAN(s, line)
	}
	return true
}

func printHelp() {
	fmt.Println(`commands:
  new [FEN]          start a new game (standard start if FEN omitted)
  reset              return to the start of the current game
  ls                 list legal moves in SAN
  log                print the move log
  meta               print side to move, castling rights, en passant, clocks
  threats [w|b]      print squares threatened by a side
  i <piece> <square> place a piece, e.g. i N f3, i q d8
  d <square>         delete the piece on a square
  cast [w|b] [ooo|oo] print castling geometry (king/rook files)
  w / b              set the side to move to White / Black
  r [n]              play n random legal moves (default 1)
  go [depth]          search and report the best move
  <SAN move>          play a move, e.g. e4, Nf3, O-O, exd5, e8=Q
  quit / exit`)
}

func printMoves(s *session) {
	moves := s.board.GenerateMoves()
	sans := make([]string, len(moves))
	for i, m := range moves {
		sans[i] = notation.ToSAN(&s.board, m)
	}
	fmt.Println(strings.Join(sans, " "))
}

func printMeta(s *session) {
	md := s.board.Metadata
	fmt.Printf("to move: %s  tempo: %d  half-move clock: %d\n", md.ToMove, md.Tempo, md.HalfMoveClock())
	fmt.Printf("white castling: OOO=%v OO=%v  black castling: OOO=%v OO=%v\n",
		md.WhiteCastling.OOO, md.WhiteCastling.OO, md.BlackCastling.OOO, md.BlackCastling.OO)
	if md.EnPassant != nil {
		fmt.Printf("en passant: target %s, capture %s\n", md.EnPassant.To, md.EnPassant.Capture)
	} else {
		fmt.Println("en passant: none")
	}
	fmt.Println("fen:", notation.FEN(&s.board))
}

func printThreats(s *session, args []string) {
	color := s.board.Metadata.ToMove.Other()
	if len(args) > 0 {
		switch args[0] {
		case "w":
			color = shess.White
		case "b":
			color = shess.Black
		}
	}
	threats := s.board.Side(color).Threats(color, s.board.Occupation(), shess.NoSquare)
	fmt.Println(threats.String())
}

// placePiece implements "i <piece> <square>": piece is a FEN-style
// letter (uppercase White, lowercase Black); any piece already on the
// square is removed first.
func placePiece(s *session, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: i <piece> <square>")
		return
	}
	if len(args[0]) != 1 {
		fmt.Println("error: piece must be a single letter")
		return
	}
	c := args[0][0]
	pk, ok := shess.PieceKindFromChar(byte(c) & ^byte(0x20))
	if !ok {
		fmt.Println("error: bad piece letter", args[0])
		return
	}
	color := shess.White
	if c >= 'a' && c <= 'z' {
		color = shess.Black
	}

	sq, err := shess.ParseSquare(args[1])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	removeOccupant(s, sq)
	s.board.Side(color).XorPieceMask(pk, sq.AsMask())
	s.resyncAfterEdit()
}

// deletePiece implements "d <square>".
func deletePiece(s *session, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: d <square>")
		return
	}
	sq, err := shess.ParseSquare(args[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !removeOccupant(s, sq) {
		fmt.Println("square is already empty")
		return
	}
	s.resyncAfterEdit()
}

// removeOccupant clears whichever side occupies sq, reporting whether
// anything was there to remove.
func removeOccupant(s *session, sq shess.Square) bool {
	cp := s.board.PieceAt(sq)
	if cp == shess.NoColorPiece {
		return false
	}
	color, kind := cp.Split()
	s.board.Side(color).XorPieceMask(kind, sq.AsMask())
	return true
}

// setToMove implements "w"/"b": set the side to move directly, without
// playing a move.
func setToMove(s *session, c shess.Color) {
	s.board.Metadata.ToMove = c
	s.resyncAfterEdit()
}

func printCastling(s *session, args []string) {
	color := s.board.Metadata.ToMove
	side := shess.OO
	for _, a := range args {
		switch a {
		case "w":
			color = shess.White
		case "b":
			color = shess.Black
		case "ooo":
			side = shess.OOO
		case "oo":
			side = shess.OO
		}
	}
	detail := s.board.Metadata.Details.Select(side, color)
	fmt.Printf("king %d->%d  rook %d->%d\n", detail.KingFrom, detail.KingTo, detail.RookFrom, detail.RookTo)
}

// randomMove implements "r [n]": play n uniformly random legal moves,
// stopping early if the game ends.
func randomMove(s *session, n int) {
	for i := 0; i < n; i++ {
		moves := s.board.GenerateMoves()
		end := shess.Determine(&s.board, moves, s.history, s.hash)
		if end.IsOver() {
			fmt.Println("game over:", describeEnd(end))
			return
		}
		m := moves[s.rng.Intn(len(moves))]
		fmt.Println(notation.ToSAN(&s.board, m))
		s.play(m)
	}
}

func playSAN(s *session, text string) {
	m, err := notation.ParseSAN(text, &s.board)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s.play(m)

	moves := s.board.GenerateMoves()
	end := shess.Determine(&s.board, moves, s.history, s.hash)
	if end.IsOver() {
		fmt.Println("game over:", describeEnd(end))
	}
}

func describeEnd(end shess.GameEnd) string {
	switch end.Reason {
	case shess.Checkmate:
		return fmt.Sprintf("checkmate, %s wins", end.Winner)
	case shess.Stalemate:
		return "stalemate"
	case shess.InsufficientMaterial:
		return "draw: insufficient material"
	case shess.ForcedDrawClockReached:
		return "draw: seventy-five-move rule"
	case shess.ThreefoldRepetition:
		return "draw: threefold repetition"
	default:
		return "ongoing"
	}
}

func runSearch(s *session, depth int) {
	searcher := search.NewSearcher(s.hasher)
	result := searcher.Search(s.board, s.hash, s.history, depth)
	if result.Move.IsNoMove() {
		fmt.Println("no legal moves")
		return
	}
	san := notation.ToSAN(&s.board, result.Move)
	fmt.Printf("%s  score %d  nodes %d\n", san, result.Score, result.Nodes)
	if s.cache != nil {
		s.cache.Put(uint64(s.hash), result.Score, depth)
	}
}
