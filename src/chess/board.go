package chess

import (
	"strings"

	"github.com/notnil/chess"

	"github.com/smartchessacademy/website/src/utils"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board steps through the moves of a single game. The cursor ranges
// from 0 (before the first move) to NumMoves() (after the last move).
type Board struct {
	moves     []*chess.Move
	positions []*chess.Position // always len(moves)+1
	cursor    int
}

// NewBoard parses PGN movetext and returns a board positioned before
// the first move. Malformed PGN yields a board with no moves rather
// than an error, so a bad game record still renders as the starting
// position.
func NewBoard(pgn string) *Board {
	b := &Board{}
	game := chess.NewGame()
	if strings.TrimSpace(pgn) != "" {
		if opt, err := chess.PGN(strings.NewReader(pgn)); err == nil {
			game = chess.NewGame(opt)
		}
	}
	b.moves = game.Moves()
	b.positions = game.Positions()
	if len(b.positions) != len(b.moves)+1 {
		// Should not happen, but never trust a parser with slice math.
		b.moves = nil
		b.positions = []*chess.Position{chess.NewGame().Position()}
	}
	return b
}

func (b *Board) NumMoves() int {
	return len(b.moves)
}

func (b *Board) Cursor() int {
	return b.cursor
}

// FEN returns the position after the first Cursor() moves.
func (b *Board) FEN() string {
	return b.positions[b.cursor].String()
}

// SAN returns the algebraic notation of every move in order.
func (b *Board) SAN() []string {
	san := make([]string, len(b.moves))
	for i, move := range b.moves {
		san[i] = chess.AlgebraicNotation{}.Encode(b.positions[i], move)
	}
	return san
}

// LastMove returns the SAN of the move that produced the current
// position, or "" at the start of the game.
func (b *Board) LastMove() string {
	if b.cursor == 0 {
		return ""
	}
	return chess.AlgebraicNotation{}.Encode(b.positions[b.cursor-1], b.moves[b.cursor-1])
}

func (b *Board) Reset() {
	b.cursor = 0
}

func (b *Board) Prev() {
	b.JumpTo(b.cursor - 1)
}

func (b *Board) Next() {
	b.JumpTo(b.cursor + 1)
}

func (b *Board) End() {
	b.cursor = len(b.moves)
}

// JumpTo moves the cursor to the given move index, clamped to the
// valid range.
func (b *Board) JumpTo(cursor int) {
	b.cursor = utils.Clamp(0, cursor, len(b.moves))
}
