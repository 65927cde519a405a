package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const scholarsMate = "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0"

func TestBoardNavigation(t *testing.T) {
	b := NewBoard(scholarsMate)
	assert.Equal(t, 7, b.NumMoves())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, StartingFEN, b.FEN())
	assert.Equal(t, "", b.LastMove())

	b.Next()
	assert.Equal(t, 1, b.Cursor())
	assert.Equal(t, "e4", b.LastMove())

	b.End()
	assert.Equal(t, 7, b.Cursor())
	assert.Equal(t, "Qxf7#", b.LastMove())

	// Stepping past the end stays at the end.
	b.Next()
	assert.Equal(t, 7, b.Cursor())

	b.Reset()
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, StartingFEN, b.FEN())

	// Stepping before the start stays at the start.
	b.Prev()
	assert.Equal(t, 0, b.Cursor())
}

func TestBoardEndThenStepBack(t *testing.T) {
	b := NewBoard(scholarsMate)
	b.End()
	for i := 0; i < b.NumMoves(); i++ {
		b.Prev()
	}
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, StartingFEN, b.FEN())
}

func TestBoardJumpTo(t *testing.T) {
	b := NewBoard(scholarsMate)

	b.JumpTo(2)
	assert.Equal(t, 2, b.Cursor())
	assert.Equal(t, "e5", b.LastMove())

	b.JumpTo(100)
	assert.Equal(t, b.NumMoves(), b.Cursor())

	b.JumpTo(-5)
	assert.Equal(t, 0, b.Cursor())
}

func TestBoardPositionsRecompute(t *testing.T) {
	b := NewBoard(scholarsMate)
	b.JumpTo(1)
	afterE4 := b.FEN()
	b.End()
	b.JumpTo(1)
	assert.Equal(t, afterE4, b.FEN())
	assert.Contains(t, afterE4, " b ")
}

func TestBoardSAN(t *testing.T) {
	b := NewBoard(scholarsMate)
	san := b.SAN()
	assert.Equal(t, []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"}, san)
}

func TestBoardMalformedPGN(t *testing.T) {
	for _, pgn := range []string{"", "   ", "1. zz9 huh", "not a game at all"} {
		b := NewBoard(pgn)
		assert.Equal(t, 0, b.NumMoves(), "pgn: %q", pgn)
		assert.Equal(t, StartingFEN, b.FEN())
		b.End()
		assert.Equal(t, 0, b.Cursor())
	}
}
