package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlocks(t *testing.T) {
	raw := []byte(`[
		{"type": "heading", "level": 2, "text": "The Italian Game"},
		{"type": "paragraph", "text": "White develops the bishop to c4."},
		{"type": "image", "url": "https://example.com/board.png", "alt": "position", "caption": "After 3. Bc4"},
		{"type": "chessboard", "pgn": "1. e4 e5 2. Nf3 Nc6 3. Bc4"},
		{"type": "embed", "iframe_src": "https://lichess.org/embed/abc123", "title": "Game"},
		{"type": "lichess_study", "studyId": "XyZ12345", "chapterId": "AbCdEfGh"}
	]`)

	blocks, err := DecodeBlocks(raw)
	require.NoError(t, err)
	require.Len(t, blocks, 6)

	heading, ok := blocks[0].(HeadingBlock)
	require.True(t, ok)
	assert.Equal(t, 2, heading.Level)
	assert.Equal(t, "The Italian Game", heading.Text)

	paragraph, ok := blocks[1].(ParagraphBlock)
	require.True(t, ok)
	assert.Equal(t, "White develops the bishop to c4.", paragraph.Text)

	board, ok := blocks[3].(ChessboardBlock)
	require.True(t, ok)
	assert.Equal(t, "1. e4 e5 2. Nf3 Nc6 3. Bc4", board.PGN)

	study, ok := blocks[5].(LichessStudyBlock)
	require.True(t, ok)
	assert.Equal(t, "XyZ12345", study.StudyID)
	assert.Equal(t, "AbCdEfGh", study.ChapterID)
}

func TestDecodeBlocksPreservesOrder(t *testing.T) {
	raw := []byte(`[
		{"type": "heading", "level": 1, "text": "first"},
		{"type": "paragraph", "text": "second"},
		{"type": "heading", "level": 3, "text": "third"},
		{"type": "paragraph", "text": "fourth"}
	]`)

	blocks, err := DecodeBlocks(raw)
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	var texts []string
	for _, block := range blocks {
		switch b := block.(type) {
		case HeadingBlock:
			texts = append(texts, b.Text)
		case ParagraphBlock:
			texts = append(texts, b.Text)
		}
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, texts)
}

func TestDecodeBlocksUnknownType(t *testing.T) {
	raw := []byte(`[
		{"type": "paragraph", "text": "kept"},
		{"type": "holographic_board", "dimensions": 11},
		{"type": "paragraph", "text": "also kept"}
	]`)

	blocks, err := DecodeBlocks(raw)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "kept", blocks[0].(ParagraphBlock).Text)
	assert.Equal(t, "also kept", blocks[1].(ParagraphBlock).Text)
}

func TestDecodeBlocksClampsHeadingLevel(t *testing.T) {
	raw := []byte(`[
		{"type": "heading", "level": 0, "text": "low"},
		{"type": "heading", "level": 9, "text": "high"}
	]`)

	blocks, err := DecodeBlocks(raw)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].(HeadingBlock).Level)
	assert.Equal(t, 6, blocks[1].(HeadingBlock).Level)
}

func TestDecodeBlocksBadInput(t *testing.T) {
	_, err := DecodeBlocks([]byte(`{"not": "an array"}`))
	assert.Error(t, err)

	blocks, err := DecodeBlocks(nil)
	assert.NoError(t, err)
	assert.Empty(t, blocks)
}
