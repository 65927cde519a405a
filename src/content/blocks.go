package content

import (
	"encoding/json"

	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/utils"
)

// Block is one element of an article body. Article content is stored
// as a jsonb array of objects tagged by a "type" field.
type Block interface {
	BlockType() string
}

type ParagraphBlock struct {
	Text string `json:"text"`
}

type HeadingBlock struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

type ImageBlock struct {
	Url     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

type ChessboardBlock struct {
	PGN     string `json:"pgn"`
	Caption string `json:"caption"`
}

type EmbedBlock struct {
	IframeSrc string `json:"iframe_src"`
	Title     string `json:"title"`
	Caption   string `json:"caption"`
}

type LichessStudyBlock struct {
	StudyID   string `json:"studyId"`
	ChapterID string `json:"chapterId"`
	Caption   string `json:"caption"`
}

func (ParagraphBlock) BlockType() string    { return "paragraph" }
func (HeadingBlock) BlockType() string      { return "heading" }
func (ImageBlock) BlockType() string        { return "image" }
func (ChessboardBlock) BlockType() string   { return "chessboard" }
func (EmbedBlock) BlockType() string        { return "embed" }
func (LichessStudyBlock) BlockType() string { return "lichess_study" }

// DecodeBlocks parses a jsonb article body. Blocks with an unknown
// type tag are dropped so that old content keeps rendering after new
// block types ship.
func DecodeBlocks(raw []byte) ([]Block, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var tagged []struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return nil, oops.New(err, "failed to parse article content")
	}
	var rawBlocks []json.RawMessage
	utils.Must(json.Unmarshal(raw, &rawBlocks))

	var blocks []Block
	for i, rawBlock := range rawBlocks {
		var block Block
		switch tagged[i].Type {
		case "paragraph":
			block = decodeInto[ParagraphBlock](rawBlock)
		case "heading":
			var b HeadingBlock
			if err := json.Unmarshal(rawBlock, &b); err == nil {
				b.Level = utils.Clamp(1, b.Level, 6)
				block = b
			}
		case "image":
			block = decodeInto[ImageBlock](rawBlock)
		case "chessboard":
			block = decodeInto[ChessboardBlock](rawBlock)
		case "embed":
			block = decodeInto[EmbedBlock](rawBlock)
		case "lichess_study":
			block = decodeInto[LichessStudyBlock](rawBlock)
		default:
			continue
		}
		if block != nil {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

// decodeInto returns nil on a malformed block body so a single bad
// block cannot take down the whole article.
func decodeInto[T Block](raw json.RawMessage) Block {
	var block T
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil
	}
	return block
}
