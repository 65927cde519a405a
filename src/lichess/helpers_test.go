package lichess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedUrls(t *testing.T) {
	assert.Equal(t, "https://lichess.org/embed/game/abc123?theme=brown&bg=dark", GameEmbedUrl("abc123", ""))
	assert.Equal(t, "https://lichess.org/embed/game/abc123?theme=blue&bg=dark", GameEmbedUrl("abc123", "blue"))
	assert.Equal(t, "https://lichess.org/tv/best/frame?theme=brown&bg=dark", TVEmbedUrl("", ""))
	assert.Equal(t, "https://lichess.org/tv/blitz/frame?theme=brown&bg=dark", TVEmbedUrl("blitz", ""))
	assert.Equal(t, "https://lichess.org/study/embed/XyZ12345", StudyEmbedUrl("XyZ12345", ""))
	assert.Equal(t, "https://lichess.org/study/embed/XyZ12345/AbCdEfGh", StudyEmbedUrl("XyZ12345", "AbCdEfGh"))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "1500", FormatRating(1500))
	assert.Equal(t, "🔥 1850", FormatRating(1850))
	assert.Equal(t, "⭐ 2000", FormatRating(2000))
	assert.Equal(t, "💎 2250", FormatRating(2250))
	assert.Equal(t, "🏆 2800", FormatRating(2800))
}

func TestTimeControlName(t *testing.T) {
	assert.Equal(t, "Blitz", TimeControlName("blitz"))
	assert.Equal(t, "Chess960", TimeControlName("chess960"))
	assert.Equal(t, "ultraBullet", TimeControlName("ultraBullet"))
}
