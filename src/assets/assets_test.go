package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "abcdef-123_456.png", SanitizeFilename("abcdef-123_456.png"))
	assert.Equal(t, "my_avatar_photo.jpg", SanitizeFilename("my avatar@photo.jpg"))
	assert.Equal(t, "unnamed", SanitizeFilename(""))
}

func TestAssetKey(t *testing.T) {
	assert.Equal(t, "someid/avatar.png", AssetKey("someid", "avatar.png"))
}
