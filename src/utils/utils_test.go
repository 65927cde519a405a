package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 5, OrDefault(0, 5))
	assert.Equal(t, 3, OrDefault(3, 5))
	assert.Equal(t, "fallback", OrDefault("", "fallback"))
	assert.Equal(t, "value", OrDefault("value", "fallback"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(1, -5, 10))
	assert.Equal(t, 10, Clamp(1, 50, 10))
	assert.Equal(t, 7, Clamp(1, 7, 10))
}

func TestNumPages(t *testing.T) {
	assert.Equal(t, 1, NumPages(0, 25))
	assert.Equal(t, 1, NumPages(25, 25))
	assert.Equal(t, 2, NumPages(26, 25))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "exact", TruncateText("exact", 5))
	assert.Equal(t, "long …", TruncateText("long string", 5))
	assert.Equal(t, "héllö…", TruncateText("héllö wörld", 5))
}

func TestRecoverPanicAsError(t *testing.T) {
	err := func() (err error) {
		defer RecoverPanicAsError(&err)
		panic(errors.New("oh no"))
	}()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oh no")
}
