package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed := HashPassword("corresponding horse battery staple")

	ok, err := CheckPassword("corresponding horse battery staple", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("incorrect horse battery staple", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordStringRoundTrip(t *testing.T) {
	hashed := HashPassword("s3cret-enough")

	parsed, err := ParsePasswordString(hashed.String())
	require.NoError(t, err)
	assert.Equal(t, hashed, parsed)

	ok, err := CheckPassword("s3cret-enough", parsed)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParsePasswordStringBadInput(t *testing.T) {
	_, err := ParsePasswordString("definitely not a password string")
	assert.Error(t, err)
}

func TestParseArgon2idConfig(t *testing.T) {
	cfg, err := ParseArgon2idConfig("t=1,m=40960,p=1,l=64")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), cfg.Time)
	assert.Equal(t, uint32(40960), cfg.Memory)
	assert.Equal(t, uint8(1), cfg.Threads)
	assert.Equal(t, uint32(64), cfg.KeyLength)
	assert.Equal(t, "t=1,m=40960,p=1,l=64", cfg.String())

	_, err = ParseArgon2idConfig("nonsense")
	assert.Error(t, err)
}

func TestCheckPasswordUnknownAlgorithm(t *testing.T) {
	_, err := CheckPassword("whatever", HashedPassword{Algorithm: "md5"})
	assert.Error(t, err)
}

func TestMakeToken(t *testing.T) {
	a := makeToken()
	b := makeToken()
	assert.Len(t, a, 40)
	assert.Len(t, b, 40)
	assert.NotEqual(t, a, b)
}
