package sealer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	s := New("secret")

	sealed, err := s.Seal("upstream-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "upstream-token")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", plain)
}

func TestSealer_NonceDiffers(t *testing.T) {
	s := New("secret")
	a, err := s.Seal("x")
	require.NoError(t, err)
	b, err := s.Seal("x")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealer_WrongKey(t *testing.T) {
	sealed, err := New("one").Seal("token")
	require.NoError(t, err)

	_, err = New("two").Open(sealed)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestSealer_Garbage(t *testing.T) {
	s := New("secret")
	_, err := s.Open("!!!")
	assert.ErrorIs(t, err, ErrOpen)
	_, err = s.Open("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrOpen)
}

func TestHashToken(t *testing.T) {
	assert.Len(t, HashToken("T"), 16)
	assert.Equal(t, HashToken("T"), HashToken("T"))
}
