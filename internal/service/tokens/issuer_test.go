package tokens

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_Issue(t *testing.T) {
	issuer := NewIssuer()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		pair, err := issuer.Issue()
		require.NoError(t, err)

		assert.Len(t, pair.BookingToken, 32)
		assert.Len(t, pair.AdminToken, 32)
		assert.NotEqual(t, pair.BookingToken, pair.AdminToken)

		for _, token := range []string{pair.BookingToken, pair.AdminToken} {
			_, dup := seen[token]
			assert.False(t, dup, "token %s issued twice", token)
			seen[token] = struct{}{}
		}
	}
}

func TestIssuer_RetriesOnCollision(t *testing.T) {
	fixed := uuid.MustParse("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	other := uuid.MustParse("6ba7b811-9dad-41d1-80b4-00c04fd430c8")
	values := []uuid.UUID{fixed, fixed, other}

	issuer := &Issuer{generate: func() (uuid.UUID, error) {
		v := values[0]
		values = values[1:]
		return v, nil
	}}

	pair, err := issuer.Issue()
	require.NoError(t, err)
	assert.Equal(t, "6ba7b8109dad41d180b400c04fd430c8", pair.BookingToken)
	assert.Equal(t, "6ba7b8119dad41d180b400c04fd430c8", pair.AdminToken)
}

func TestIssuer_GeneratorFailure(t *testing.T) {
	issuer := &Issuer{generate: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("entropy exhausted")
	}}

	_, err := issuer.Issue()
	assert.ErrorIs(t, err, ErrGenerate)
}
