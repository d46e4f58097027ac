package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "goldenthread",
		Duration: time.Hour,
	}
	u := &User{ID: "u1", Username: "noon", TokenVersion: 3}

	token, exp, err := ts.Sign(u)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "noon", claims.Username)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, "goldenthread", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signer := TokenService{Secret: []byte("right"), Issuer: "goldenthread", Duration: time.Hour}
	token, _, err := signer.Sign(&User{ID: "u1"})
	require.NoError(t, err)

	verifier := TokenService{Secret: []byte("wrong"), Issuer: "goldenthread", Duration: time.Hour}
	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	ts := TokenService{Secret: []byte("s"), Issuer: "goldenthread", Duration: -time.Minute}
	token, _, err := ts.Sign(&User{ID: "u1"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	assert.Error(t, err)
}
