package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tokenString, err := m.Issue(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := m.Verify(tokenString)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestManager_ExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	tokenString, err := m.Issue(42, "user@example.com")
	require.NoError(t, err)

	_, err = m.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_TamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tokenString, err := m.Issue(42, "user@example.com")
	require.NoError(t, err)

	// Flip one byte of the signed payload
	tampered := []byte(tokenString)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = m.Verify(string(tampered))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	tokenString, err := issuer.Issue(42, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_MalformedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tokenString)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
