package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandoffRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateHandoff("sess-1", "foo@bar.com", secret, time.Minute)
	require.NoError(t, err)

	claims, err := ParseHandoff(token, secret)
	require.NoError(t, err)
	require.Equal(t, "sess-1", claims.SessionID)
	require.Equal(t, "foo@bar.com", claims.Email)
}

func TestHandoffWrongSecret(t *testing.T) {
	token, err := GenerateHandoff("sess-1", "", []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, err = ParseHandoff(token, []byte("secret-b"))
	require.Error(t, err)
}

func TestHandoffExpired(t *testing.T) {
	token, err := GenerateHandoff("sess-1", "", []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = ParseHandoff(token, []byte("secret"))
	require.Error(t, err)
}
