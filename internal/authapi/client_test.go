package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestConfirmEmailSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"success": true,
		"message": "Email verified successfully! Your account is now active.",
		"user": {"id": "u1", "email": "foo@bar.com", "email_confirmed": true},
		"session": {"access_token": "at", "refresh_token": "rt", "expires_at": 1700000000}
	}`)
	defer srv.Close()

	client := New(srv.URL, time.Second)
	result, err := client.ConfirmEmail(context.Background(), "hash", "signup")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	require.Equal(t, "foo@bar.com", result.User.Email)

	var sess map[string]interface{}
	require.NoError(t, json.Unmarshal(result.Session, &sess))
	require.Equal(t, "at", sess["access_token"])
}

func TestConfirmEmailBackendError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"success": false, "error": "Invalid or expired verification token"}`)
	defer srv.Close()

	client := New(srv.URL, time.Second)
	result, err := client.ConfirmEmail(context.Background(), "hash", "signup")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "Invalid or expired verification token", result.Error)
}

func TestConfirmEmailMalformedResponse(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"message": "hello"}`)
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.ConfirmEmail(context.Background(), "hash", "signup")
	require.Error(t, err)
}

func TestConfirmEmailNonJSONResponse(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.ConfirmEmail(context.Background(), "hash", "signup")
	require.Error(t, err)
}

func TestResendVerification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "foo@bar.com", body["email"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Verification email sent!"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	result, err := client.ResendVerification(context.Background(), "foo@bar.com")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "Verification email sent!", result.Message)
}
