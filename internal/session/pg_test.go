package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohiniBalmiki/taxwise-web/internal/config"
	"github.com/mohiniBalmiki/taxwise-web/internal/db"
	"github.com/mohiniBalmiki/taxwise-web/internal/model"
	appErr "github.com/mohiniBalmiki/taxwise-web/internal/pkg/errors"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping postgres test")
	}
	conn, err := db.Open(config.DatabaseConfig{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(conn))
	_, err = conn.Exec("DELETE FROM verified_sessions")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPGStoreSetGetRoundtrip(t *testing.T) {
	store := NewPGStore(openTestDB(t))
	ctx := context.Background()

	future := time.Now().Add(time.Hour).Unix()
	sess := &model.Session{
		ID:        "pg-s1",
		Email:     "foo@bar.com",
		Payload:   json.RawMessage(`{"access_token":"at"}`),
		Ctime:     time.Now().Unix(),
		ExpiresAt: future,
	}
	require.NoError(t, store.Set(ctx, sess))

	got, err := store.Get(ctx, "pg-s1")
	require.NoError(t, err)
	require.Equal(t, "foo@bar.com", got.Email)
	require.JSONEq(t, `{"access_token":"at"}`, string(got.Payload))
	require.Equal(t, future, got.ExpiresAt)

	// a second Set with the same id takes the conflict-update path
	sess.Email = "new@bar.com"
	require.NoError(t, store.Set(ctx, sess))
	got, err = store.Get(ctx, "pg-s1")
	require.NoError(t, err)
	require.Equal(t, "new@bar.com", got.Email)
}

func TestPGStoreGetExpired(t *testing.T) {
	store := NewPGStore(openTestDB(t))
	ctx := context.Background()

	sess := &model.Session{
		ID:        "pg-expired",
		Email:     "foo@bar.com",
		Payload:   json.RawMessage(`{}`),
		Ctime:     time.Now().Add(-2 * time.Hour).Unix(),
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}
	require.NoError(t, store.Set(ctx, sess))

	_, err := store.Get(ctx, "pg-expired")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestPGStoreDelete(t *testing.T) {
	store := NewPGStore(openTestDB(t))
	ctx := context.Background()

	require.ErrorIs(t, store.Delete(ctx, "pg-missing"), appErr.ErrNotFound)

	sess := &model.Session{
		ID:        "pg-del",
		Email:     "foo@bar.com",
		Payload:   json.RawMessage(`{}`),
		Ctime:     time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, store.Set(ctx, sess))
	require.NoError(t, store.Delete(ctx, "pg-del"))

	_, err := store.Get(ctx, "pg-del")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestPGStoreDeleteExpired(t *testing.T) {
	store := NewPGStore(openTestDB(t))
	ctx := context.Background()
	now := time.Now().Unix()

	for _, sess := range []*model.Session{
		{ID: "pg-old", Email: "a@b.com", Payload: json.RawMessage(`{}`), Ctime: now - 7200, ExpiresAt: now - 3600},
		{ID: "pg-live", Email: "a@b.com", Payload: json.RawMessage(`{}`), Ctime: now, ExpiresAt: now + 3600},
		{ID: "pg-forever", Email: "a@b.com", Payload: json.RawMessage(`{}`), Ctime: now, ExpiresAt: 0},
	} {
		require.NoError(t, store.Set(ctx, sess))
	}

	deleted, err := store.DeleteExpired(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	_, err = store.Get(ctx, "pg-live")
	require.NoError(t, err)
	_, err = store.Get(ctx, "pg-forever")
	require.NoError(t, err)
}
