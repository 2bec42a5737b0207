package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uug-ai/slackbot/internal/session"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := session.NewMemoryStore()

	sess := &session.Session{
		Token:     "test-token-123",
		Username:  "test@example.com",
		LoginTime: time.Now(),
	}

	require.NoError(t, store.Save("U12345", sess))

	got, err := store.Get("U12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, sess.Token, got.Token)
	require.Equal(t, sess.Username, got.Username)
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	store := session.NewMemoryStore()

	got, err := store.Get("U00000")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := session.NewMemoryStore()

	require.NoError(t, store.Save("U12345", &session.Session{Token: "abc"}))
	require.NoError(t, store.Delete("U12345"))

	got, err := store.Get("U12345")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStoreDeleteAbsentIsNoop(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Delete("U12345"))
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := session.NewMemoryStore()

	require.NoError(t, store.Save("U12345", &session.Session{Token: "first", Username: "alice"}))
	require.NoError(t, store.Save("U12345", &session.Session{Token: "second", Username: "bob"}))

	got, err := store.Get("U12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "second", got.Token)
	require.Equal(t, "bob", got.Username)
}

func TestMemoryStoreCount(t *testing.T) {
	store := session.NewMemoryStore()

	n, err := store.Count()
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, store.Save("U1", &session.Session{Token: "a"}))
	require.NoError(t, store.Save("U2", &session.Session{Token: "b"}))
	require.NoError(t, store.Save("U2", &session.Session{Token: "c"}))

	n, err = store.Count()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
