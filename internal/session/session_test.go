package session

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthn struct {
	token string
	err   error
}

func (f fakeAuthn) Login(context.Context, string, string) (string, error) {
	return f.token, f.err
}

func TestAuthHeader(t *testing.T) {
	assert.False(t, Anonymous.IsAdmin())
	assert.Equal(t, "", Anonymous.Header())
	assert.False(t, Auth{Token: "   "}.IsAdmin())

	a := Auth{Token: "abc"}
	assert.True(t, a.IsAdmin())
	assert.Equal(t, "Bearer abc", a.Header())

	req, _ := http.NewRequest(http.MethodGet, "http://x", nil)
	a.Apply(req)
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))

	req2, _ := http.NewRequest(http.MethodGet, "http://x", nil)
	Anonymous.Apply(req2)
	_, set := req2.Header["Authorization"]
	assert.False(t, set)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobdash", "token")
	store := NewFileStore(path)

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.Save("tok-1"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	tok, err = NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	tok, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestManagerLoginSuccess(t *testing.T) {
	store := &MemoryStore{}
	m, err := NewManager(store, nil)
	require.NoError(t, err)
	assert.False(t, m.Current().IsAdmin())

	require.NoError(t, m.Login(context.Background(), fakeAuthn{token: "jwt"}, "admin", "pw"))
	assert.True(t, m.Current().IsAdmin())
	saved, _ := store.Load()
	assert.Equal(t, "jwt", saved)
}

func TestManagerLoginFailureKeepsState(t *testing.T) {
	m, err := NewManager(&MemoryStore{}, nil)
	require.NoError(t, err)

	loginErr := errors.New("Incorrect username or password")
	err = m.Login(context.Background(), fakeAuthn{err: loginErr}, "admin", "wrong")
	require.ErrorIs(t, err, loginErr)
	assert.Equal(t, "Incorrect username or password", err.Error())
	assert.False(t, m.Current().IsAdmin())
}

func TestManagerRejectsEmptyToken(t *testing.T) {
	m, _ := NewManager(&MemoryStore{}, nil)
	require.Error(t, m.Login(context.Background(), fakeAuthn{token: ""}, "a", "b"))
	assert.False(t, m.Current().IsAdmin())
}

func TestManagerRestoresAndLogsOut(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save("persisted"))

	m, err := NewManager(store, nil)
	require.NoError(t, err)
	assert.Equal(t, "persisted", m.Current().Token)

	require.NoError(t, m.Logout())
	assert.False(t, m.Current().IsAdmin())
	assert.Equal(t, "", m.Current().Header())
	saved, _ := store.Load()
	assert.Empty(t, saved)
}
