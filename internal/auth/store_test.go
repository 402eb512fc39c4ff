package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStoreWithPath(filepath.Join(t.TempDir(), "credentials.json"))

	cred, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.json")
	store := NewFileStoreWithPath(path)

	in := &Credential{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		Scope:        "deals:full",
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.AccessToken, out.AccessToken)
	assert.Equal(t, in.RefreshToken, out.RefreshToken)
	assert.True(t, in.ExpiresAt.Equal(out.ExpiresAt))
	assert.Equal(t, in.Scope, out.Scope)
}

func TestFileStore_RestrictedPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStoreWithPath(path)
	require.NoError(t, store.Save(&Credential{AccessToken: "access"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStoreWithPath(path)
	require.NoError(t, store.Save(&Credential{AccessToken: "access"}))

	require.NoError(t, store.Clear())
	cred, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cred)

	// Clearing again is not an error.
	require.NoError(t, store.Clear())
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewFileStoreWithPath(path)
	_, err := store.Load()
	assert.Error(t, err)
}
