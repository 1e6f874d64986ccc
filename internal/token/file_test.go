package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobpilot", "token")
	s := NewFileStore(path)

	require.NoError(t, s.Save("tok-123"))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-123", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_LoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent"))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path)

	require.NoError(t, s.Save("tok"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "", got)
}
