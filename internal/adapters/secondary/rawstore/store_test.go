package rawstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)
	store, err := New(dir, testclock.NewClock(at))
	require.NoError(t, err)

	path, err := store.SaveSnapshot("newswire-all_arts", []byte(`{"status":"OK"}`))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "newswire-all_arts-26_08_24-15_04_05.json"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK"}`, string(body))
}

func TestStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "raw", "nested")
	_, err := New(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
