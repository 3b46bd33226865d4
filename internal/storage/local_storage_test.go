package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cocktails/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSave(t *testing.T) {
	baseDir := t.TempDir()
	store, err := NewLocalStorage(baseDir)
	require.NoError(t, err)

	relativePath, err := store.Save(context.Background(), []byte("image bytes"), SaveOptions{
		Category:  "covers",
		Extension: "png",
		BaseName:  "Old Fashioned",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relativePath, "covers/"), "path %q should start with the category", relativePath)
	assert.True(t, strings.HasSuffix(relativePath, ".png"), "path %q should carry the extension", relativePath)
	assert.Contains(t, relativePath, "old-fashioned")

	content, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(relativePath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), content)
}

func TestLocalStorageSaveEmptyPayload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), nil, SaveOptions{Category: "covers", Extension: "png"})
	assert.Error(t, err)
}

func TestLocalStorageSaveCancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, []byte("data"), SaveOptions{Category: "covers", Extension: "png"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStorageUnsupportedType(t *testing.T) {
	_, err := NewStorage(config.Config{StorageType: "ftp"})
	assert.Error(t, err)
}

func TestNewStorageDefaultsToLocal(t *testing.T) {
	store, err := NewStorage(config.Config{StorageLocalDir: t.TempDir()})
	require.NoError(t, err)

	_, ok := store.(LocalBaseDirProvider)
	assert.True(t, ok)
}
