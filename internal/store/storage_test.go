package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage(t *testing.T) {
	t.Run("creates missing data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")

		_, err := NewFileStorage(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		_, err := NewFileStorage("")
		assert.Error(t, err)
	})
}

func TestFileStoragePosts(t *testing.T) {
	t.Run("missing file yields empty collection", func(t *testing.T) {
		storage, err := NewFileStorage(t.TempDir())
		require.NoError(t, err)

		posts, err := storage.LoadPosts()
		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.NotNil(t, posts)
	})

	t.Run("undecodable file degrades to empty collection", func(t *testing.T) {
		dir := t.TempDir()
		storage, err := NewFileStorage(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "posts.json"), []byte("{not json"), 0644))

		posts, err := storage.LoadPosts()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		storage, err := NewFileStorage(t.TempDir())
		require.NoError(t, err)

		note, err := feed.NewNote("hello board")
		require.NoError(t, err)
		note.Reactions[feed.ReactionHeart] = 2

		require.NoError(t, storage.SavePosts([]*feed.Post{note}))

		loaded, err := storage.LoadPosts()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, note, loaded[0])
	})

	t.Run("nil collection saves as empty array", func(t *testing.T) {
		dir := t.TempDir()
		storage, err := NewFileStorage(dir)
		require.NoError(t, err)

		require.NoError(t, storage.SavePosts(nil))

		data, err := os.ReadFile(filepath.Join(dir, "posts.json"))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestFileStorageTheme(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("defaults to light", func(t *testing.T) {
		assert.Equal(t, ThemeLight, storage.LoadTheme())
	})

	t.Run("round trips dark", func(t *testing.T) {
		require.NoError(t, storage.SaveTheme(ThemeDark))
		assert.Equal(t, ThemeDark, storage.LoadTheme())

		require.NoError(t, storage.SaveTheme(ThemeLight))
		assert.Equal(t, ThemeLight, storage.LoadTheme())
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		err := storage.SaveTheme("neon")
		assert.Error(t, err)
	})
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, storage.SavePosts([]*feed.Post{}))
	require.NoError(t, storage.SaveTheme(ThemeDark))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".spipy-", "temp file left behind: %s", e.Name())
	}
}
