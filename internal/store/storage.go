// Package store maintains the ordered post collection and its durable mirror
// on disk. The Store is the only component permitted to mutate the collection;
// everything else works from read-only snapshots.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
)

// Theme preference values persisted alongside the posts.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Storage is the durable local key-value layer behind the Store. One named
// key holds the serialized post array, a second holds the theme preference.
// Implementations are best-effort caches, not guarantees: a load that cannot
// be deserialized degrades rather than failing the caller.
type Storage interface {
	// LoadPosts returns the stored collection. A missing or undecodable
	// posts key yields an empty collection and no error.
	LoadPosts() ([]*feed.Post, error)

	// SavePosts durably replaces the stored collection.
	SavePosts(posts []*feed.Post) error

	// LoadTheme returns the stored theme preference, defaulting to ThemeLight.
	LoadTheme() string

	// SaveTheme durably replaces the theme preference.
	SaveTheme(theme string) error
}

// FileStorage persists the collection as JSON files under a data directory.
// posts.json holds the serialized post array; theme holds the preference
// string. Writes go through a temp file and rename so a crashed write never
// leaves a half-written posts key behind.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir, creating the
// directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (fs *FileStorage) postsPath() string {
	return filepath.Join(fs.dir, "posts.json")
}

func (fs *FileStorage) themePath() string {
	return filepath.Join(fs.dir, "theme")
}

// LoadPosts reads the stored collection. Any read or deserialization failure
// degrades to an empty collection - durable storage is a cache, and "feed
// appears empty" is the accepted worst case.
func (fs *FileStorage) LoadPosts() ([]*feed.Post, error) {
	data, err := os.ReadFile(fs.postsPath())
	if err != nil {
		return []*feed.Post{}, nil
	}

	var posts []*feed.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return []*feed.Post{}, nil
	}
	if posts == nil {
		posts = []*feed.Post{}
	}

	return posts, nil
}

// SavePosts replaces the stored collection.
func (fs *FileStorage) SavePosts(posts []*feed.Post) error {
	if posts == nil {
		posts = []*feed.Post{}
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}

	return fs.writeFile(fs.postsPath(), data)
}

// LoadTheme reads the stored theme preference. Anything other than a valid
// stored value defaults to ThemeLight.
func (fs *FileStorage) LoadTheme() string {
	data, err := os.ReadFile(fs.themePath())
	if err != nil {
		return ThemeLight
	}

	theme := strings.TrimSpace(string(data))
	if theme != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// SaveTheme replaces the theme preference.
func (fs *FileStorage) SaveTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme: %q (expected %q or %q)", theme, ThemeLight, ThemeDark)
	}
	return fs.writeFile(fs.themePath(), []byte(theme+"\n"))
}

// writeFile writes data via a temp file and rename in the same directory.
func (fs *FileStorage) writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(fs.dir, ".spipy-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}

	return nil
}
