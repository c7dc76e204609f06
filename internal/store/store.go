package store

import (
	"fmt"
	"sync"

	"github.com/bleeeehhhhhhhhh/spipy/pkg/feed"
)

// Store owns the ordered in-memory post collection (newest first) and
// persists the full collection to its Storage after every mutation. The
// persist happens before the mutating call returns, so no caller can observe
// a partial-write state.
//
// The Store is safe for concurrent use; the mirror's watch loop replaces the
// collection from a background goroutine while commands read it.
type Store struct {
	mu      sync.Mutex
	storage Storage
	posts   []*feed.Post
}

// New creates a Store backed by the given storage. Call Load to populate the
// collection before use.
func New(storage Storage) *Store {
	return &Store{
		storage: storage,
		posts:   []*feed.Post{},
	}
}

// Load populates the collection from durable storage. A storage that cannot
// be deserialized yields an empty collection, never an error to the caller.
func (s *Store) Load() error {
	posts, err := s.storage.LoadPosts()
	if err != nil {
		posts = []*feed.Post{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	return nil
}

// Insert prepends a post, making it the newest, then persists the collection.
func (s *Store) Insert(post *feed.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append([]*feed.Post{clonePost(post)}, s.posts...)
	return s.persistLocked()
}

// Remove filters the named post out of the collection and persists. Removing
// an absent ID is a no-op, not an error; the returned bool reports whether a
// post was actually removed.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0:0]
	removed := false
	for _, p := range s.posts {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}

	s.posts = kept
	if err := s.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// React increments the named reaction counter by exactly 1 and persists.
// An unknown kind is a caller error. An absent post ID is a no-op; the
// returned post is nil in that case, and the updated post otherwise.
func (s *Store) React(id string, kind feed.ReactionKind) (*feed.Post, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID != id {
			continue
		}
		if p.Reactions == nil {
			p.Reactions = feed.NewReactions()
		}
		p.Reactions[kind]++
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return clonePost(p), nil
	}

	return nil, nil
}

// Replace swaps in a whole new collection (the mirror reloading from the
// remote board) and persists it.
func (s *Store) Replace(posts []*feed.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = make([]*feed.Post, 0, len(posts))
	for _, p := range posts {
		s.posts = append(s.posts, clonePost(p))
	}
	return s.persistLocked()
}

// Posts returns a read-only snapshot of the collection, newest first.
func (s *Store) Posts() []*feed.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*feed.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	return out
}

// Get returns a snapshot of a single post by ID.
func (s *Store) Get(id string) (*feed.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			return clonePost(p), true
		}
	}
	return nil, false
}

// Len returns the number of posts in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// Theme returns the persisted theme preference.
func (s *Store) Theme() string {
	return s.storage.LoadTheme()
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	return s.storage.SaveTheme(theme)
}

// persistLocked writes the full collection to durable storage.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	if err := s.storage.SavePosts(s.posts); err != nil {
		return fmt.Errorf("failed to persist posts: %w", err)
	}
	return nil
}

// clonePost copies a post, including its reaction map, so snapshots cannot
// alias the store's collection.
func clonePost(p *feed.Post) *feed.Post {
	out := *p
	out.Reactions = p.Reactions.Clone()
	return &out
}
