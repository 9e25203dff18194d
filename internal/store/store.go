// Package store is the sole owner of the song and category collections.
// Every read and write from other components passes through it. On each
// mutation the full collection is serialized to the storage adapter; write
// failures are logged and non-fatal, leaving in-memory state authoritative
// for the rest of the session.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/songpad/internal/model"
	"github.com/rcliao/songpad/internal/storage"
)

const (
	songsKey      = "songs"
	categoriesKey = "categories"
	undoKey       = "undo"
)

var (
	// ErrNotFound indicates the referenced song, section, version, or
	// category no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTitle indicates another song already uses the title
	// (titles are unique case-insensitively).
	ErrDuplicateTitle = errors.New("a song with that title already exists")

	// ErrDuplicateCategory indicates another category already uses the name.
	ErrDuplicateCategory = errors.New("a category with that name already exists")

	// ErrNothingToUndo indicates the relevant single-slot undo buffer is
	// empty. Distinct from ErrNotFound so the caller can surface a
	// "cannot undo" notice rather than a generic failure.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrEmptyTitle indicates a missing required title.
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyName indicates a missing required category name.
	ErrEmptyName = errors.New("name is required")
)

// undoState holds the single-slot undo buffers: one slot per editable facet
// per song (metadata, lyrics+tags) plus the one-shot last-deleted buffers.
// Each slot remembers only the most recent prior state; the next edit of the
// same facet overwrites it. The arrangement facet's slot lives on the Song
// record itself (PreviousArrangement). Slots are session scratch state, kept
// under their own storage key so they survive across CLI invocations, which
// are each a single UI event.
type undoState struct {
	PrevMetadata        map[string]metadataSnapshot `json:"prev_metadata,omitempty"`
	PrevLyrics          map[string]lyricsSnapshot   `json:"prev_lyrics,omitempty"`
	LastDeletedSong     *model.Song                 `json:"last_deleted_song,omitempty"`
	LastDeletedCategory *model.Category             `json:"last_deleted_category,omitempty"`
}

type metadataSnapshot struct {
	Title              string   `json:"title"`
	Categories         []string `json:"categories,omitempty"`
	FeaturedPerformers []string `json:"featured_performers,omitempty"`
}

type lyricsSnapshot struct {
	Lyrics   string          `json:"lyrics"`
	Sections []model.Section `json:"sections,omitempty"`
}

// Store holds the authoritative collections plus the undo buffers.
type Store struct {
	kv      storage.KV
	entropy *rand.Rand

	songs      []model.Song
	categories []model.Category
	undo       undoState
}

// Open rehydrates the collections from the adapter, starting empty when
// nothing has been persisted yet.
func Open(kv storage.KV) (*Store, error) {
	s := &Store{
		kv:      kv,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		undo: undoState{
			PrevMetadata: map[string]metadataSnapshot{},
			PrevLyrics:   map[string]lyricsSnapshot{},
		},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	b, err := s.kv.Get(songsKey)
	if err != nil {
		// Read failure is non-fatal: start the session empty rather than
		// refuse to run. Writes later in the session may still succeed.
		log.Printf("load songs: %v (starting with empty collection)", err)
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &s.songs); err != nil {
			return fmt.Errorf("decode songs: %w", err)
		}
	}

	b, err = s.kv.Get(categoriesKey)
	if err != nil {
		log.Printf("load categories: %v (starting with empty collection)", err)
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &s.categories); err != nil {
			return fmt.Errorf("decode categories: %w", err)
		}
	}

	b, err = s.kv.Get(undoKey)
	if err != nil {
		// Losing scratch undo state only costs one undo opportunity.
		log.Printf("load undo state: %v (undo buffers reset)", err)
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &s.undo); err != nil {
			log.Printf("decode undo state: %v (undo buffers reset)", err)
			s.undo = undoState{}
		}
	}
	if s.undo.PrevMetadata == nil {
		s.undo.PrevMetadata = map[string]metadataSnapshot{}
	}
	if s.undo.PrevLyrics == nil {
		s.undo.PrevLyrics = map[string]lyricsSnapshot{}
	}
	return nil
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// persistSongs serializes the full song collection. Failures are logged and
// swallowed: in-memory state stays the source of truth and the user keeps
// editing, worst case losing durability.
func (s *Store) persistSongs() {
	b, err := json.Marshal(s.songs)
	if err == nil {
		err = s.kv.Set(songsKey, b)
	}
	if err != nil {
		log.Printf("persist songs: %v (in-memory state unaffected)", err)
	}
}

func (s *Store) persistCategories() {
	b, err := json.Marshal(s.categories)
	if err == nil {
		err = s.kv.Set(categoriesKey, b)
	}
	if err != nil {
		log.Printf("persist categories: %v (in-memory state unaffected)", err)
	}
}

func (s *Store) persistUndo() {
	b, err := json.Marshal(s.undo)
	if err == nil {
		err = s.kv.Set(undoKey, b)
	}
	if err != nil {
		log.Printf("persist undo state: %v", err)
	}
}

// find returns a writable pointer into the collection; internal use only.
func (s *Store) find(id string) (*model.Song, error) {
	for i := range s.songs {
		if s.songs[i].ID == id {
			return &s.songs[i], nil
		}
	}
	return nil, fmt.Errorf("song %s: %w", id, ErrNotFound)
}

// Get returns a deep copy of the song.
func (s *Store) Get(id string) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	c := song.Clone()
	return &c, nil
}

// List returns deep copies of all songs in collection order.
func (s *Store) List() []model.Song {
	out := make([]model.Song, len(s.songs))
	for i, song := range s.songs {
		out[i] = song.Clone()
	}
	return out
}

// commitVersion appends an immutable snapshot of the song's current lyrics,
// sections, and arrangement. The ledger is append-only: nothing ever merges
// with, rewrites, or removes an existing version.
func (s *Store) commitVersion(song *model.Song, now time.Time) {
	song.Versions = append(song.Versions, model.SongVersion{
		ID:          s.newID(),
		Timestamp:   now,
		Lyrics:      song.Lyrics,
		Sections:    model.CloneSections(song.Sections),
		Arrangement: model.CloneArrangement(song.Arrangement),
	})
}

// Close releases the storage adapter. Mutations persist as they happen, so
// there is nothing to flush.
func (s *Store) Close() error {
	return s.kv.Close()
}
