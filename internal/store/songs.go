package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/songpad/internal/model"
	"github.com/rcliao/songpad/internal/section"
)

// CreateSongParams holds the fields for a new song.
type CreateSongParams struct {
	Title              string
	Lyrics             string
	Categories         []string
	FeaturedPerformers []string
}

// MetadataParams is the full next state of the metadata facet. Callers
// construct the complete record; there is no partial-patch merge for songs.
type MetadataParams struct {
	Title              string
	Categories         []string
	FeaturedPerformers []string
}

// titleTaken reports whether any song other than excludeID uses the title,
// compared case-insensitively.
func (s *Store) titleTaken(title, excludeID string) bool {
	for _, song := range s.songs {
		if song.ID != excludeID && strings.EqualFold(song.Title, title) {
			return true
		}
	}
	return false
}

// CreateSong assigns an id, seeds the version ledger with exactly one entry
// mirroring the initial lyrics, and appends the song to the collection.
func (s *Store) CreateSong(p CreateSongParams) (*model.Song, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if s.titleTaken(title, "") {
		return nil, ErrDuplicateTitle
	}

	now := time.Now().UTC()
	song := model.Song{
		ID:                 s.newID(),
		Title:              title,
		Lyrics:             p.Lyrics,
		Categories:         model.CloneStrings(p.Categories),
		FeaturedPerformers: model.CloneStrings(p.FeaturedPerformers),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.commitVersion(&song, now)

	s.songs = append(s.songs, song)
	s.persistSongs()

	c := song.Clone()
	return &c, nil
}

// UpdateMetadata replaces the metadata facet (title, categories, featured
// performers), capturing the prior state in that facet's single-slot undo
// buffer first. It never touches lyrics, sections, arrangement, or versions.
func (s *Store) UpdateMetadata(id string, p MetadataParams) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if s.titleTaken(title, id) {
		return nil, ErrDuplicateTitle
	}

	s.undo.PrevMetadata[id] = metadataSnapshot{
		Title:              song.Title,
		Categories:         model.CloneStrings(song.Categories),
		FeaturedPerformers: model.CloneStrings(song.FeaturedPerformers),
	}

	song.Title = title
	song.Categories = model.CloneStrings(p.Categories)
	song.FeaturedPerformers = model.CloneStrings(p.FeaturedPerformers)
	song.UpdatedAt = time.Now().UTC()
	s.persistSongs()
	s.persistUndo()

	c := song.Clone()
	return &c, nil
}

// UndoMetadata restores the metadata facet from its single-slot buffer and
// clears the slot. A second consecutive undo fails with ErrNothingToUndo.
func (s *Store) UndoMetadata(id string) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	prev, ok := s.undo.PrevMetadata[id]
	if !ok {
		return nil, ErrNothingToUndo
	}
	if s.titleTaken(prev.Title, id) {
		return nil, ErrDuplicateTitle
	}

	song.Title = prev.Title
	song.Categories = prev.Categories
	song.FeaturedPerformers = prev.FeaturedPerformers
	song.UpdatedAt = time.Now().UTC()
	delete(s.undo.PrevMetadata, id)
	s.persistSongs()
	s.persistUndo()

	c := song.Clone()
	return &c, nil
}

// UpdateLyrics replaces the lyrics facet wholesale. Existing sections are
// revalidated against the new text before anything mutates: out-of-bounds or
// newly overlapping tags reject the whole edit. A committed save appends a
// version.
func (s *Store) UpdateLyrics(id, lyrics string, sections []model.Section) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := section.ValidateAll(len(lyrics), sections); err != nil {
		return nil, err
	}

	s.captureLyrics(song)

	song.Lyrics = lyrics
	song.Sections = model.CloneSections(sections)
	now := time.Now().UTC()
	song.UpdatedAt = now
	s.commitVersion(song, now)
	s.persistSongs()
	s.persistUndo()

	c := song.Clone()
	return &c, nil
}

// captureLyrics snapshots the lyrics facet into its single-slot undo buffer,
// overwriting whatever the slot held.
func (s *Store) captureLyrics(song *model.Song) {
	s.undo.PrevLyrics[song.ID] = lyricsSnapshot{
		Lyrics:   song.Lyrics,
		Sections: model.CloneSections(song.Sections),
	}
}

// UndoLyrics restores the lyrics facet from its single-slot buffer and clears
// the slot. Undo does not append a version; the ledger only grows on saves.
func (s *Store) UndoLyrics(id string) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	prev, ok := s.undo.PrevLyrics[id]
	if !ok {
		return nil, ErrNothingToUndo
	}

	song.Lyrics = prev.Lyrics
	song.Sections = prev.Sections
	song.UpdatedAt = time.Now().UTC()
	delete(s.undo.PrevLyrics, id)
	s.persistSongs()
	s.persistUndo()

	c := song.Clone()
	return &c, nil
}

// RemoveSong hard-deletes the song and returns the removed record so the
// caller can offer undo. The one-shot last-deleted buffer is overwritten by
// each delete.
func (s *Store) RemoveSong(id string) (*model.Song, error) {
	for i := range s.songs {
		if s.songs[i].ID != id {
			continue
		}
		removed := s.songs[i].Clone()
		s.songs = append(s.songs[:i], s.songs[i+1:]...)
		s.undo.LastDeletedSong = &removed
		delete(s.undo.PrevMetadata, id)
		delete(s.undo.PrevLyrics, id)
		s.persistSongs()
		s.persistUndo()

		c := removed.Clone()
		return &c, nil
	}
	return nil, fmt.Errorf("song %s: %w", id, ErrNotFound)
}

// UndoRemoveSong re-adds the last deleted song at the end of the collection.
// The original position is not restored; restored songs always land at the
// end. The buffer is one-shot and cleared on success.
func (s *Store) UndoRemoveSong() (*model.Song, error) {
	if s.undo.LastDeletedSong == nil {
		return nil, ErrNothingToUndo
	}
	if s.titleTaken(s.undo.LastDeletedSong.Title, s.undo.LastDeletedSong.ID) {
		return nil, ErrDuplicateTitle
	}

	restored := s.undo.LastDeletedSong.Clone()
	s.songs = append(s.songs, restored)
	s.undo.LastDeletedSong = nil
	s.persistSongs()
	s.persistUndo()

	c := restored.Clone()
	return &c, nil
}
