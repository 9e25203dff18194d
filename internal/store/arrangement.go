package store

import (
	"fmt"
	"time"

	"github.com/rcliao/songpad/internal/model"
)

// SaveArrangement commits a new performance order. The prior arrangement is
// copied into the single-slot PreviousArrangement buffer first (enabling
// one-level undo), then the new order is written and a version appended.
// This is the only operation that grows the ledger from the arrangement side.
func (s *Store) SaveArrangement(id string, entries []model.ArrangementEntry) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}

	// Clone before assigning ids so the caller's slice is never written to.
	arrangement := model.CloneArrangement(entries)
	for i := range arrangement {
		if arrangement[i].ID == "" {
			arrangement[i].ID = s.newID()
		}
	}

	song.PreviousArrangement = song.Arrangement
	song.Arrangement = arrangement
	now := time.Now().UTC()
	song.UpdatedAt = now
	s.commitVersion(song, now)
	s.persistSongs()

	c := song.Clone()
	return &c, nil
}

// UndoArrangementSave restores the arrangement from PreviousArrangement and
// clears the slot to nil. The version appended by the save being undone stays
// in the ledger: history is append-only and undo never rewrites it.
func (s *Store) UndoArrangementSave(id string) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if song.PreviousArrangement == nil {
		return nil, ErrNothingToUndo
	}

	song.Arrangement = song.PreviousArrangement
	song.PreviousArrangement = nil
	song.UpdatedAt = time.Now().UTC()
	s.persistSongs()

	c := song.Clone()
	return &c, nil
}

// Version finds a song version by id for read-only browsing. There is no
// restore-from-version; only the single-slot undos move current state back.
func (s *Store) Version(id, versionID string) (*model.SongVersion, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	for _, v := range song.Versions {
		if v.ID == versionID {
			c := v
			c.Sections = model.CloneSections(v.Sections)
			c.Arrangement = model.CloneArrangement(v.Arrangement)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("version %s: %w", versionID, ErrNotFound)
}
