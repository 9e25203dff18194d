package store

import (
	"errors"
	"testing"

	"github.com/rcliao/songpad/internal/arrange"
	"github.com/rcliao/songpad/internal/model"
)

func arrangedSong(t *testing.T, s *Store) *model.Song {
	t.Helper()
	song, err := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBBCCCC"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, p := range []TagParams{
		{Start: 0, End: 4, Type: "verse"},
		{Start: 4, End: 8, Type: "chorus"},
		{Start: 8, End: 12, Type: "bridge"},
	} {
		if _, err := s.TagSection(song.ID, p); err != nil {
			t.Fatalf("tag %v: %v", p, err)
		}
	}
	got, err := s.Get(song.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	return got
}

func TestSaveArrangementThenUndo(t *testing.T) {
	s := newTestStore(t)
	song := arrangedSong(t, s)
	versionsBefore := len(song.Versions)

	// Save the default order first so the undo slot has something real.
	view := arrange.Build(song)
	saved, err := s.SaveArrangement(song.ID, arrange.Entries(view))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	originalOrder := idsOf(saved.Arrangement)

	// Reorder and save again.
	view = arrange.Build(saved)
	moved := arrange.Move(view, 2, arrange.Up)
	saved, err = s.SaveArrangement(song.ID, arrange.Entries(moved))
	if err != nil {
		t.Fatalf("save moved: %v", err)
	}
	if len(saved.Versions) != versionsBefore+2 {
		t.Errorf("expected %d versions, got %d", versionsBefore+2, len(saved.Versions))
	}

	restored, err := s.UndoArrangementSave(song.ID)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	gotOrder := idsOf(restored.Arrangement)
	for i := range originalOrder {
		if gotOrder[i] != originalOrder[i] {
			t.Fatalf("expected order %v after undo, got %v", originalOrder, gotOrder)
		}
	}
	// Undo does not touch the ledger.
	if len(restored.Versions) != versionsBefore+2 {
		t.Errorf("undo changed version count: %d", len(restored.Versions))
	}

	// The slot was cleared: a second undo fails.
	if _, err := s.UndoArrangementSave(song.ID); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestUndoArrangementWithoutSave(t *testing.T) {
	s := newTestStore(t)
	song := arrangedSong(t, s)

	if _, err := s.UndoArrangementSave(song.ID); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo before any save, got %v", err)
	}
}

func TestSaveArrangementAssignsEntryIDs(t *testing.T) {
	s := newTestStore(t)
	song := arrangedSong(t, s)

	entries := []model.ArrangementEntry{
		{Start: 8, End: 12, Type: "bridge"},
		{Start: 0, End: 4, Type: "verse"},
	}
	saved, err := s.SaveArrangement(song.ID, entries)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	for i, e := range saved.Arrangement {
		if e.ID == "" {
			t.Errorf("entry %d missing id", i)
		}
	}

	// Ids are minted on the store's copy; the caller's slice stays untouched.
	for i, e := range entries {
		if e.ID != "" {
			t.Errorf("caller entry %d was written to: %q", i, e.ID)
		}
	}
}

func TestVersionLookup(t *testing.T) {
	s := newTestStore(t)
	song := arrangedSong(t, s)

	v, err := s.Version(song.ID, song.Versions[0].ID)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v.Lyrics != "AAAABBBBCCCC" {
		t.Errorf("unexpected snapshot lyrics %q", v.Lyrics)
	}

	if _, err := s.Version(song.ID, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func idsOf(entries []model.ArrangementEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
