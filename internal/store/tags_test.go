package store

import (
	"errors"
	"testing"

	"github.com/rcliao/songpad/internal/section"
)

func TestTagSection(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBBCCCC"})

	// Tag [0,4) as verse: accepted.
	sec, err := s.TagSection(song.ID, TagParams{Start: 0, End: 4, Type: "verse"})
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if sec.ID == "" {
		t.Error("expected section to receive an id")
	}

	// Tag [2,6) as chorus: rejected, reporting the conflicting verse.
	_, err = s.TagSection(song.ID, TagParams{Start: 2, End: 6, Type: "chorus"})
	var oe *section.OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
	if oe.ConflictingType != "verse" {
		t.Errorf("expected conflict with 'verse', got %q", oe.ConflictingType)
	}

	// Tag [4,8) as chorus: accepted, boundaries touch but do not overlap.
	if _, err := s.TagSection(song.ID, TagParams{Start: 4, End: 8, Type: "chorus"}); err != nil {
		t.Fatalf("adjacent tag: %v", err)
	}

	got, _ := s.Get(song.ID)
	if len(got.Sections) != 2 {
		t.Errorf("expected 2 sections, got %d", len(got.Sections))
	}
}

func TestTagSectionRejectsUnknownType(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBB"})

	if _, err := s.TagSection(song.ID, TagParams{Start: 0, End: 4, Type: "solo"}); err == nil {
		t.Error("expected unknown type rejection")
	}
	if _, err := s.TagSection(song.ID, TagParams{Start: 4, End: 4, Type: "verse"}); err == nil {
		t.Error("expected zero-length rejection")
	}
	if _, err := s.TagSection(song.ID, TagParams{Start: 0, End: 100, Type: "verse"}); err == nil {
		t.Error("expected out-of-bounds rejection")
	}
}

func TestTagSectionDeduplicatesPerformers(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBB"})

	sec, err := s.TagSection(song.ID, TagParams{
		Start: 0, End: 4, Type: "verse",
		Performers: []string{"Ann", "Ann", "Ben"},
	})
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if len(sec.Performers) != 2 || sec.Performers[0] != "Ann" || sec.Performers[1] != "Ben" {
		t.Fatalf("expected [Ann Ben], got %v", sec.Performers)
	}

	// With the set normalized, a single toggle removes the performer.
	updated, _ := s.TogglePerformer(song.ID, sec.ID, "Ann")
	if len(updated.Sections[0].Performers) != 1 || updated.Sections[0].Performers[0] != "Ben" {
		t.Errorf("expected [Ben] after one toggle, got %v", updated.Sections[0].Performers)
	}
}

func TestVersionsAppendOnly(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBBCCCC"})

	before, _ := s.Get(song.ID)
	firstID := before.Versions[0].ID

	s.TagSection(song.ID, TagParams{Start: 0, End: 4, Type: "verse"})
	s.UpdateLyrics(song.ID, "AAAABBBBCCCCDD", nil)

	after, _ := s.Get(song.ID)
	if len(after.Versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(after.Versions))
	}
	// Existing entries are never rewritten.
	if after.Versions[0].ID != firstID {
		t.Error("first version id changed")
	}
	if after.Versions[0].Lyrics != "AAAABBBBCCCC" {
		t.Errorf("first version lyrics rewritten: %q", after.Versions[0].Lyrics)
	}
	// Each snapshot reflects state at its own save.
	if len(after.Versions[1].Sections) != 1 {
		t.Errorf("expected tag snapshot with 1 section, got %d", len(after.Versions[1].Sections))
	}
	if after.Versions[2].Lyrics != "AAAABBBBCCCCDD" {
		t.Errorf("latest snapshot has wrong lyrics: %q", after.Versions[2].Lyrics)
	}
}

func TestUntagSection(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBB"})
	sec, _ := s.TagSection(song.ID, TagParams{Start: 0, End: 4, Type: "verse"})

	updated, err := s.UntagSection(song.ID, sec.ID)
	if err != nil {
		t.Fatalf("untag: %v", err)
	}
	if len(updated.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(updated.Sections))
	}

	// Freed range is immediately taggable again.
	if _, err := s.TagSection(song.ID, TagParams{Start: 0, End: 4, Type: "chorus"}); err != nil {
		t.Errorf("retag freed range: %v", err)
	}

	if _, err := s.UntagSection(song.ID, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown section, got %v", err)
	}
}

func TestStoreTogglePerformer(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAABBBB"})
	sec, _ := s.TagSection(song.ID, TagParams{Start: 0, End: 4, Type: "verse"})

	updated, err := s.TogglePerformer(song.ID, sec.ID, "Ann")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(updated.Sections[0].Performers) != 1 || updated.Sections[0].Performers[0] != "Ann" {
		t.Errorf("expected [Ann], got %v", updated.Sections[0].Performers)
	}

	updated, _ = s.TogglePerformer(song.ID, sec.ID, "Ann")
	if len(updated.Sections[0].Performers) != 0 {
		t.Errorf("expected performer removed, got %v", updated.Sections[0].Performers)
	}
}

func TestSuggestSections(t *testing.T) {
	s := newTestStore(t)
	song, _ := s.CreateSong(CreateSongParams{Title: "Song", Lyrics: "AAAA\nBBBB\n\nCCCC\n\nDDDD"})

	blocks, err := s.SuggestSections(song.ID)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(blocks))
	}

	// Tagging the first stanza removes it from the suggestions.
	if _, err := s.TagSection(song.ID, TagParams{Start: blocks[0].Start, End: blocks[0].End, Type: "verse"}); err != nil {
		t.Fatalf("tag suggested block: %v", err)
	}
	blocks, _ = s.SuggestSections(song.ID)
	if len(blocks) != 2 {
		t.Errorf("expected 2 suggestions after tagging, got %d", len(blocks))
	}
	for _, b := range blocks {
		if b.Start < 10 {
			t.Errorf("tagged range still suggested: %+v", b)
		}
	}
}
