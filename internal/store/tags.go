package store

import (
	"fmt"
	"time"

	"github.com/rcliao/songpad/internal/lyrics"
	"github.com/rcliao/songpad/internal/model"
	"github.com/rcliao/songpad/internal/section"
)

// TagParams holds a candidate section for tagging.
type TagParams struct {
	Start      int
	End        int
	Type       string
	Performers []string
}

// TagSection validates the candidate range (bounds, known type, non-overlap)
// and commits it as a new section with a freshly assigned id. Each committed
// tag edit captures the lyrics-facet undo slot and appends a version.
func (s *Store) TagSection(id string, p TagParams) (*model.Section, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := section.Validate(len(song.Lyrics), p.Start, p.End); err != nil {
		return nil, err
	}
	if !model.ValidSectionTypes[p.Type] {
		return nil, fmt.Errorf("unknown section type %q", p.Type)
	}
	if overlaps, conflict := section.CheckOverlap(song.Sections, p.Start, p.End); overlaps {
		return nil, &section.OverlapError{ConflictingType: conflict}
	}

	sec := model.Section{
		ID:         s.newID(),
		Start:      p.Start,
		End:        p.End,
		Type:       p.Type,
		Performers: model.DedupeStrings(p.Performers),
	}

	s.captureLyrics(song)
	song.Sections = section.Add(song.Sections, sec)
	now := time.Now().UTC()
	song.UpdatedAt = now
	s.commitVersion(song, now)
	s.persistSongs()
	s.persistUndo()

	c := sec
	c.Performers = model.CloneStrings(sec.Performers)
	return &c, nil
}

// UntagSection removes the section with the given id.
func (s *Store) UntagSection(id, sectionID string) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !hasSection(song.Sections, sectionID) {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}

	s.captureLyrics(song)
	song.Sections = section.Remove(song.Sections, sectionID)
	now := time.Now().UTC()
	song.UpdatedAt = now
	s.commitVersion(song, now)
	s.persistSongs()
	s.persistUndo()

	c := song.Clone()
	return &c, nil
}

// TogglePerformer adds the performer to the section when absent, removes it
// when present.
func (s *Store) TogglePerformer(id, sectionID, name string) (*model.Song, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !hasSection(song.Sections, sectionID) {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}

	s.captureLyrics(song)
	song.Sections = section.TogglePerformer(song.Sections, sectionID, name)
	now := time.Now().UTC()
	song.UpdatedAt = now
	s.commitVersion(song, now)
	s.persistSongs()
	s.persistUndo()

	c := song.Clone()
	return &c, nil
}

// SuggestSections proposes taggable ranges: blank-line-separated lyric blocks
// that do not collide with any existing section.
func (s *Store) SuggestSections(id string) ([]lyrics.Block, error) {
	song, err := s.find(id)
	if err != nil {
		return nil, err
	}

	var out []lyrics.Block
	for _, b := range lyrics.SplitBlocks(song.Lyrics) {
		if overlaps, _ := section.CheckOverlap(song.Sections, b.Start, b.End); !overlaps {
			out = append(out, b)
		}
	}
	return out, nil
}

func hasSection(sections []model.Section, id string) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
