// Package section implements the tagged-range model over a song's lyrics:
// the non-overlap invariant, candidate validation, and pure transforms on a
// song's section list. No I/O; persistence is the store's job.
package section

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rcliao/songpad/internal/model"
)

// ErrInvalidRange rejects zero-length, inverted, and out-of-bounds candidates
// before they ever reach the overlap check.
var ErrInvalidRange = errors.New("range start must be before end and within the lyrics")

// OverlapError reports a candidate range colliding with an existing section.
type OverlapError struct {
	ConflictingType string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("range overlaps an existing %s section", e.ConflictingType)
}

// Validate checks candidate bounds: 0 <= start < end <= lyricsLen.
func Validate(lyricsLen, start, end int) error {
	if start < 0 || start >= end || end > lyricsLen {
		return ErrInvalidRange
	}
	return nil
}

// CheckOverlap reports whether [start,end) collides with any existing section.
// Intervals are half-open, so touching boundaries do not overlap. On collision
// the first conflicting section's type, in slice order, is returned for
// user-facing messaging.
func CheckOverlap(sections []model.Section, start, end int) (bool, string) {
	for _, s := range sections {
		if s.Start < end && start < s.End {
			return true, s.Type
		}
	}
	return false, ""
}

// Add appends a section. Validation (Validate + CheckOverlap) is deliberately
// the caller's step so interactive feedback can precede the commit; Add itself
// does not re-check.
func Add(sections []model.Section, s model.Section) []model.Section {
	out := model.CloneSections(sections)
	return append(out, s)
}

// Remove deletes the section with the given id. Sections are matched by their
// stable id, never by bounds, so structurally identical sections stay
// distinguishable. An unknown id leaves the list unchanged.
func Remove(sections []model.Section, id string) []model.Section {
	out := make([]model.Section, 0, len(sections))
	for _, s := range sections {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return model.CloneSections(out)
}

// TogglePerformer adds name to the identified section's performer set, or
// removes it when already present.
func TogglePerformer(sections []model.Section, id, name string) []model.Section {
	out := model.CloneSections(sections)
	for i, s := range out {
		if s.ID != id {
			continue
		}
		removed := false
		performers := make([]string, 0, len(s.Performers))
		for _, p := range s.Performers {
			if p == name {
				removed = true
				continue
			}
			performers = append(performers, p)
		}
		if !removed {
			performers = append(performers, name)
		}
		out[i].Performers = performers
	}
	return out
}

// SortByStart returns a copy ordered by Start ascending. Equal starts keep
// input order.
func SortByStart(sections []model.Section) []model.Section {
	out := model.CloneSections(sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// ValidateAll checks every section's bounds against the lyrics and the
// pairwise non-overlap invariant. Used when lyrics are replaced under
// existing tags.
func ValidateAll(lyricsLen int, sections []model.Section) error {
	for _, s := range sections {
		if err := Validate(lyricsLen, s.Start, s.End); err != nil {
			return fmt.Errorf("%s section [%d,%d): %w", s.Type, s.Start, s.End, err)
		}
	}
	sorted := SortByStart(sections)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return &OverlapError{ConflictingType: sorted[i-1].Type}
		}
	}
	return nil
}
