// Package arrange derives and reorders the performance-order view of a
// song's tagged sections. The view's order is a permutation independent of
// the sections' textual positions. Pure transforms only.
package arrange

import (
	"github.com/rcliao/songpad/internal/lyrics"
	"github.com/rcliao/songpad/internal/model"
	"github.com/rcliao/songpad/internal/section"
)

// Direction moves a section toward the front (up) or back (down).
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Build derives the arranged view. A persisted non-empty arrangement wins,
// order preserved as stored; otherwise the view falls back to the song's
// sections stable-sorted by Start. Snippets are resolved against the current
// lyrics on every Build, so they never go stale across lyric edits.
func Build(song *model.Song) []model.ArrangedSection {
	if len(song.Arrangement) > 0 {
		out := make([]model.ArrangedSection, 0, len(song.Arrangement))
		for _, e := range song.Arrangement {
			out = append(out, model.ArrangedSection{
				ID:          e.ID,
				Type:        e.Type,
				TextSnippet: lyrics.Snippet(song.Lyrics, e.Start, e.End),
				SourceStart: e.Start,
				SourceEnd:   e.End,
				Performers:  model.CloneStrings(e.Performers),
			})
		}
		return out
	}

	sorted := section.SortByStart(song.Sections)
	out := make([]model.ArrangedSection, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, model.ArrangedSection{
			ID:          s.ID,
			Type:        s.Type,
			TextSnippet: lyrics.Snippet(song.Lyrics, s.Start, s.End),
			SourceStart: s.Start,
			SourceEnd:   s.End,
			Performers:  model.CloneStrings(s.Performers),
		})
	}
	return out
}

// Move swaps index with its neighbor in the given direction. Moving the first
// section up or the last section down is a no-op returning the input
// unchanged.
func Move(arr []model.ArrangedSection, index int, dir Direction) []model.ArrangedSection {
	j := index - 1
	if dir == Down {
		j = index + 1
	}
	if index < 0 || index >= len(arr) || j < 0 || j >= len(arr) {
		return arr
	}
	out := cloneArranged(arr)
	out[index], out[j] = out[j], out[index]
	return out
}

// Reorder exchanges the sections at from and to. Drop semantics are a
// two-element swap, not insert-and-shift. Out-of-range or equal indices are a
// no-op returning the input unchanged.
func Reorder(arr []model.ArrangedSection, from, to int) []model.ArrangedSection {
	if from < 0 || from >= len(arr) || to < 0 || to >= len(arr) || from == to {
		return arr
	}
	out := cloneArranged(arr)
	out[from], out[to] = out[to], out[from]
	return out
}

// HasUnsavedChanges reports whether the view has drifted from the last saved
// arrangement: a length difference, or any positional pair differing in
// (type, start, end). Performer differences are deliberately excluded, so
// reassigning performers alone never marks the arrangement dirty.
func HasUnsavedChanges(current []model.ArrangedSection, lastSaved []model.ArrangementEntry) bool {
	if len(current) != len(lastSaved) {
		return true
	}
	for i, c := range current {
		e := lastSaved[i]
		if c.Type != e.Type || c.SourceStart != e.Start || c.SourceEnd != e.End {
			return true
		}
	}
	return false
}

// Entries converts the view back into persistable arrangement entries.
func Entries(arr []model.ArrangedSection) []model.ArrangementEntry {
	out := make([]model.ArrangementEntry, 0, len(arr))
	for _, a := range arr {
		out = append(out, model.ArrangementEntry{
			ID:         a.ID,
			Type:       a.Type,
			Start:      a.SourceStart,
			End:        a.SourceEnd,
			Performers: model.CloneStrings(a.Performers),
		})
	}
	return out
}

func cloneArranged(in []model.ArrangedSection) []model.ArrangedSection {
	out := make([]model.ArrangedSection, len(in))
	for i, a := range in {
		a.Performers = model.CloneStrings(a.Performers)
		out[i] = a
	}
	return out
}
