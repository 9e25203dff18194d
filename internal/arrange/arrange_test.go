package arrange

import (
	"reflect"
	"testing"

	"github.com/rcliao/songpad/internal/model"
)

func testSong() *model.Song {
	return &model.Song{
		ID:     "song",
		Lyrics: "AAAABBBBCCCC",
		Sections: []model.Section{
			{ID: "s2", Start: 4, End: 8, Type: "chorus"},
			{ID: "s1", Start: 0, End: 4, Type: "verse"},
			{ID: "s3", Start: 8, End: 12, Type: "bridge"},
		},
	}
}

func TestBuildFallbackSortsByStart(t *testing.T) {
	song := testSong()

	view := Build(song)
	if len(view) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(view))
	}
	wantIDs := []string{"s1", "s2", "s3"}
	for i, id := range wantIDs {
		if view[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, view[i].ID)
		}
	}
	if view[0].TextSnippet != "AAAA" || view[1].TextSnippet != "BBBB" || view[2].TextSnippet != "CCCC" {
		t.Errorf("unexpected snippets: %q %q %q", view[0].TextSnippet, view[1].TextSnippet, view[2].TextSnippet)
	}

	// Building twice on unchanged sections yields identical ordering.
	again := Build(song)
	if !reflect.DeepEqual(view, again) {
		t.Error("expected Build to be deterministic on unchanged input")
	}
}

func TestBuildPrefersStoredArrangement(t *testing.T) {
	song := testSong()
	song.Arrangement = []model.ArrangementEntry{
		{ID: "s3", Start: 8, End: 12, Type: "bridge"},
		{ID: "s1", Start: 0, End: 4, Type: "verse"},
	}

	view := Build(song)
	if len(view) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(view))
	}
	if view[0].ID != "s3" || view[1].ID != "s1" {
		t.Errorf("expected stored order [s3 s1], got [%s %s]", view[0].ID, view[1].ID)
	}
	if view[0].TextSnippet != "CCCC" {
		t.Errorf("expected snippet 'CCCC', got %q", view[0].TextSnippet)
	}
}

func TestBuildSnippetsFollowCurrentLyrics(t *testing.T) {
	song := testSong()
	song.Arrangement = []model.ArrangementEntry{{ID: "s1", Start: 0, End: 4, Type: "verse"}}

	song.Lyrics = "XXXXBBBBCCCC"
	view := Build(song)
	if view[0].TextSnippet != "XXXX" {
		t.Errorf("expected snippet recomputed from current lyrics, got %q", view[0].TextSnippet)
	}

	// Stale offsets past the end degrade to a clamped snippet, not a panic.
	song.Lyrics = "XX"
	view = Build(song)
	if view[0].TextSnippet != "XX" {
		t.Errorf("expected clamped snippet 'XX', got %q", view[0].TextSnippet)
	}
}

func TestMoveBoundaryNoOp(t *testing.T) {
	view := Build(testSong())

	if got := Move(view, 0, Up); !reflect.DeepEqual(got, view) {
		t.Error("moving first section up should return the input unchanged")
	}
	if got := Move(view, len(view)-1, Down); !reflect.DeepEqual(got, view) {
		t.Error("moving last section down should return the input unchanged")
	}
	if got := Move(view, -1, Up); !reflect.DeepEqual(got, view) {
		t.Error("out-of-range index should be a no-op")
	}
}

func TestMoveSwapsNeighbors(t *testing.T) {
	view := Build(testSong())

	got := Move(view, 1, Up)
	if got[0].ID != "s2" || got[1].ID != "s1" {
		t.Errorf("expected [s2 s1 s3], got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}
	// Input unchanged.
	if view[0].ID != "s1" {
		t.Error("Move mutated its input")
	}

	got = Move(view, 1, Down)
	if got[1].ID != "s3" || got[2].ID != "s2" {
		t.Errorf("expected [s1 s3 s2], got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestReorderSwapSemantics(t *testing.T) {
	view := Build(testSong())

	// Dropping position 0 onto position 2 swaps the two; it does not shift.
	got := Reorder(view, 0, 2)
	if got[0].ID != "s3" || got[1].ID != "s2" || got[2].ID != "s1" {
		t.Errorf("expected [s3 s2 s1], got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}

	if got := Reorder(view, 0, 5); !reflect.DeepEqual(got, view) {
		t.Error("out-of-range target should be a no-op")
	}
	if got := Reorder(view, 1, 1); !reflect.DeepEqual(got, view) {
		t.Error("same-index reorder should be a no-op")
	}
}

func TestHasUnsavedChanges(t *testing.T) {
	saved := []model.ArrangementEntry{
		{ID: "s1", Start: 0, End: 4, Type: "verse"},
		{ID: "s2", Start: 4, End: 8, Type: "chorus"},
	}
	current := []model.ArrangedSection{
		{ID: "s1", SourceStart: 0, SourceEnd: 4, Type: "verse"},
		{ID: "s2", SourceStart: 4, SourceEnd: 8, Type: "chorus"},
	}

	if HasUnsavedChanges(current, saved) {
		t.Error("identical order should report no changes")
	}

	swapped := []model.ArrangedSection{current[1], current[0]}
	if !HasUnsavedChanges(swapped, saved) {
		t.Error("reordered view should report changes")
	}

	if !HasUnsavedChanges(current[:1], saved) {
		t.Error("length difference should report changes")
	}

	// Performer differences are deliberately not part of the comparison.
	withPerformers := []model.ArrangedSection{
		{ID: "s1", SourceStart: 0, SourceEnd: 4, Type: "verse", Performers: []string{"Ann"}},
		{ID: "s2", SourceStart: 4, SourceEnd: 8, Type: "chorus"},
	}
	if HasUnsavedChanges(withPerformers, saved) {
		t.Error("performer-only difference should not report changes")
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	view := Build(testSong())
	entries := Entries(view)

	if len(entries) != len(view) {
		t.Fatalf("expected %d entries, got %d", len(view), len(entries))
	}
	for i, e := range entries {
		if e.ID != view[i].ID || e.Start != view[i].SourceStart || e.End != view[i].SourceEnd || e.Type != view[i].Type {
			t.Errorf("entry %d does not mirror the view: %+v vs %+v", i, e, view[i])
		}
	}
}
