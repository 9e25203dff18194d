// Package model defines the core songwriting data types.
package model

import "time"

// Section is a labeled, contiguous character range of a song's lyrics.
// Offsets are half-open: [Start, End). Sections within one song never overlap.
type Section struct {
	ID         string   `json:"id"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Type       string   `json:"type"`
	Performers []string `json:"performers,omitempty"`
}

// ArrangementEntry is a section reference persisted in performance order.
// It mirrors Section fields but lives independently so arrangement order can
// diverge from textual order.
type ArrangementEntry struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Performers []string `json:"performers,omitempty"`
}

// ArrangedSection is the presentation view of one arrangement position,
// with its lyric snippet resolved against the current lyrics.
type ArrangedSection struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	TextSnippet string   `json:"text_snippet"`
	SourceStart int      `json:"source_start"`
	SourceEnd   int      `json:"source_end"`
	Performers  []string `json:"performers,omitempty"`
}

// SongVersion is an immutable point-in-time snapshot, appended on every
// committed save and never mutated or removed afterwards.
type SongVersion struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Lyrics      string             `json:"lyrics"`
	Sections    []Section          `json:"sections,omitempty"`
	Arrangement []ArrangementEntry `json:"arrangement,omitempty"`
}

// Song is the aggregate record. PreviousArrangement is the single-slot undo
// buffer for arrangement saves: nil means nothing to undo.
type Song struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Lyrics              string             `json:"lyrics"`
	Sections            []Section          `json:"sections,omitempty"`
	Arrangement         []ArrangementEntry `json:"arrangement,omitempty"`
	PreviousArrangement []ArrangementEntry `json:"previous_arrangement"`
	Versions            []SongVersion      `json:"versions"`
	Categories          []string           `json:"categories,omitempty"`
	FeaturedPerformers  []string           `json:"featured_performers,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// Category is an independent aggregate. Songs reference categories by name,
// so renaming a category does not cascade to songs holding the old name.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidSectionTypes are the allowed structural labels.
var ValidSectionTypes = map[string]bool{
	"verse":        true,
	"chorus":       true,
	"bridge":       true,
	"intro":        true,
	"outro":        true,
	"pre-chorus":   true,
	"hook":         true,
	"instrumental": true,
}
