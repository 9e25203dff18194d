package store

import (
	"strings"

	"github.com/rcliao/songpad/internal/model"
)

// Library is the export/import envelope for the whole library.
type Library struct {
	Songs      []model.Song     `json:"songs"`
	Categories []model.Category `json:"categories"`
}

// ExportAll returns the full library, version history included.
func (s *Store) ExportAll() *Library {
	return &Library{
		Songs:      s.List(),
		Categories: s.Categories(),
	}
}

// Import merges an exported library. Songs whose title already exists and
// categories whose name already exists are skipped; ids and version history
// of imported records are preserved so a round-trip is lossless. An incoming
// id already held by an existing record is re-minted so ids stay unique.
// Returns the number of songs and categories added.
func (s *Store) Import(lib *Library) (songs, categories int) {
	for _, c := range lib.Categories {
		if c.Name == "" || s.categoryNameTaken(c.Name, "") {
			continue
		}
		if c.ID == "" || s.categoryIDTaken(c.ID) {
			c.ID = s.newID()
		}
		s.categories = append(s.categories, c)
		categories++
	}

	for _, song := range lib.Songs {
		if strings.TrimSpace(song.Title) == "" || s.titleTaken(song.Title, "") {
			continue
		}
		if song.ID == "" || s.songIDTaken(song.ID) {
			song.ID = s.newID()
		}
		s.songs = append(s.songs, song.Clone())
		songs++
	}

	if categories > 0 {
		s.persistCategories()
	}
	if songs > 0 {
		s.persistSongs()
	}
	return songs, categories
}

func (s *Store) songIDTaken(id string) bool {
	for _, song := range s.songs {
		if song.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) categoryIDTaken(id string) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
