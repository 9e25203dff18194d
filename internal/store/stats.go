package store

import "os"

// Stats holds library statistics.
type Stats struct {
	DataPath       string         `json:"data_path"`
	DataSizeBytes  int64          `json:"data_size_bytes"`
	Songs          int            `json:"songs"`
	Categories     int            `json:"categories"`
	TotalSections  int            `json:"total_sections"`
	TotalVersions  int            `json:"total_versions"`
	SectionsByType map[string]int `json:"sections_by_type,omitempty"`
}

// Stats returns library statistics. dataPath is only stat'ed for its size;
// the counts come from the in-memory collections.
func (s *Store) Stats(dataPath string) *Stats {
	st := &Stats{
		DataPath:       dataPath,
		Songs:          len(s.songs),
		Categories:     len(s.categories),
		SectionsByType: map[string]int{},
	}

	if info, err := os.Stat(dataPath); err == nil {
		st.DataSizeBytes = info.Size()
	}

	for _, song := range s.songs {
		st.TotalSections += len(song.Sections)
		st.TotalVersions += len(song.Versions)
		for _, sec := range song.Sections {
			st.SectionsByType[sec.Type]++
		}
	}
	return st
}
