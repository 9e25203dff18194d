package store

import (
	"strings"

	"github.com/rcliao/songpad/internal/lyrics"
	"github.com/rcliao/songpad/internal/model"
)

// SearchResult pairs a matching song with a one-line excerpt of the first
// lyric match, when the match was in the lyrics.
type SearchResult struct {
	model.Song
	MatchLine string `json:"match_line,omitempty"`
}

// Search finds songs whose title or lyrics contain the query, compared
// case-insensitively. The collections are small and fully resident, so this
// is a plain in-memory scan. The excerpt comes from a per-line scan rather
// than an index into the lowered lyrics: lowercasing can change a rune's
// byte length, so offsets into the lowered string do not transfer back.
func (s *Store) Search(query string) []SearchResult {
	q := strings.ToLower(query)

	var results []SearchResult
	for _, song := range s.songs {
		titleHit := strings.Contains(strings.ToLower(song.Title), q)
		lyricsHit := strings.Contains(strings.ToLower(song.Lyrics), q)
		if !titleHit && !lyricsHit {
			continue
		}

		r := SearchResult{Song: song.Clone()}
		if lyricsHit {
			for _, line := range strings.Split(song.Lyrics, "\n") {
				if strings.Contains(strings.ToLower(line), q) {
					r.MatchLine = lyrics.Preview(line, 80)
					break
				}
			}
		}
		results = append(results, r)
	}
	return results
}
