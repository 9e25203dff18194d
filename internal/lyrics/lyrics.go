// Package lyrics provides plain-text helpers over a song's lyric buffer.
package lyrics

import "strings"

// Block is a contiguous run of non-blank lines with its character offsets.
// Offsets are half-open positions into the original text, directly usable as
// candidate section bounds.
type Block struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// SplitBlocks splits lyrics on blank lines. Stanzas are the natural taggable
// units of a lyric sheet, so the blocks double as tag suggestions.
func SplitBlocks(text string) []Block {
	var blocks []Block
	lines := strings.Split(text, "\n")

	offset := 0
	blockStart := -1
	blockEnd := 0

	flush := func() {
		if blockStart < 0 {
			return
		}
		blocks = append(blocks, Block{
			Start: blockStart,
			End:   blockEnd,
			Text:  text[blockStart:blockEnd],
		})
		blockStart = -1
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if blockStart < 0 {
				blockStart = offset
			}
			blockEnd = offset + len(line)
		}
		offset += len(line) + 1
	}
	flush()

	return blocks
}

// Snippet returns lyrics[start:end] clamped to the buffer bounds. Stale
// offsets degrade to a shorter snippet instead of a panic.
func Snippet(lyrics string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(lyrics) {
		end = len(lyrics)
	}
	if start >= end {
		return ""
	}
	return lyrics[start:end]
}

// Preview returns the first line of s, truncated to max characters.
func Preview(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if max > 0 && len(s) > max {
		s = s[:max]
	}
	return s
}
