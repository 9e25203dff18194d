package model

// CloneStrings copies a string slice, preserving nil.
func CloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// DedupeStrings copies a string slice keeping only the first occurrence of
// each value, preserving nil. Performer lists are sets; this is the
// normalization applied where they enter the store.
func DedupeStrings(in []string) []string {
	if in == nil {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// CloneSections deep-copies a section slice, preserving nil.
func CloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		s.Performers = CloneStrings(s.Performers)
		out[i] = s
	}
	return out
}

// CloneArrangement deep-copies an arrangement slice, preserving nil.
func CloneArrangement(in []ArrangementEntry) []ArrangementEntry {
	if in == nil {
		return nil
	}
	out := make([]ArrangementEntry, len(in))
	for i, e := range in {
		e.Performers = CloneStrings(e.Performers)
		out[i] = e
	}
	return out
}

// Clone deep-copies the song so callers outside the store never hold a
// writable reference into the authoritative collection.
func (s Song) Clone() Song {
	s.Sections = CloneSections(s.Sections)
	s.Arrangement = CloneArrangement(s.Arrangement)
	s.PreviousArrangement = CloneArrangement(s.PreviousArrangement)
	s.Categories = CloneStrings(s.Categories)
	s.FeaturedPerformers = CloneStrings(s.FeaturedPerformers)
	if s.Versions != nil {
		versions := make([]SongVersion, len(s.Versions))
		for i, v := range s.Versions {
			v.Sections = CloneSections(v.Sections)
			v.Arrangement = CloneArrangement(v.Arrangement)
			versions[i] = v
		}
		s.Versions = versions
	}
	return s
}
