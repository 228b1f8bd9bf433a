package model

// Run holds the state of one check: the phrases that were loaded, the entries
// fetched from the listing, and the matches between them.
// Pipeline steps fill it in order; reporting reads it at the end.
type Run struct {
	// KeywordsFile is the path of the watch phrase file.
	KeywordsFile string

	// Keywords are the loaded watch phrases in file order.
	Keywords []string

	// Entries are the listing rows in document order.
	Entries []VictimEntry

	// Matches are ordered by phrase first, then by entry.
	Matches []Match

	// TableMissing is set when the listing page had no table to parse.
	// In that case Entries is empty but the run is still successful.
	TableMissing bool
}

// NewRun creates an empty Run for the given keywords file.
func NewRun(keywordsFile string) *Run {
	return &Run{
		KeywordsFile: keywordsFile,
		Keywords:     make([]string, 0),
		Entries:      make([]VictimEntry, 0),
		Matches:      make([]Match, 0),
	}
}

// HasMatches reports whether at least one watch phrase matched.
func (r *Run) HasMatches() bool {
	return len(r.Matches) > 0
}

// MatchesFor returns the matches produced by a single watch phrase,
// preserving entry order.
func (r *Run) MatchesFor(keyword string) []Match {
	result := make([]Match, 0)
	for _, m := range r.Matches {
		if m.Keyword == keyword {
			result = append(result, m)
		}
	}
	return result
}
