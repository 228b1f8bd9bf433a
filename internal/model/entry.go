package model

// VictimEntry is one row of the recent victims listing.
// Each field holds the trimmed visible text of the corresponding table cell.
// Entries have no identity beyond field equality; duplicates on the listing
// are kept as separate values.
type VictimEntry struct {
	// Date is the disclosure date as printed on the listing.
	Date string `json:"date"`

	// Title is the victim name or post title.
	Title string `json:"title"`

	// Group is the extortion group (actor) that published the post.
	Group string `json:"group"`
}

// Match pairs a watch phrase with an entry whose title contains it.
type Match struct {
	// Keyword is the watch phrase exactly as it was loaded.
	Keyword string `json:"keyword"`

	// Date, Title and Group are copied from the matched entry.
	Date  string `json:"date"`
	Title string `json:"title"`
	Group string `json:"group"`
}

// NewMatch builds a Match from a phrase and the entry it matched.
func NewMatch(keyword string, entry VictimEntry) Match {
	return Match{
		Keyword: keyword,
		Date:    entry.Date,
		Title:   entry.Title,
		Group:   entry.Group,
	}
}

// Entry returns the entry part of the match.
func (m Match) Entry() VictimEntry {
	return VictimEntry{Date: m.Date, Title: m.Title, Group: m.Group}
}
