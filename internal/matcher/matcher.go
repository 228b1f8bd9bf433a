// Package matcher pairs watch phrases with listing entries whose titles
// contain them.
package matcher

import (
	"strings"

	"github.com/nao1215/ransomcheck/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Match returns every (phrase, entry) pair where the lowercase phrase is a
// substring of the lowercase entry title.
//
// Results are ordered by phrase first and entry second, so all matches for
// the first phrase come before those of the second. An entry that contains
// several phrases appears once per phrase. Empty inputs give an empty result.
func Match(phrases []string, entries []model.VictimEntry) []model.Match {
	matches := make([]model.Match, 0)
	if len(phrases) == 0 || len(entries) == 0 {
		return matches
	}

	lower := cases.Lower(language.Und)

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = lower.String(e.Title)
	}

	for _, phrase := range phrases {
		needle := lower.String(phrase)
		for i, e := range entries {
			if strings.Contains(titles[i], needle) {
				matches = append(matches, model.NewMatch(phrase, e))
			}
		}
	}

	return matches
}

// Contains reports whether title contains phrase, ignoring case.
func Contains(title, phrase string) bool {
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(title), lower.String(phrase))
}
