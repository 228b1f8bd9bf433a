package pipeline

import (
	"context"
	"fmt"

	"github.com/nao1215/ransomcheck/internal/keyword"
	"github.com/nao1215/ransomcheck/internal/listing"
	"github.com/nao1215/ransomcheck/internal/matcher"
	"github.com/nao1215/ransomcheck/internal/model"
)

// LoadKeywordsStep reads the watch phrases from run.KeywordsFile.
type LoadKeywordsStep struct{}

// NewLoadKeywordsStep creates a LoadKeywordsStep.
func NewLoadKeywordsStep() *LoadKeywordsStep {
	return &LoadKeywordsStep{}
}

// Name returns the step name.
func (s *LoadKeywordsStep) Name() string {
	return "load_keywords"
}

// Do loads the phrases. Errors are returned as produced by keyword.Load.
func (s *LoadKeywordsStep) Do(_ context.Context, run *model.Run) error {
	phrases, err := keyword.Load(run.KeywordsFile)
	if err != nil {
		return err
	}
	run.Keywords = phrases
	return nil
}

// Progress reports how many phrases were loaded.
func (s *LoadKeywordsStep) Progress(run *model.Run) string {
	return fmt.Sprintf("Loaded %d keywords.", len(run.Keywords))
}

// EntryFetcher retrieves the listing. *listing.Fetcher implements it.
type EntryFetcher interface {
	Fetch(ctx context.Context) (*listing.ParseResult, error)
}

// FetchListingStep downloads and parses the recent victims listing.
type FetchListingStep struct {
	fetcher EntryFetcher
}

// NewFetchListingStep creates a FetchListingStep that uses fetcher.
func NewFetchListingStep(fetcher EntryFetcher) *FetchListingStep {
	return &FetchListingStep{fetcher: fetcher}
}

// Name returns the step name.
func (s *FetchListingStep) Name() string {
	return "fetch_listing"
}

// Do fetches the listing. A page without a table is recorded in
// run.TableMissing and is not an error.
func (s *FetchListingStep) Do(ctx context.Context, run *model.Run) error {
	result, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	run.Entries = result.Entries
	run.TableMissing = !result.TableFound
	return nil
}

// Progress reports how many entries were fetched.
func (s *FetchListingStep) Progress(run *model.Run) string {
	return fmt.Sprintf("Fetched %d recent victim entries.", len(run.Entries))
}

// MatchStep pairs the loaded phrases with the fetched entries.
type MatchStep struct{}

// NewMatchStep creates a MatchStep.
func NewMatchStep() *MatchStep {
	return &MatchStep{}
}

// Name returns the step name.
func (s *MatchStep) Name() string {
	return "match"
}

// Do computes the matches. It never fails.
func (s *MatchStep) Do(_ context.Context, run *model.Run) error {
	run.Matches = matcher.Match(run.Keywords, run.Entries)
	return nil
}

// NewCheck builds the standard three-step pipeline around fetcher.
func NewCheck(fetcher EntryFetcher, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewLoadKeywordsStep(),
		NewFetchListingStep(fetcher),
		NewMatchStep(),
	)
	return p
}
