package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mike-arbuzov/findmyangel-backend/ai"
	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/index"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

const (
	// DefaultMaxResults is used when a request leaves max_results unset.
	DefaultMaxResults = 10

	// MaxResultsCap bounds max_results regardless of what the client asks
	// for, to bound per-query cost.
	MaxResultsCap = 100

	// minCandidatePool is the floor on how many nearest neighbors are
	// fetched before filtering. Filters may reject most of the
	// nearest-neighbor set; under-fetching would silently return fewer
	// results than the corpus supports.
	minCandidatePool = 50

	// overFetchFactor scales max_results into the candidate pool size.
	overFetchFactor = 4
)

// Request is a single search invocation from the boundary.
type Request struct {
	Query      string
	MaxResults int
	Filters    *core.Filters
}

// Response is the shaped result of one search.
type Response struct {
	Results []*core.SearchResult
	// TotalFound is the count of admitted candidates before truncation to
	// MaxResults, not the candidate pool size.
	TotalFound int
	Query      string
}

// Searcher turns a natural-language query plus structured predicates into a
// scored, ordered list of profile records.
type Searcher struct {
	profileRepository storage.ProfileRepository
	vectorIndex       *index.Flat
	embedder          ai.Embedder
	score             ScoreFunc
	logger            *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithScoreFunc replaces the default LinearClamp score normalization.
func WithScoreFunc(score ScoreFunc) Option {
	return func(s *Searcher) error {
		if score == nil {
			score = LinearClamp
		}
		s.score = score
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	profileRepository storage.ProfileRepository,
	vectorIndex *index.Flat,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if vectorIndex == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		profileRepository: profileRepository,
		vectorIndex:       vectorIndex,
		embedder:          provider.Embedder(),
		score:             LinearClamp,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs one query through embedding, retrieval, filtering and ranking.
// Given a fixed corpus, query and filters, the response is fully
// deterministic.
func (s *Searcher) Search(ctx context.Context, req Request) (*Response, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor is Search with observer hooks at each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req Request, monitor SearchMonitor) (*Response, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	// Input validation happens before any retrieval work
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	maxResults, err := clampMaxResults(req.MaxResults)
	if err != nil {
		return nil, err
	}

	monitor.Start(query)

	// Embedding is the only call expected to suspend; no lock is held
	// across it, and the index snapshot is resolved only afterwards.
	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		switch {
		case isDeadline(ctx, err):
			s.logger.Warn("query deadline elapsed during embedding", "query", query)
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		case isCanceled(ctx, err):
			// The caller abandoned the request; not a timeout and not an
			// embedding outage.
			s.logger.Debug("query canceled during embedding", "query", query)
			return nil, err
		default:
			s.logger.Error("error generating embedding for query", "query", query, "err", err)
			return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, err)
		}
	}
	monitor.AfterEmbedding(len(vector))

	corpusSize := s.vectorIndex.Len()
	if corpusSize == 0 {
		resp := &Response{Results: []*core.SearchResult{}, TotalFound: 0, Query: query}
		monitor.Finish(resp.Results, resp.TotalFound)
		return resp, nil
	}

	k := min(max(maxResults*overFetchFactor, minCandidatePool), corpusSize)
	matches, err := s.vectorIndex.Query(vector, k)
	if err != nil {
		s.logger.Error("error querying vector index", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	monitor.AfterRetrieval(matches)

	candidates, err := s.resolveCandidates(ctx, matches)
	if err != nil {
		return nil, err
	}
	records := make([]*core.ProfileRecord, len(candidates))
	for i, c := range candidates {
		records[i] = c.Record
	}
	monitor.AfterRecordRetrieval(records)

	// Pure, side-effect-free computation: cannot fail
	results, totalFound := Rank(candidates, req.Filters, maxResults, s.score)
	monitor.Finish(results, totalFound)

	return &Response{Results: results, TotalFound: totalFound, Query: query}, nil
}

// resolveCandidates fetches the records behind index matches. An identity
// present in the index but missing from the store is an internal invariant
// violation, fatal to this request only.
func (s *Searcher) resolveCandidates(ctx context.Context, matches []core.SimilarityMatch) ([]Candidate, error) {
	ids := make([]core.ID, len(matches))
	for i, m := range matches {
		ids[i] = core.IDFromContent(m.LinkedInURL)
	}

	records, err := s.profileRepository.GetMany(ctx, ids...)
	if err != nil {
		s.logger.Error("error retrieving profile records", "recordCount", len(ids), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	byURL := make(map[string]*core.ProfileRecord, len(records))
	for _, record := range records {
		byURL[record.LinkedInURL] = record
	}

	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		record, ok := byURL[m.LinkedInURL]
		if !ok {
			s.logger.Error("index/store identity mismatch", "linkedInURL", m.LinkedInURL)
			return nil, fmt.Errorf("%w: identity %q indexed but not stored", ErrInternal, m.LinkedInURL)
		}
		candidates = append(candidates, Candidate{Record: record, Similarity: m.Similarity})
	}
	return candidates, nil
}

func clampMaxResults(maxResults int) (int, error) {
	switch {
	case maxResults < 0:
		return 0, fmt.Errorf("%w: max_results cannot be negative", ErrInvalidFilters)
	case maxResults == 0:
		return DefaultMaxResults, nil
	case maxResults > MaxResultsCap:
		return MaxResultsCap, nil
	default:
		return maxResults, nil
	}
}

func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded)
}

func isCanceled(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(ctx.Err(), context.Canceled)
}
