package search

import "github.com/mike-arbuzov/findmyangel-backend/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterEmbedding(dimension int)
	AfterRetrieval(matches []core.SimilarityMatch)
	AfterRecordRetrieval(records []*core.ProfileRecord)
	Finish(results []*core.SearchResult, totalFound int)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) AfterEmbedding(_ int)                         {}
func (n *noopMonitor) AfterRetrieval(_ []core.SimilarityMatch)      {}
func (n *noopMonitor) AfterRecordRetrieval(_ []*core.ProfileRecord) {}
func (n *noopMonitor) Finish(_ []*core.SearchResult, _ int)         {}
