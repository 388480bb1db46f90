package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is derived from content-based hashing of the record's identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Experience is a single position held by a profile owner.
type Experience struct {
	Title       string
	Company     string
	Duration    string
	Description string
}

// Education is a single degree held by a profile owner.
type Education struct {
	School string
	Degree string
}

// ProfileRecord represents one investor/individual's structured attributes.
// Identity is the normalized LinkedIn URL; records are immutable after
// ingestion and only ever replaced wholesale via upsert.
type ProfileRecord struct {
	Id          ID
	LinkedInURL string // Normalized: scheme + host + path, no trailing slash, no query
	Name        string
	Headline    string
	Location    string
	CurrentRole string
	Company     string
	Summary     string
	Experience  []Experience
	Education   []Education

	// Investment profile. Semantically these are empty when IsInvestor is
	// false, but nothing in the engine may assume that.
	IsInvestor         bool
	InvestmentRole     string
	InvestmentFocus    []string
	PortfolioCompanies []string
	SectorsOfInterest  []string
	InvestmentStage    []string

	Vector     []float32 // Embedding of SearchableText (populated by the pipeline)
	InsertedAt time.Time // When the record was inserted into the database
	UpdatedAt  time.Time // When the record was last updated
}

// Identity returns the ID derived from the record's normalized LinkedIn URL.
func (p *ProfileRecord) Identity() ID {
	return IDFromContent(p.LinkedInURL)
}

// Filters is a value object constraining a single search request.
// The zero value constrains nothing.
type Filters struct {
	IsInvestor        *bool    // Exact match when non-nil
	InvestmentRole    string   // Case-insensitive substring match when non-empty
	Location          string   // Case-insensitive substring match when non-empty
	SectorsOfInterest []string // OR semantics: at least one must intersect
	InvestmentStage   []string // OR semantics: at least one must intersect
}

// IsZero reports whether the filters constrain nothing.
func (f *Filters) IsZero() bool {
	return f == nil || (f.IsInvestor == nil && f.InvestmentRole == "" && f.Location == "" &&
		len(f.SectorsOfInterest) == 0 && len(f.InvestmentStage) == 0)
}

// SimilarityMatch represents an index hit: an identity with its raw cosine similarity.
type SimilarityMatch struct {
	LinkedInURL string
	Similarity  float32
}

// SearchResult represents a search result with the full record and its
// normalized 0-100 relevance score.
type SearchResult struct {
	Record     *ProfileRecord
	Score      int     // Normalized relevance in [0, 100]
	Similarity float32 // Raw cosine similarity the score was derived from
}
