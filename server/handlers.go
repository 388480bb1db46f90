package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/search"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

// searchRequest is the POST /search body.
type searchRequest struct {
	Query      string       `json:"query"`
	MaxResults int          `json:"max_results"`
	Filters    *filtersJSON `json:"filters"`
}

// filtersJSON mirrors core.Filters on the wire.
type filtersJSON struct {
	IsInvestor        *bool    `json:"is_investor,omitempty"`
	InvestmentRole    string   `json:"investment_role,omitempty"`
	Location          string   `json:"location,omitempty"`
	SectorsOfInterest []string `json:"sectors_of_interest,omitempty"`
	InvestmentStage   []string `json:"investment_stage,omitempty"`
}

func (f *filtersJSON) toFilters() *core.Filters {
	if f == nil {
		return nil
	}
	return &core.Filters{
		IsInvestor:        f.IsInvestor,
		InvestmentRole:    f.InvestmentRole,
		Location:          f.Location,
		SectorsOfInterest: f.SectorsOfInterest,
		InvestmentStage:   f.InvestmentStage,
	}
}

// experienceJSON is one work-history entry on the wire.
type experienceJSON struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
}

// educationJSON is one degree entry on the wire.
type educationJSON struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
}

// profileJSON is the wire representation of a profile record. The embedding
// vector is deliberately never exposed.
type profileJSON struct {
	ID                 string           `json:"id"`
	LinkedInURL        string           `json:"linkedin_url"`
	Name               string           `json:"name"`
	Headline           string           `json:"headline,omitempty"`
	Location           string           `json:"location,omitempty"`
	CurrentRole        string           `json:"current_role,omitempty"`
	Company            string           `json:"company,omitempty"`
	Summary            string           `json:"summary,omitempty"`
	Experience         []experienceJSON `json:"experience,omitempty"`
	Education          []educationJSON  `json:"education,omitempty"`
	IsInvestor         bool             `json:"is_investor"`
	InvestmentRole     string           `json:"investment_role,omitempty"`
	InvestmentFocus    []string         `json:"investment_focus,omitempty"`
	PortfolioCompanies []string         `json:"portfolio_companies,omitempty"`
	SectorsOfInterest  []string         `json:"sectors_of_interest,omitempty"`
	InvestmentStage    []string         `json:"investment_stage,omitempty"`
	InsertedAt         time.Time        `json:"inserted_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func toProfileJSON(record *core.ProfileRecord) profileJSON {
	experience := make([]experienceJSON, 0, len(record.Experience))
	for _, e := range record.Experience {
		experience = append(experience, experienceJSON{Title: e.Title, Company: e.Company, Description: e.Description})
	}
	education := make([]educationJSON, 0, len(record.Education))
	for _, e := range record.Education {
		education = append(education, educationJSON{School: e.School, Degree: e.Degree})
	}
	return profileJSON{
		ID:                 strconv.FormatUint(uint64(record.Id), 10),
		LinkedInURL:        record.LinkedInURL,
		Name:               record.Name,
		Headline:           record.Headline,
		Location:           record.Location,
		CurrentRole:        record.CurrentRole,
		Company:            record.Company,
		Summary:            record.Summary,
		Experience:         experience,
		Education:          education,
		IsInvestor:         record.IsInvestor,
		InvestmentRole:     record.InvestmentRole,
		InvestmentFocus:    record.InvestmentFocus,
		PortfolioCompanies: record.PortfolioCompanies,
		SectorsOfInterest:  record.SectorsOfInterest,
		InvestmentStage:    record.InvestmentStage,
		InsertedAt:         record.InsertedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

// resultJSON is one scored search hit.
type resultJSON struct {
	Profile    profileJSON `json:"profile"`
	Score      int         `json:"score"`
	Similarity float32     `json:"similarity"`
}

// searchResponse is the body of a successful search.
type searchResponse struct {
	Results    []resultJSON `json:"results"`
	TotalFound int          `json:"total_found"`
	Query      string       `json:"query"`
}

// errorResponse is the body of any failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(c *gin.Context) {
	count, err := s.profileRepository.Count(c.Request.Context())
	if err != nil {
		s.logger.Error("count failed", "error", err)
		count = 0
	}
	indexReady := s.vectorIndex != nil && s.vectorIndex.Len() > 0
	c.JSON(http.StatusOK, gin.H{
		"message":        "Angel Profile Search API",
		"profiles_count": count,
		"index_ready":    indexReady,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	count, err := s.profileRepository.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "storage unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"profiles_count": count,
		"index_ready":    s.vectorIndex != nil && s.vectorIndex.Len() > 0,
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	s.runSearch(c, search.Request{
		Query:      req.Query,
		MaxResults: req.MaxResults,
		Filters:    req.Filters.toFilters(),
	})
}

func (s *Server) handleSearchGet(c *gin.Context) {
	maxResults := 0
	if raw := c.Query("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "max_results must be an integer"})
			return
		}
		maxResults = parsed
	}

	filters := &core.Filters{}
	if raw := c.Query("is_investor"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "is_investor must be a boolean"})
			return
		}
		filters.IsInvestor = &parsed
	}
	filters.InvestmentRole = c.Query("investment_role")
	filters.Location = c.Query("location")
	filters.SectorsOfInterest = splitCSV(c.Query("sectors"))
	filters.InvestmentStage = splitCSV(c.Query("investment_stage"))

	s.runSearch(c, search.Request{
		Query:      c.Query("query"),
		MaxResults: maxResults,
		Filters:    filters,
	})
}

func (s *Server) runSearch(c *gin.Context, req search.Request) {
	resp, err := s.searcher.Search(c.Request.Context(), req)
	if err != nil {
		status, message := mapSearchError(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("search failed", "error", err)
		}
		c.JSON(status, errorResponse{Error: message})
		return
	}

	results := make([]resultJSON, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, resultJSON{
			Profile:    toProfileJSON(r.Record),
			Score:      r.Score,
			Similarity: r.Similarity,
		})
	}

	c.JSON(http.StatusOK, searchResponse{
		Results:    results,
		TotalFound: resp.TotalFound,
		Query:      resp.Query,
	})
}

func (s *Server) handleListProfiles(c *gin.Context) {
	skip := 0
	limit := 10
	if raw := c.Query("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "skip must be a non-negative integer"})
			return
		}
		skip = parsed
	}
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be an integer between 1 and 100"})
			return
		}
		limit = parsed
	}

	ctx := c.Request.Context()
	records, err := s.profileRepository.List(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	total, err := s.profileRepository.Count(ctx)
	if err != nil {
		s.logger.Error("count failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	profiles := make([]profileJSON, 0, len(records))
	for _, record := range records {
		profiles = append(profiles, toProfileJSON(record))
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"total":    total,
		"skip":     skip,
		"limit":    limit,
	})
}

func (s *Server) handleGetProfile(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "profile id must be a decimal integer"})
		return
	}

	record, err := s.profileRepository.Get(c.Request.Context(), core.ID(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "profile not found"})
			return
		}
		s.logger.Error("get failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toProfileJSON(record))
}

// mapSearchError translates the search error taxonomy to HTTP statuses.
// Internal details are never leaked to clients.
func mapSearchError(err error) (int, string) {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return http.StatusBadRequest, "query cannot be empty"
	case errors.Is(err, search.ErrInvalidFilters):
		return http.StatusBadRequest, "invalid request parameters"
	case errors.Is(err, search.ErrEmbeddingUnavailable):
		return http.StatusServiceUnavailable, "embedding service unavailable"
	case errors.Is(err, search.ErrTimeout):
		return http.StatusGatewayTimeout, "search timed out"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
