package search

import (
	"strings"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// Admits reports whether a profile record passes all structured filter
// predicates. Pure function, no side effects. A nil or zero Filters admits
// everything.
//
// Matching rules, all ANDed together:
//   - IsInvestor: exact boolean equality when non-nil
//   - InvestmentRole, Location: case-insensitive substring containment,
//     always true when the filter string is empty
//   - SectorsOfInterest, InvestmentStage: true when the filter set is empty,
//     or when the record's list intersects it (case-insensitive)
func Admits(record *core.ProfileRecord, filters *core.Filters) bool {
	if record == nil {
		return false
	}
	if filters.IsZero() {
		return true
	}

	if filters.IsInvestor != nil && record.IsInvestor != *filters.IsInvestor {
		return false
	}
	if !containsFold(record.InvestmentRole, filters.InvestmentRole) {
		return false
	}
	if !containsFold(record.Location, filters.Location) {
		return false
	}
	if !intersectsFold(record.SectorsOfInterest, filters.SectorsOfInterest) {
		return false
	}
	if !intersectsFold(record.InvestmentStage, filters.InvestmentStage) {
		return false
	}
	return true
}

// containsFold is case-insensitive substring containment; an empty needle
// always matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// intersectsFold reports whether the two string sets share at least one
// member, case-insensitively. An empty wanted set always matches.
func intersectsFold(have, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	haveSet := make(map[string]struct{}, len(have))
	for _, h := range have {
		haveSet[strings.ToLower(h)] = struct{}{}
	}
	for _, w := range wanted {
		if _, ok := haveSet[strings.ToLower(w)]; ok {
			return true
		}
	}
	return false
}
