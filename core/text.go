package core

import "strings"

// Field caps for searchable text, matching the corpus the embeddings were
// calibrated against.
const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
	maxPortfolioEntries  = 10
)

// SearchableText flattens a profile into the single string used as embedding
// input. Field order is stable: changing it changes every vector in the
// corpus and requires a full reindex.
func SearchableText(p *ProfileRecord) string {
	parts := make([]string, 0, 12)

	if p.Name != "" {
		parts = append(parts, "Name: "+p.Name)
	}
	if p.Headline != "" {
		parts = append(parts, "Headline: "+p.Headline)
	}
	if p.Location != "" {
		parts = append(parts, "Location: "+p.Location)
	}
	if p.CurrentRole != "" {
		parts = append(parts, "Current Role: "+p.CurrentRole)
	}
	if p.Company != "" {
		parts = append(parts, "Company: "+p.Company)
	}
	if p.Summary != "" {
		parts = append(parts, "Summary: "+p.Summary)
	}

	if len(p.Experience) > 0 {
		entries := p.Experience
		if len(entries) > maxExperienceEntries {
			entries = entries[:maxExperienceEntries]
		}
		exp := make([]string, 0, len(entries))
		for _, e := range entries {
			exp = append(exp, e.Title+" at "+e.Company)
		}
		parts = append(parts, "Experience: "+strings.Join(exp, "; "))
	}

	if len(p.Education) > 0 {
		entries := p.Education
		if len(entries) > maxEducationEntries {
			entries = entries[:maxEducationEntries]
		}
		edu := make([]string, 0, len(entries))
		for _, e := range entries {
			edu = append(edu, e.Degree+" from "+e.School)
		}
		parts = append(parts, "Education: "+strings.Join(edu, "; "))
	}

	if p.IsInvestor {
		parts = append(parts, "Is an investor")
	}
	if p.InvestmentRole != "" {
		parts = append(parts, "Investment Role: "+p.InvestmentRole)
	}
	if len(p.InvestmentFocus) > 0 {
		parts = append(parts, "Investment Focus: "+strings.Join(p.InvestmentFocus, ", "))
	}
	if len(p.PortfolioCompanies) > 0 {
		companies := p.PortfolioCompanies
		if len(companies) > maxPortfolioEntries {
			companies = companies[:maxPortfolioEntries]
		}
		parts = append(parts, "Portfolio Companies: "+strings.Join(companies, ", "))
	}
	if len(p.SectorsOfInterest) > 0 {
		parts = append(parts, "Sectors of Interest: "+strings.Join(p.SectorsOfInterest, ", "))
	}
	if len(p.InvestmentStage) > 0 {
		parts = append(parts, "Investment Stage: "+strings.Join(p.InvestmentStage, ", "))
	}

	return strings.Join(parts, " | ")
}
