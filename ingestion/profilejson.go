package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// profileJSON mirrors the shape produced by the profile extraction
// collaborator: top-level name and linkedin_url, with the remaining fields
// nested under personal_info and investment_profile.
type profileJSON struct {
	Name         string `json:"name"`
	LinkedInURL  string `json:"linkedin_url"`
	PersonalInfo struct {
		Headline    string `json:"headline"`
		Location    string `json:"location"`
		CurrentRole string `json:"current_role"`
		Company     string `json:"company"`
		Summary     string `json:"summary"`
		Experience  []struct {
			Title       string `json:"title"`
			Company     string `json:"company"`
			Duration    string `json:"duration"`
			Description string `json:"description"`
		} `json:"experience"`
		Education []struct {
			School string `json:"school"`
			Degree string `json:"degree"`
		} `json:"education"`
	} `json:"personal_info"`
	InvestmentProfile struct {
		IsInvestor         bool     `json:"is_investor"`
		InvestmentRole     string   `json:"investment_role"`
		InvestmentFocus    []string `json:"investment_focus"`
		PortfolioCompanies []string `json:"portfolio_companies"`
		SectorsOfInterest  []string `json:"sectors_of_interest"`
		InvestmentStage    []string `json:"investment_stage"`
	} `json:"investment_profile"`
}

// ParseProfilesJSON decodes a JSON array of extracted profiles into domain
// records. LinkedIn URLs are left as-is; the pipeline normalizes them on
// ingestion.
func ParseProfilesJSON(r io.Reader) ([]*core.ProfileRecord, error) {
	var raw []profileJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid profiles JSON: %w", err)
	}

	records := make([]*core.ProfileRecord, 0, len(raw))
	for _, p := range raw {
		record := &core.ProfileRecord{
			Name:               p.Name,
			LinkedInURL:        p.LinkedInURL,
			Headline:           p.PersonalInfo.Headline,
			Location:           p.PersonalInfo.Location,
			CurrentRole:        p.PersonalInfo.CurrentRole,
			Company:            p.PersonalInfo.Company,
			Summary:            p.PersonalInfo.Summary,
			IsInvestor:         p.InvestmentProfile.IsInvestor,
			InvestmentRole:     p.InvestmentProfile.InvestmentRole,
			InvestmentFocus:    p.InvestmentProfile.InvestmentFocus,
			PortfolioCompanies: p.InvestmentProfile.PortfolioCompanies,
			SectorsOfInterest:  p.InvestmentProfile.SectorsOfInterest,
			InvestmentStage:    p.InvestmentProfile.InvestmentStage,
		}
		for _, e := range p.PersonalInfo.Experience {
			record.Experience = append(record.Experience, core.Experience{
				Title:       e.Title,
				Company:     e.Company,
				Duration:    e.Duration,
				Description: e.Description,
			})
		}
		for _, e := range p.PersonalInfo.Education {
			record.Education = append(record.Education, core.Education{
				School: e.School,
				Degree: e.Degree,
			})
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadProfilesJSON reads extracted profiles from a JSON file.
func LoadProfilesJSON(path string) ([]*core.ProfileRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseProfilesJSON(f)
}
