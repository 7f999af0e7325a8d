package adzuna

import (
	"math"
	"strings"
	"time"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

// Placeholders, shared with the France Travail source so that listings read
// the same whatever their origin.
const (
	UnknownCompany  = "Entreprise non précisée"
	UnknownLocation = "Non précisé"

	detailURLPrefix = "https://www.adzuna.fr/details/"
)

var contractTypes = map[string]model.ContractType{
	"permanent": model.ContractCDI,
	"contract":  model.ContractCDD,
}

// MapContractType maps an Adzuna contract_type. Unknown values yield nil.
func MapContractType(v string) *model.ContractType {
	ct, ok := contractTypes[strings.ToLower(strings.TrimSpace(v))]
	if !ok {
		return nil
	}
	return &ct
}

// MapPosting turns a posting into a job draft. id and title are required.
func MapPosting(p Posting) (*model.Job, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, importer.MissingField("id")
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, importer.MissingField("title")
	}

	company := strings.TrimSpace(p.Company.DisplayName)
	if company == "" {
		company = UnknownCompany
	}

	location := strings.TrimSpace(p.Location.DisplayName)
	if location == "" {
		location = UnknownLocation
	}
	var city *string
	if n := len(p.Location.Area); n > 1 {
		city = model.StringPtr(strings.TrimSpace(p.Location.Area[n-1]))
	}

	url := p.RedirectURL
	if url == "" {
		url = detailURLPrefix + id
	}

	description := p.Description

	return &model.Job{
		ExternalID:   id,
		Source:       model.SourceAdzuna,
		Company:      company,
		Title:        title,
		Location:     &location,
		City:         city,
		Remote:       importer.DetectRemote(title, p.Description),
		ContractType: MapContractType(p.ContractType),
		SalaryMin:    salary(p.SalaryMin),
		SalaryMax:    salary(p.SalaryMax),
		Description:  &description,
		URL:          url,
		PostedAt:     parseDate(p.Created),
		IsActive:     true,
	}, nil
}

func salary(v float64) *int {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n := int(math.Round(v))
	return &n
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// Key implements importer.Listing.
func (p Posting) Key() string {
	return p.ID
}

// Map implements importer.Listing.
func (p Posting) Map() (*model.Job, error) {
	return MapPosting(p)
}
