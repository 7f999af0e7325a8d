package adzuna

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

func TestMapPosting(t *testing.T) {
	job, err := MapPosting(Posting{
		ID:           "567890",
		Title:        "Développeur Node.js (télétravail partiel)",
		Description:  "API REST et PostgreSQL",
		Created:      "2025-03-04T10:20:30Z",
		RedirectURL:  "https://www.adzuna.fr/land/ad/567890",
		ContractType: "permanent",
		SalaryMin:    40000.4,
		SalaryMax:    47999.6,
		Company:      Company{DisplayName: "CloudFactory"},
		Location:     Location{DisplayName: "Nantes, Loire-Atlantique", Area: []string{"France", "Pays de la Loire", "Loire-Atlantique", "Nantes"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "567890", job.ExternalID)
	assert.Equal(t, model.SourceAdzuna, job.Source)
	assert.Equal(t, "CloudFactory", job.Company)
	assert.Equal(t, model.RemotePartial, job.Remote)
	require.NotNil(t, job.ContractType)
	assert.Equal(t, model.ContractCDI, *job.ContractType)
	require.NotNil(t, job.SalaryMin)
	require.NotNil(t, job.SalaryMax)
	assert.Equal(t, 40000, *job.SalaryMin)
	assert.Equal(t, 48000, *job.SalaryMax)
	assert.Equal(t, "https://www.adzuna.fr/land/ad/567890", job.URL)
	require.NotNil(t, job.Location)
	assert.Equal(t, "Nantes, Loire-Atlantique", *job.Location)
	require.NotNil(t, job.City)
	assert.Equal(t, "Nantes", *job.City)
	require.NotNil(t, job.PostedAt)
	assert.True(t, job.PostedAt.Equal(time.Date(2025, 3, 4, 10, 20, 30, 0, time.UTC)))
	assert.True(t, job.IsActive)
}

func TestMapPosting_Fallbacks(t *testing.T) {
	job, err := MapPosting(Posting{ID: "42", Title: "Dev", Created: "yesterday", SalaryMin: -1})
	require.NoError(t, err)

	assert.Equal(t, UnknownCompany, job.Company)
	require.NotNil(t, job.Location)
	assert.Equal(t, UnknownLocation, *job.Location)
	assert.Nil(t, job.City)
	assert.Equal(t, "https://www.adzuna.fr/details/42", job.URL)
	assert.Nil(t, job.ContractType)
	assert.Nil(t, job.SalaryMin)
	assert.Nil(t, job.SalaryMax)
	assert.Nil(t, job.PostedAt)
	assert.Equal(t, model.RemoteNotSpecified, job.Remote)
	require.NotNil(t, job.Description)
	assert.Equal(t, "", *job.Description)
}

func TestMapPosting_RequiredFields(t *testing.T) {
	_, err := MapPosting(Posting{Title: "Dev"})
	assert.ErrorIs(t, err, importer.ErrMapping)

	_, err = MapPosting(Posting{ID: "1", Title: "  "})
	assert.ErrorIs(t, err, importer.ErrMapping)
	assert.Contains(t, err.Error(), "title")
}

func TestMapContractType(t *testing.T) {
	cases := map[string]*model.ContractType{
		"permanent": ptr(model.ContractCDI),
		"Contract":  ptr(model.ContractCDD),
		"":          nil,
		"full_time": nil,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, MapContractType(in))
		})
	}
}

func TestPosting_IsListing(t *testing.T) {
	var l importer.Listing = Posting{ID: "7", Title: "Dev Go"}
	assert.Equal(t, "7", l.Key())

	job, err := l.Map()
	require.NoError(t, err)
	assert.Equal(t, "Dev Go", job.Title)
}

func ptr(c model.ContractType) *model.ContractType {
	return &c
}
