package francetravail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

func TestMapOffer_Scenario(t *testing.T) {
	job, err := MapOffer(Offer{
		ID:           "ft-999",
		Intitule:     "Dev Full Remote",
		Entreprise:   &Entreprise{Nom: "Acme"},
		TypeContrat:  "MIS",
		DateCreation: "2025-02-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "ft-999", job.ExternalID)
	assert.Equal(t, model.SourceFranceTravail, job.Source)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Dev Full Remote", job.Title)
	assert.Equal(t, model.RemoteFull, job.Remote)
	require.NotNil(t, job.ContractType)
	assert.Equal(t, model.ContractCDD, *job.ContractType)
	assert.Nil(t, job.SalaryMin)
	assert.Nil(t, job.SalaryMax)
	require.NotNil(t, job.PostedAt)
	assert.True(t, job.PostedAt.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, job.IsActive)

	require.NotNil(t, job.Location)
	assert.Equal(t, UnknownLocation, *job.Location)
	require.NotNil(t, job.Description)
	assert.Equal(t, "", *job.Description)
	assert.Equal(t, "https://candidat.francetravail.fr/offres/recherche/detail/ft-999", job.URL)
}

func TestMapOffer_Fallbacks(t *testing.T) {
	job, err := MapOffer(Offer{ID: "123ABC", Intitule: "Développeur Go"})
	require.NoError(t, err)

	assert.Equal(t, UnknownCompany, job.Company)
	assert.Equal(t, UnknownLocation, *job.Location)
	assert.Contains(t, job.URL, "123ABC")
	assert.Equal(t, DetailURL("123ABC"), job.URL)
	assert.Nil(t, job.ContractType)
	assert.Nil(t, job.PostedAt)
	assert.Nil(t, job.City)
	assert.Nil(t, job.Department)
	assert.Nil(t, job.PostalCode)
	assert.Equal(t, model.RemoteNotSpecified, job.Remote)

	job, err = MapOffer(Offer{ID: "x", Intitule: "t", Entreprise: &Entreprise{Nom: "  "}, OrigineOffre: &OrigineOffre{}})
	require.NoError(t, err)
	assert.Equal(t, UnknownCompany, job.Company)
	assert.Equal(t, DetailURL("x"), job.URL)
}

func TestMapOffer_OriginURLAndGeography(t *testing.T) {
	job, err := MapOffer(Offer{
		ID:           "200XYZ",
		Intitule:     "Développeur React",
		Description:  "Télétravail 2 jours par semaine",
		TypeContrat:  "CDI",
		DateCreation: "2025-01-20T10:00:00.000Z",
		LieuTravail:  &LieuTravail{Libelle: "2A - Ajaccio", CodePostal: "20000"},
		OrigineOffre: &OrigineOffre{URLOrigine: "https://example.com/offre/200XYZ"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/offre/200XYZ", job.URL)
	assert.Equal(t, "2A - Ajaccio", *job.Location)
	assert.Equal(t, "2A", *job.Department)
	assert.Equal(t, "Ajaccio", *job.City)
	assert.Equal(t, "20000", *job.PostalCode)
	assert.Equal(t, model.RemotePartial, job.Remote)
	assert.Equal(t, model.ContractCDI, *job.ContractType)
	require.NotNil(t, job.PostedAt)
	assert.Equal(t, 2025, job.PostedAt.Year())
}

func TestMapOffer_RequiredFields(t *testing.T) {
	_, err := MapOffer(Offer{Intitule: "No id"})
	assert.ErrorIs(t, err, importer.ErrMapping)

	_, err = MapOffer(Offer{ID: "ft-1"})
	assert.ErrorIs(t, err, importer.ErrMapping)
	assert.Contains(t, err.Error(), "intitule")
}

func TestMapOffer_UnparseableDate(t *testing.T) {
	job, err := MapOffer(Offer{ID: "ft-2", Intitule: "Dev", DateCreation: "01/02/2025"})
	require.NoError(t, err)
	assert.Nil(t, job.PostedAt)
}

func TestMapContractType(t *testing.T) {
	table := map[string]model.ContractType{
		"CDI": model.ContractCDI,
		"CDD": model.ContractCDD,
		"MIS": model.ContractCDD,
		"SAI": model.ContractCDD,
		"LIB": model.ContractFreelance,
	}
	for code, want := range table {
		got := MapContractType(code)
		require.NotNil(t, got, code)
		assert.Equal(t, want, *got, code)
	}

	for _, code := range []string{"", "FRA", "DIN", "cdi", "STAGE", "TTI"} {
		assert.Nil(t, MapContractType(code), code)
	}
}

func TestSplitLibelle(t *testing.T) {
	tests := []struct {
		libelle    string
		department *string
		city       *string
	}{
		{"75 - Paris 11e Arrondissement", model.StringPtr("75"), model.StringPtr("Paris 11e Arrondissement")},
		{"974 - Saint-Denis", model.StringPtr("974"), model.StringPtr("Saint-Denis")},
		{"France", nil, nil},
		{"Auvergne-Rhône-Alpes - Lyon", nil, model.StringPtr("Lyon")},
		{"33 - ", model.StringPtr("33"), nil},
	}
	for _, tt := range tests {
		dept, city := splitLibelle(tt.libelle)
		assert.Equal(t, tt.department, dept, tt.libelle)
		assert.Equal(t, tt.city, city, tt.libelle)
	}
}

func TestOfferIsListing(t *testing.T) {
	var l importer.Listing = Offer{ID: "ft-3", Intitule: "Dev"}
	assert.Equal(t, "ft-3", l.Key())
	job, err := l.Map()
	require.NoError(t, err)
	assert.Equal(t, "ft-3", job.ExternalID)
}
