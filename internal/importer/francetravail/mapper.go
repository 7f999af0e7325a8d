package francetravail

import (
	"strings"
	"time"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

// Placeholders used when the offer does not name its employer or workplace.
const (
	UnknownCompany  = "Entreprise non précisée"
	UnknownLocation = "Non précisé"

	detailURLPrefix = "https://candidat.francetravail.fr/offres/recherche/detail/"
)

var contractTypes = map[string]model.ContractType{
	"CDI": model.ContractCDI,
	"CDD": model.ContractCDD,
	"MIS": model.ContractCDD, // interim
	"SAI": model.ContractCDD, // seasonal
	"LIB": model.ContractFreelance,
}

// MapContractType maps a typeContrat code. Unknown codes yield nil.
func MapContractType(code string) *model.ContractType {
	ct, ok := contractTypes[code]
	if !ok {
		return nil
	}
	return &ct
}

// DetailURL is the public page of an offer.
func DetailURL(id string) string {
	return detailURLPrefix + id
}

// MapOffer turns an offer into a job draft. id and intitule are required.
func MapOffer(o Offer) (*model.Job, error) {
	id := strings.TrimSpace(o.ID)
	if id == "" {
		return nil, importer.MissingField("id")
	}
	title := strings.TrimSpace(o.Intitule)
	if title == "" {
		return nil, importer.MissingField("intitule")
	}

	company := UnknownCompany
	if o.Entreprise != nil && strings.TrimSpace(o.Entreprise.Nom) != "" {
		company = strings.TrimSpace(o.Entreprise.Nom)
	}

	location := UnknownLocation
	var city, department, postalCode *string
	if lt := o.LieuTravail; lt != nil {
		if lt.Libelle != "" {
			location = lt.Libelle
		}
		department, city = splitLibelle(lt.Libelle)
		if cp := strings.TrimSpace(lt.CodePostal); cp != "" && len(cp) <= 5 {
			postalCode = &cp
		}
	}

	url := DetailURL(id)
	if o.OrigineOffre != nil && o.OrigineOffre.URLOrigine != "" {
		url = o.OrigineOffre.URLOrigine
	}

	description := o.Description

	return &model.Job{
		ExternalID:   id,
		Source:       model.SourceFranceTravail,
		Company:      company,
		Title:        title,
		Location:     &location,
		City:         city,
		PostalCode:   postalCode,
		Department:   department,
		Remote:       importer.DetectRemote(title, o.Description),
		ContractType: MapContractType(o.TypeContrat),
		Description:  &description,
		URL:          url,
		PostedAt:     parseDate(o.DateCreation),
		IsActive:     true,
	}, nil
}

// splitLibelle reads "<department> - <city>". Either part is nil when it
// cannot be read.
func splitLibelle(libelle string) (department, city *string) {
	dept, rest, ok := strings.Cut(libelle, " - ")
	if !ok {
		return nil, nil
	}
	if dept = strings.TrimSpace(dept); dept != "" && len(dept) <= 3 {
		department = &dept
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		city = &rest
	}
	return department, city
}

// parseDate accepts RFC 3339 timestamps, with or without fractional seconds.
// Anything else yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// Key implements importer.Listing.
func (o Offer) Key() string {
	return o.ID
}

// Map implements importer.Listing.
func (o Offer) Map() (*model.Job, error) {
	return MapOffer(o)
}
