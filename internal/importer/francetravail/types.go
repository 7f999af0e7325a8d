package francetravail

// Offer is one result of the offres/search endpoint. Only the fields the
// mapper reads are decoded.
type Offer struct {
	ID           string        `json:"id"`
	Intitule     string        `json:"intitule"`
	Description  string        `json:"description"`
	DateCreation string        `json:"dateCreation"`
	TypeContrat  string        `json:"typeContrat"`
	Entreprise   *Entreprise   `json:"entreprise,omitempty"`
	LieuTravail  *LieuTravail  `json:"lieuTravail,omitempty"`
	OrigineOffre *OrigineOffre `json:"origineOffre,omitempty"`
	Salaire      *Salaire      `json:"salaire,omitempty"`
}

// Entreprise is the employer of an offer.
type Entreprise struct {
	Nom string `json:"nom"`
}

// LieuTravail is the workplace of an offer. Libelle usually reads
// "75 - Paris 11e Arrondissement".
type LieuTravail struct {
	Libelle    string `json:"libelle"`
	CodePostal string `json:"codePostal"`
	Commune    string `json:"commune"`
}

// OrigineOffre points at the original posting.
type OrigineOffre struct {
	URLOrigine string `json:"urlOrigine"`
}

// Salaire is free text and is not parsed.
type Salaire struct {
	Libelle string `json:"libelle"`
}

type searchResponse struct {
	Resultats []Offer `json:"resultats"`
}
