package adzuna

// Posting is one result of the Adzuna search endpoint.
type Posting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Created      string   `json:"created"`
	RedirectURL  string   `json:"redirect_url"`
	ContractType string   `json:"contract_type"`
	ContractTime string   `json:"contract_time"`
	SalaryMin    float64  `json:"salary_min"`
	SalaryMax    float64  `json:"salary_max"`
	Company      Company  `json:"company"`
	Location     Location `json:"location"`
}

// Company of a posting.
type Company struct {
	DisplayName string `json:"display_name"`
}

// Location of a posting. Area lists the administrative levels from the
// country down to the city.
type Location struct {
	DisplayName string   `json:"display_name"`
	Area        []string `json:"area"`
}

type searchResponse struct {
	Count   int       `json:"count"`
	Results []Posting `json:"results"`
}
