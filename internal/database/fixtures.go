package database

import (
	"time"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

// SampleTechnologies returns the technologies used by the seed and the test
// database.
func SampleTechnologies() []model.Technology {
	return []model.Technology{
		{Name: "JavaScript", Category: model.TechCategoryFrontend},
		{Name: "Node.js", Category: model.TechCategoryBackend},
		{Name: "PostgreSQL", Category: model.TechCategoryDatabase},
		{Name: "React", Category: model.TechCategoryFrontend},
		{Name: "Docker", Category: model.TechCategoryDevops},
	}
}

// SampleJob pairs a job with the names of the technologies it asks for.
type SampleJob struct {
	Job          model.Job
	Technologies []string
}

// SampleJobs returns a small but varied set of job postings. Dates are
// relative to now so that ordering by posted_at is stable.
func SampleJobs(now time.Time) []SampleJob {
	day := 24 * time.Hour
	posted := func(daysAgo int) *time.Time {
		t := now.Add(-time.Duration(daysAgo) * day).Truncate(time.Second)
		return &t
	}
	contract := func(c model.ContractType) *model.ContractType { return &c }
	salary := func(v int) *int { return &v }

	return []SampleJob{
		{
			Job: model.Job{
				ExternalID:   "ft-123456",
				Source:       model.SourceFranceTravail,
				Company:      "TechCorp",
				Title:        "Développeur JavaScript Junior",
				Location:     model.StringPtr("75 - Paris 11e Arrondissement"),
				City:         model.StringPtr("Paris 11e Arrondissement"),
				PostalCode:   model.StringPtr("75011"),
				Department:   model.StringPtr("75"),
				Remote:       model.RemotePartial,
				ContractType: contract(model.ContractCDI),
				SalaryMin:    salary(35000),
				SalaryMax:    salary(42000),
				Description:  model.StringPtr("Rejoignez une équipe produit sur une application React et Node.js. Télétravail partiel possible."),
				URL:          "https://candidat.francetravail.fr/offres/recherche/detail/ft-123456",
				PostedAt:     posted(1),
				IsActive:     true,
			},
			Technologies: []string{"JavaScript", "React", "Node.js"},
		},
		{
			Job: model.Job{
				ExternalID:   "ft-789012",
				Source:       model.SourceFranceTravail,
				Company:      "WebAgency",
				Title:        "Développeur Full Stack Node.js",
				Location:     model.StringPtr("69 - Lyon 3e Arrondissement"),
				City:         model.StringPtr("Lyon 3e Arrondissement"),
				PostalCode:   model.StringPtr("69003"),
				Department:   model.StringPtr("69"),
				Remote:       model.RemoteNotSpecified,
				ContractType: contract(model.ContractCDD),
				Description:  model.StringPtr("API Node.js et base PostgreSQL pour des clients e-commerce."),
				URL:          "https://candidat.francetravail.fr/offres/recherche/detail/ft-789012",
				PostedAt:     posted(3),
				IsActive:     true,
			},
			Technologies: []string{"Node.js", "PostgreSQL", "JavaScript"},
		},
		{
			Job: model.Job{
				ExternalID:   "ft-345678",
				Source:       model.SourceFranceTravail,
				Company:      "StartupLab",
				Title:        "Développeur React en alternance",
				Location:     model.StringPtr("33 - Bordeaux"),
				City:         model.StringPtr("Bordeaux"),
				PostalCode:   model.StringPtr("33000"),
				Department:   model.StringPtr("33"),
				Remote:       model.RemoteFull,
				ContractType: contract(model.ContractAlternance),
				Description:  model.StringPtr("Poste en full remote, rythme 3 semaines entreprise / 1 semaine école."),
				URL:          "https://candidat.francetravail.fr/offres/recherche/detail/ft-345678",
				PostedAt:     posted(5),
				IsActive:     true,
			},
			Technologies: []string{"React", "JavaScript"},
		},
		{
			Job: model.Job{
				ExternalID:   "ft-901234",
				Source:       model.SourceFranceTravail,
				Company:      "Entreprise non précisée",
				Title:        "Stage développeur DevOps",
				Location:     model.StringPtr("2A - Ajaccio"),
				City:         model.StringPtr("Ajaccio"),
				PostalCode:   model.StringPtr("20000"),
				Department:   model.StringPtr("2A"),
				Remote:       model.RemoteNotSpecified,
				ContractType: contract(model.ContractStage),
				Description:  model.StringPtr("Mise en place de pipelines CI et conteneurisation Docker."),
				URL:          "https://candidat.francetravail.fr/offres/recherche/detail/ft-901234",
				PostedAt:     posted(8),
				IsActive:     false,
			},
			Technologies: []string{"Docker"},
		},
		{
			Job: model.Job{
				ExternalID:   "adzuna-567890",
				Source:       model.SourceAdzuna,
				Company:      "CloudFactory",
				Title:        "Backend Developer Node.js",
				Location:     model.StringPtr("Nantes, Loire-Atlantique"),
				City:         model.StringPtr("Nantes"),
				Remote:       model.RemoteNotSpecified,
				ContractType: contract(model.ContractCDI),
				SalaryMin:    salary(45000),
				SalaryMax:    salary(55000),
				Description:  model.StringPtr("Microservices Node.js déployés avec Docker."),
				URL:          "https://www.adzuna.fr/details/567890",
				PostedAt:     posted(2),
				IsActive:     true,
			},
			Technologies: []string{"Node.js", "Docker", "PostgreSQL"},
		},
		{
			Job: model.Job{
				ExternalID:   "remoteok-111222",
				Source:       model.SourceRemoteOK,
				Company:      "DistributedCo",
				Title:        "Freelance React Developer",
				Location:     model.StringPtr("Worldwide"),
				Remote:       model.RemoteFull,
				ContractType: contract(model.ContractFreelance),
				Description:  model.StringPtr("100% remote mission on a React design system."),
				URL:          "https://remoteok.com/remote-jobs/111222",
				PostedAt:     posted(4),
				IsActive:     true,
			},
			Technologies: []string{"React", "JavaScript"},
		},
	}
}

// SampleUser is a seeded account.
type SampleUser struct {
	FirstName string
	LastName  string
	Email     string
}

// SampleUsers returns the seeded accounts.
func SampleUsers() []SampleUser {
	return []SampleUser{
		{FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"},
		{FirstName: "Bob", LastName: "Dupont", Email: "bob@example.com"},
	}
}
