// Package model contain gorm model for recording data to database
package model

import (
	"time"
)

// RemoteMode tells how much of the job can be done remotely.
type RemoteMode string

// Remote modes
const (
	RemoteFull         RemoteMode = "full"
	RemotePartial      RemoteMode = "partial"
	RemoteNone         RemoteMode = "none"
	RemoteNotSpecified RemoteMode = "not_specified"
)

// ContractType is the canonical contract of a job.
type ContractType string

// Contract types
const (
	ContractCDI        ContractType = "CDI"
	ContractCDD        ContractType = "CDD"
	ContractStage      ContractType = "stage"
	ContractAlternance ContractType = "alternance"
	ContractFreelance  ContractType = "freelance"
)

// Job sources known by the importer.
const (
	SourceFranceTravail = "FranceTravail"
	SourceAdzuna        = "Adzuna"
	SourceRemoteOK      = "RemoteOK"
)

// KnownSources lists every job source name.
var KnownSources = []string{SourceFranceTravail, SourceAdzuna, SourceRemoteOK}

// Job is the canonical job posting, whatever source it comes from.
// The pair (ExternalID, Source) is unique. IsActive carries no column default
// so that an explicit false survives inserts.
type Job struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID string `gorm:"type:varchar(255);not null;uniqueIndex:unique_external_job,priority:1" json:"external_id"`
	Source     string `gorm:"type:varchar(255);not null;uniqueIndex:unique_external_job,priority:2" json:"source"`

	Company    string  `gorm:"type:text;not null" json:"company"`
	Title      string  `gorm:"type:text;not null" json:"title"`
	Location   *string `gorm:"type:text" json:"location"`
	City       *string `gorm:"type:text;index:idx_job_city" json:"city"`
	PostalCode *string `gorm:"type:varchar(5)" json:"postal_code"`
	Department *string `gorm:"type:varchar(3);index:idx_job_department" json:"department"`

	Remote       RemoteMode    `gorm:"type:text;not null;default:'not_specified';check:chk_job_remote,remote IN ('full','partial','none','not_specified')" json:"remote"`
	ContractType *ContractType `gorm:"type:text;check:chk_job_contract_type,contract_type IN ('CDI','CDD','stage','alternance','freelance')" json:"contract_type"`
	SalaryMin    *int          `json:"salary_min"`
	SalaryMax    *int          `json:"salary_max"`
	Description  *string       `gorm:"type:text" json:"description"`
	URL          string        `gorm:"type:text;not null" json:"url"`
	PostedAt     *time.Time    `json:"posted_at"`
	IsActive     bool          `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Technologies []Technology `gorm:"many2many:job_technologies" json:"technologies,omitempty"`
}

// JobMutableColumns are overwritten when a job is imported again.
// external_id, source, id and created_at are never part of it.
var JobMutableColumns = []string{
	"company",
	"title",
	"location",
	"city",
	"postal_code",
	"department",
	"remote",
	"contract_type",
	"salary_min",
	"salary_max",
	"description",
	"url",
	"posted_at",
	"is_active",
	"updated_at",
}

// Valid reports whether m is one of the known remote modes.
func (m RemoteMode) Valid() bool {
	switch m {
	case RemoteFull, RemotePartial, RemoteNone, RemoteNotSpecified:
		return true
	}
	return false
}

// Valid reports whether c is one of the known contract types.
func (c ContractType) Valid() bool {
	switch c {
	case ContractCDI, ContractCDD, ContractStage, ContractAlternance, ContractFreelance:
		return true
	}
	return false
}
