package model

import (
	"time"

	"gorm.io/datatypes"
)

// Import run statuses
var (
	ImportRunSucceeded = "succeeded"
	ImportRunFailed    = "failed"
)

// Stages a single record can fail at during an import.
const (
	StageMap   = "map"
	StageStore = "store"
)

// RecordFailure describes one source record that could not be imported.
type RecordFailure struct {
	ExternalID string `json:"external_id"`
	Stage      string `json:"stage"`
	Message    string `json:"message"`
}

// ImportRun is the audit trail of one execution of the import pipeline.
type ImportRun struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Source     string `gorm:"type:varchar(255);not null;index" json:"source"`
	Keywords   string `gorm:"type:text" json:"keywords"`
	Experience int    `json:"experience"`
	Range      string `gorm:"type:varchar(32)" json:"range"`

	Status   string                             `gorm:"type:text;not null" json:"status"`
	Fetched  int                                `json:"fetched"`
	Created  int                                `json:"created"`
	Updated  int                                `json:"updated"`
	Failed   int                                `json:"failed"`
	Failures datatypes.JSONSlice[RecordFailure] `gorm:"type:jsonb" json:"failures"`
	Error    string                             `gorm:"type:text" json:"error,omitempty"`

	StartedAt  time.Time `gorm:"index" json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
