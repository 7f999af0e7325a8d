package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusApplied indicates that the application has been sent
	ApplicationStatusApplied = "applied"
	// ApplicationStatusInterview indicates that an interview is planned or done
	ApplicationStatusInterview = "interview"
	// ApplicationStatusOffer indicates that the company made an offer
	ApplicationStatusOffer = "offer"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
)

// Application records that a user applied to a job.
// One application per (user, job) is expected.
type Application struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_application_user_job,priority:1" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	JobID  uint      `gorm:"not null;uniqueIndex:idx_application_user_job,priority:2" json:"job_id"`
	Job    Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"job"`

	Status string  `gorm:"type:text;not null;default:'applied';check:chk_application_status,status IN ('applied','interview','offer','rejected')" json:"status"`
	Note   *string `gorm:"type:text" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
