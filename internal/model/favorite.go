package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a job bookmarked by a user.
type Favorite struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_job,priority:1" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	JobID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_job,priority:2" json:"job_id"`
	Job    Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"job"`

	CreatedAt time.Time `json:"created_at"`
}

// ViewedJob records that a user opened a job.
type ViewedJob struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_viewed_job_user_job,priority:1" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	JobID  uint      `gorm:"not null;uniqueIndex:idx_viewed_job_user_job,priority:2" json:"job_id"`
	Job    Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"job"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"viewed_at"`
}
