package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a job seeker account.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	FirstName string    `gorm:"type:varchar(30);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Applications []Application `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites    []Favorite    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ViewedJobs   []ViewedJob   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
