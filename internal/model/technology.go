package model

// Technology categories
var (
	TechCategoryFrontend = "frontend"
	TechCategoryBackend  = "backend"
	TechCategoryDatabase = "database"
	TechCategoryDevops   = "devops"
	TechCategoryOther    = "other"
)

// Technology is a skill that a job can ask for.
type Technology struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Category string `gorm:"type:text;not null;default:'other'" json:"category"`

	Jobs []Job `gorm:"many2many:job_technologies" json:"jobs,omitempty"`
}
