package db_models

// Question categories mirror the seeded bank.
const (
	CategoryGeneral    = "general"
	CategoryTechnical  = "technical"
	CategoryBehavioral = "behavioral"
	CategoryEngagement = "engagement"
)

// Question is one entry of the read-only question bank. Rows are immutable
// after seeding; (job_type, order) defines the ask sequence for a role.
type Question struct {
	BaseModel
	JobType      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_questions_job_type_order,priority:1;index"`
	QuestionText string `gorm:"type:text;not null"`
	Order        int    `gorm:"column:question_order;not null;uniqueIndex:idx_questions_job_type_order,priority:2"`
	Category     string `gorm:"type:varchar(32);not null"`
}
