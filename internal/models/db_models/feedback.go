package db_models

import (
	"github.com/google/uuid"
)

// Feedback is the single synthesized evaluation report for a completed
// interview. One row per interview; OverallScore is on a 1-10 scale.
type Feedback struct {
	BaseModel
	InterviewID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OverallScore     float64   `gorm:"not null"`
	Strengths        string    `gorm:"type:text;not null"`
	Improvements     string    `gorm:"type:text;not null"`
	DetailedAnalysis string    `gorm:"type:text;not null"`
}
