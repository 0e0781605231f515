package db_models

import (
	"fmt"

	"github.com/google/uuid"
)

// InterviewStatus values mirror the interview_status column.
type InterviewStatus string

const (
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
)

// ParseInterviewStatus converts a raw string to an InterviewStatus, returning
// an error for unknown values.
func ParseInterviewStatus(s string) (InterviewStatus, error) {
	st := InterviewStatus(s)
	switch st {
	case StatusInProgress, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown interview status %q", s)
}

// CanTransition returns true when moving from -> to is permitted.
// in_progress -> completed is the only transition; completed is terminal.
func CanTransition(from, to InterviewStatus) bool {
	return from == StatusInProgress && to == StatusCompleted
}

// Interview is one mock-interview session of a user answering the question
// set for a chosen job type. Status starts at in_progress and flips to
// completed exactly once, when feedback is synthesized.
type Interview struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	JobType     string          `gorm:"type:varchar(64);not null"`
	Status      InterviewStatus `gorm:"type:varchar(32);not null;default:in_progress"`
	CompletedAt *int64

	Responses []Response
	Feedback  *Feedback
}
