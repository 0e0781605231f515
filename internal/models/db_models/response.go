package db_models

import (
	"github.com/google/uuid"
)

// Response is one transcribed answer to one question within one interview.
// The (interview_id, question_id) pair is unique; resubmitting an answer for
// the same question overwrites the stored transcript.
type Response struct {
	BaseModel
	InterviewID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_responses_interview_question,priority:1;index"`
	QuestionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_responses_interview_question,priority:2"`
	Transcript  string    `gorm:"type:text;not null"`
	Duration    *int      // seconds of speech, when the client reports it

	Question Question
}
