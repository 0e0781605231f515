package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrFeedbackNotReady   = errors.New("feedback not yet available")
	ErrDatabaseError      = errors.New("database error")
	ErrAIGenerationFailed = errors.New("ai generation failed")
)
