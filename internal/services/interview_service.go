package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"mockmate/internal/models/db_models"
	"mockmate/internal/models/request_models"
	"mockmate/internal/models/response_models"
	"mockmate/internal/repositories"
	"mockmate/pkg/utils"
)

type InterviewServiceInterface interface {
	StartInterview(ctx context.Context, req request_models.StartInterviewRequest) (*response_models.StartInterviewResponse, error)
	RecordResponse(ctx context.Context, req request_models.SubmitResponseRequest) (*response_models.SubmitResponseResponse, error)
}

type InterviewService struct {
	interviewRepo   repositories.InterviewRepositoryInterface
	responseRepo    repositories.ResponseRepositoryInterface
	questionService QuestionServiceInterface
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	questionService QuestionServiceInterface,
) InterviewServiceInterface {
	return &InterviewService{
		interviewRepo:   interviewRepo,
		responseRepo:    responseRepo,
		questionService: questionService,
	}
}

// StartInterview creates an in_progress interview for the job type and
// returns it with the ordered question set. The user id is generated when
// the caller does not supply one.
func (s *InterviewService) StartInterview(ctx context.Context, req request_models.StartInterviewRequest) (*response_models.StartInterviewResponse, error) {
	jobType := strings.TrimSpace(req.JobType)
	if jobType == "" {
		return nil, fmt.Errorf("%w: job type is required", utils.ErrInvalidInput)
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid user id", utils.ErrInvalidInput)
		}
		userID = parsed
	}

	interview := &db_models.Interview{
		UserID:  userID,
		JobType: jobType,
		Status:  db_models.StatusInProgress,
	}
	if err := s.interviewRepo.CreateInterview(ctx, interview); err != nil {
		return nil, utils.ErrDatabaseError
	}

	questions, err := s.questionService.ListQuestionsByJobType(ctx, jobType)
	if err != nil {
		return nil, err
	}

	out := &response_models.StartInterviewResponse{
		Interview: response_models.InterviewSummary{
			ID:        interview.ID.String(),
			UserID:    interview.UserID.String(),
			JobType:   interview.JobType,
			Status:    string(interview.Status),
			CreatedAt: utils.FormatUnixSeconds(interview.CreatedAt),
		},
		Questions: make([]response_models.QuestionItem, 0, len(questions)),
	}
	for _, q := range questions {
		out.Questions = append(out.Questions, response_models.QuestionItem{
			ID:       q.ID.String(),
			Text:     q.QuestionText,
			Order:    q.Order,
			Category: q.Category,
		})
	}
	return out, nil
}

// RecordResponse stores one transcribed answer. Referential integrity of the
// interview and question ids is the store's responsibility; a resubmission
// for the same question overwrites the earlier transcript.
func (s *InterviewService) RecordResponse(ctx context.Context, req request_models.SubmitResponseRequest) (*response_models.SubmitResponseResponse, error) {
	if req.InterviewID == "" || req.QuestionID == "" || strings.TrimSpace(req.Transcript) == "" {
		return nil, fmt.Errorf("%w: interview id, question id, and transcript are required", utils.ErrInvalidInput)
	}

	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid interview id", utils.ErrInvalidInput)
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid question id", utils.ErrInvalidInput)
	}

	response := &db_models.Response{
		InterviewID: interviewID,
		QuestionID:  questionID,
		Transcript:  req.Transcript,
		Duration:    req.Duration,
	}
	if err := s.responseRepo.UpsertResponse(ctx, response); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SubmitResponseResponse{
		Success: true,
		Response: response_models.ResponseItem{
			ID:         response.ID.String(),
			Transcript: response.Transcript,
			Duration:   response.Duration,
			CreatedAt:  utils.FormatUnixSeconds(response.CreatedAt),
		},
	}, nil
}
