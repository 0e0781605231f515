package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"mockmate/internal/models/db_models"
	"mockmate/internal/models/response_models"
	"mockmate/internal/repositories"
	"mockmate/pkg/utils"
)

type FeedbackServiceInterface interface {
	CompleteInterview(ctx context.Context, interviewID string) (*response_models.CompleteInterviewResponse, error)
	GetFeedbackReport(ctx context.Context, interviewID string) (*response_models.FeedbackReportResponse, error)
}

type FeedbackService struct {
	interviewRepo repositories.InterviewRepositoryInterface
	feedbackRepo  repositories.FeedbackRepositoryInterface
	aiClient      utils.FeedbackClientInterface
}

func NewFeedbackService(
	interviewRepo repositories.InterviewRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
	aiClient utils.FeedbackClientInterface,
) FeedbackServiceInterface {
	return &FeedbackService{
		interviewRepo: interviewRepo,
		feedbackRepo:  feedbackRepo,
		aiClient:      aiClient,
	}
}

// feedbackPayload is the strict JSON object the completion service is asked
// to return.
type feedbackPayload struct {
	OverallScore     float64 `json:"overallScore"`
	Strengths        string  `json:"strengths"`
	Improvements     string  `json:"improvements"`
	DetailedAnalysis string  `json:"detailedAnalysis"`
}

// defaultFeedback is the canned report substituted whenever the completion
// service fails or returns something unusable.
func defaultFeedback() feedbackPayload {
	return feedbackPayload{
		OverallScore:     7.0,
		Strengths:        "Reasonable clarity and completion of all responses.",
		Improvements:     "Add more specific examples and tighten structure.",
		DetailedAnalysis: "Generally satisfactory. Improve by giving structured, confident responses using the STAR method.",
	}
}

// CompleteInterview synthesizes the feedback report for an interview. The
// external call is fail-fast with no retry: any error, empty reply, or
// unparseable JSON substitutes the default report. The interview is marked
// completed before feedback is persisted, so it completes even on fallback.
// A second call for an already-completed interview returns the stored report.
func (s *FeedbackService) CompleteInterview(ctx context.Context, interviewID string) (*response_models.CompleteInterviewResponse, error) {
	if interviewID == "" {
		return nil, fmt.Errorf("%w: interview id is required", utils.ErrInvalidInput)
	}

	interview, err := s.interviewRepo.GetInterviewWithResponses(ctx, interviewID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if interview == nil {
		return nil, utils.ErrInterviewNotFound
	}

	if !db_models.CanTransition(interview.Status, db_models.StatusCompleted) && interview.Feedback != nil {
		return &response_models.CompleteInterviewResponse{
			Success:  true,
			Feedback: toFeedbackItem(interview.Feedback),
		}, nil
	}

	payload, err := s.generateFeedback(ctx, interview)
	if err != nil {
		log.Printf("Error generating feedback for interview %s: %v", interviewID, err)
		payload = defaultFeedback()
	}

	if err := s.interviewRepo.MarkInterviewCompleted(ctx, interviewID, utils.NowUnixSeconds()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	feedback := &db_models.Feedback{
		InterviewID:      interview.ID,
		OverallScore:     payload.OverallScore,
		Strengths:        payload.Strengths,
		Improvements:     payload.Improvements,
		DetailedAnalysis: payload.DetailedAnalysis,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CompleteInterviewResponse{
		Success:  true,
		Feedback: toFeedbackItem(feedback),
	}, nil
}

// GetFeedbackReport returns the interview summary, its feedback, and the
// stored responses joined to their questions, ordered by question order.
func (s *FeedbackService) GetFeedbackReport(ctx context.Context, interviewID string) (*response_models.FeedbackReportResponse, error) {
	if interviewID == "" {
		return nil, fmt.Errorf("%w: interview id is required", utils.ErrInvalidInput)
	}

	interview, err := s.interviewRepo.GetInterviewWithResponses(ctx, interviewID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if interview == nil {
		return nil, utils.ErrInterviewNotFound
	}
	if interview.Feedback == nil {
		return nil, utils.ErrFeedbackNotReady
	}

	out := &response_models.FeedbackReportResponse{
		Interview: response_models.InterviewSummary{
			ID:          interview.ID.String(),
			JobType:     interview.JobType,
			CreatedAt:   utils.FormatUnixSeconds(interview.CreatedAt),
			CompletedAt: utils.FormatUnixSecondsPtr(interview.CompletedAt),
		},
		Feedback:  toFeedbackItem(interview.Feedback),
		Responses: make([]response_models.AnsweredQuestion, 0, len(interview.Responses)),
	}
	for _, r := range interview.Responses {
		out.Responses = append(out.Responses, response_models.AnsweredQuestion{
			ID:         r.ID.String(),
			Transcript: r.Transcript,
			Question: response_models.QuestionSnapshot{
				QuestionText: r.Question.QuestionText,
				Category:     r.Question.Category,
				Order:        r.Question.Order,
			},
		})
	}
	return out, nil
}

func (s *FeedbackService) generateFeedback(ctx context.Context, interview *db_models.Interview) (feedbackPayload, error) {
	if s.aiClient == nil {
		return feedbackPayload{}, utils.ErrAIGenerationFailed
	}

	prompt := buildFeedbackPrompt(interview)

	raw, err := s.aiClient.GenerateFeedbackJSON(ctx, prompt)
	if err != nil {
		return feedbackPayload{}, fmt.Errorf("%w: %v", utils.ErrAIGenerationFailed, err)
	}
	log.Printf("Raw feedback text: %s", raw)

	return parseFeedbackJSON(raw)
}

// parseFeedbackJSON validates the model reply. The service enforces no
// schema, so anything that is not the requested object falls back.
func parseFeedbackJSON(raw string) (feedbackPayload, error) {
	cleaned := cleanJSONResponse(raw)
	if cleaned == "" {
		return feedbackPayload{}, fmt.Errorf("%w: empty reply", utils.ErrAIGenerationFailed)
	}

	var payload feedbackPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return feedbackPayload{}, fmt.Errorf("%w: invalid JSON: %v", utils.ErrAIGenerationFailed, err)
	}
	if payload.OverallScore < 1 || payload.OverallScore > 10 {
		return feedbackPayload{}, fmt.Errorf("%w: score %.1f out of range", utils.ErrAIGenerationFailed, payload.OverallScore)
	}
	if payload.Strengths == "" || payload.Improvements == "" || payload.DetailedAnalysis == "" {
		return feedbackPayload{}, fmt.Errorf("%w: missing feedback fields", utils.ErrAIGenerationFailed)
	}
	return payload, nil
}

// cleanJSONResponse strips markdown fences some models wrap around JSON.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// buildFeedbackPrompt renders the evaluation prompt: job type, then each
// response with its category, question text, and transcript in ask order.
func buildFeedbackPrompt(interview *db_models.Interview) string {
	var prompt strings.Builder

	prompt.WriteString("You are a career coach and expert interviewer for the job type below. ")
	prompt.WriteString("Analyze the following interview responses and provide detailed feedback.\n\n")
	prompt.WriteString(fmt.Sprintf("Job Type: %s\n", formatJobType(interview.JobType)))
	prompt.WriteString("Interview Responses:\n")
	for i, r := range interview.Responses {
		prompt.WriteString(fmt.Sprintf("Q%d (%s): %s Answer: %s\n",
			i+1, r.Question.Category, r.Question.QuestionText, r.Transcript))
	}

	prompt.WriteString("\nPlease respond *only* with this valid JSON-only feedback. ")
	prompt.WriteString("Do not include any additional commentary, markdown formatting, or explanation text.\n")
	prompt.WriteString(`{
  "overallScore": <number between 1-10>,
  "strengths": "<brief summary of strengths>",
  "improvements": "<brief summary of areas for improvement>",
  "detailedAnalysis": "<detailed analysis with specific examples and suggestions>"
}
`)
	prompt.WriteString(`
Evaluate based on:
- Clarity and structure of responses
- Relevance to the questions asked
- Depth and specificity of examples
- Communication skills and confidence
- Technical knowledge (where applicable)
- Professional demeanor

Be concise but actionable.
`)
	return prompt.String()
}

// formatJobType turns "software-developer" into "Software Developer".
func formatJobType(jobType string) string {
	words := strings.Split(jobType, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func toFeedbackItem(f *db_models.Feedback) response_models.FeedbackItem {
	return response_models.FeedbackItem{
		ID:               f.ID.String(),
		InterviewID:      f.InterviewID.String(),
		OverallScore:     f.OverallScore,
		Strengths:        f.Strengths,
		Improvements:     f.Improvements,
		DetailedAnalysis: f.DetailedAnalysis,
		CreatedAt:        utils.FormatUnixSeconds(f.CreatedAt),
	}
}
