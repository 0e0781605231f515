package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmate/internal/models/db_models"
	"mockmate/pkg/utils"
)

// fakeInterviewRepo serves a single canned interview and records the call
// order shared with fakeFeedbackRepo.
type fakeInterviewRepo struct {
	interview *db_models.Interview
	getErr    error
	calls     *[]string

	completedID string
	completedAt int64
}

func (f *fakeInterviewRepo) CreateInterview(_ context.Context, _ *db_models.Interview) error {
	return nil
}

func (f *fakeInterviewRepo) GetInterviewByID(_ context.Context, _ string) (*db_models.Interview, error) {
	return f.interview, f.getErr
}

func (f *fakeInterviewRepo) GetInterviewWithResponses(_ context.Context, _ string) (*db_models.Interview, error) {
	return f.interview, f.getErr
}

func (f *fakeInterviewRepo) MarkInterviewCompleted(_ context.Context, interviewID string, completedAt int64) error {
	*f.calls = append(*f.calls, "mark_completed")
	f.completedID = interviewID
	f.completedAt = completedAt
	return nil
}

type fakeFeedbackRepo struct {
	calls   *[]string
	created *db_models.Feedback
}

func (f *fakeFeedbackRepo) CreateFeedback(_ context.Context, feedback *db_models.Feedback) error {
	*f.calls = append(*f.calls, "create_feedback")
	f.created = feedback
	return nil
}

func (f *fakeFeedbackRepo) GetFeedbackByInterviewID(_ context.Context, _ string) (*db_models.Feedback, error) {
	return f.created, nil
}

type fakeAIClient struct {
	reply string
	err   error

	gotPrompt string
}

func (f *fakeAIClient) GenerateFeedbackJSON(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.reply, f.err
}

func interviewFixture() *db_models.Interview {
	interview := &db_models.Interview{
		JobType: "software-developer",
		Status:  db_models.StatusInProgress,
	}
	interview.ID = uuid.New()
	interview.Responses = []db_models.Response{
		{
			Transcript: "I have five years of backend experience.",
			Question: db_models.Question{
				QuestionText: "Tell me more about yourself.",
				Order:        1,
				Category:     db_models.CategoryGeneral,
			},
		},
		{
			Transcript: "I debugged a race condition in our queue consumer.",
			Question: db_models.Question{
				QuestionText: "Describe a challenging technical problem you solved recently. What was your approach?",
				Order:        2,
				Category:     db_models.CategoryTechnical,
			},
		},
	}
	return interview
}

func newFeedbackFixture(interview *db_models.Interview, client utils.FeedbackClientInterface) (*FeedbackService, *fakeInterviewRepo, *fakeFeedbackRepo) {
	calls := []string{}
	interviewRepo := &fakeInterviewRepo{interview: interview, calls: &calls}
	feedbackRepo := &fakeFeedbackRepo{calls: &calls}
	svc := NewFeedbackService(interviewRepo, feedbackRepo, client).(*FeedbackService)
	return svc, interviewRepo, feedbackRepo
}

func TestCompleteInterview_NotFound(t *testing.T) {
	svc, _, feedbackRepo := newFeedbackFixture(nil, &fakeAIClient{})

	_, err := svc.CompleteInterview(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, utils.ErrInterviewNotFound)
	assert.Nil(t, feedbackRepo.created)
}

func TestCompleteInterview_ValidReplyPersistedVerbatim(t *testing.T) {
	interview := interviewFixture()
	client := &fakeAIClient{reply: `{"overallScore":8.5,"strengths":"A","improvements":"B","detailedAnalysis":"C"}`}
	svc, interviewRepo, feedbackRepo := newFeedbackFixture(interview, client)

	result, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	require.NotNil(t, feedbackRepo.created)
	assert.Equal(t, 8.5, feedbackRepo.created.OverallScore)
	assert.Equal(t, "A", feedbackRepo.created.Strengths)
	assert.Equal(t, "B", feedbackRepo.created.Improvements)
	assert.Equal(t, "C", feedbackRepo.created.DetailedAnalysis)
	assert.Equal(t, interview.ID, feedbackRepo.created.InterviewID)

	assert.Equal(t, interview.ID.String(), interviewRepo.completedID)
	assert.NotZero(t, interviewRepo.completedAt)

	assert.True(t, result.Success)
	assert.Equal(t, 8.5, result.Feedback.OverallScore)
}

func TestCompleteInterview_StatusUpdateBeforeFeedback(t *testing.T) {
	interview := interviewFixture()
	client := &fakeAIClient{reply: `{"overallScore":8.5,"strengths":"A","improvements":"B","detailedAnalysis":"C"}`}
	svc, interviewRepo, _ := newFeedbackFixture(interview, client)

	_, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	require.Equal(t, []string{"mark_completed", "create_feedback"}, *interviewRepo.calls)
}

func TestCompleteInterview_ClientErrorFallsBack(t *testing.T) {
	interview := interviewFixture()
	client := &fakeAIClient{err: errors.New("connection refused")}
	svc, interviewRepo, feedbackRepo := newFeedbackFixture(interview, client)

	result, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	require.NotNil(t, feedbackRepo.created)
	assert.Equal(t, 7.0, feedbackRepo.created.OverallScore)
	assert.Equal(t, "Reasonable clarity and completion of all responses.", feedbackRepo.created.Strengths)
	assert.Equal(t, "Add more specific examples and tighten structure.", feedbackRepo.created.Improvements)
	assert.Equal(t, "Generally satisfactory. Improve by giving structured, confident responses using the STAR method.", feedbackRepo.created.DetailedAnalysis)

	// interview still completes when the fallback fires
	assert.Equal(t, interview.ID.String(), interviewRepo.completedID)
	assert.True(t, result.Success)
}

func TestCompleteInterview_InvalidJSONFallsBack(t *testing.T) {
	interview := interviewFixture()
	client := &fakeAIClient{reply: "Great interview! Here is my feedback: good job overall."}
	svc, _, feedbackRepo := newFeedbackFixture(interview, client)

	_, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	require.NotNil(t, feedbackRepo.created)
	assert.Equal(t, 7.0, feedbackRepo.created.OverallScore)
}

func TestCompleteInterview_ScoreOutOfRangeFallsBack(t *testing.T) {
	interview := interviewFixture()
	client := &fakeAIClient{reply: `{"overallScore":42,"strengths":"A","improvements":"B","detailedAnalysis":"C"}`}
	svc, _, feedbackRepo := newFeedbackFixture(interview, client)

	_, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	require.NotNil(t, feedbackRepo.created)
	assert.Equal(t, 7.0, feedbackRepo.created.OverallScore)
}

func TestCompleteInterview_NilClientFallsBack(t *testing.T) {
	interview := interviewFixture()
	svc, _, feedbackRepo := newFeedbackFixture(interview, nil)

	_, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	require.NotNil(t, feedbackRepo.created)
	assert.Equal(t, 7.0, feedbackRepo.created.OverallScore)
}

func TestCompleteInterview_SecondCallReturnsExistingFeedback(t *testing.T) {
	interview := interviewFixture()
	interview.Status = db_models.StatusCompleted
	existing := &db_models.Feedback{
		InterviewID:  interview.ID,
		OverallScore: 9.0,
		Strengths:    "existing",
	}
	existing.ID = uuid.New()
	interview.Feedback = existing

	client := &fakeAIClient{reply: `{"overallScore":2,"strengths":"X","improvements":"Y","detailedAnalysis":"Z"}`}
	svc, interviewRepo, feedbackRepo := newFeedbackFixture(interview, client)

	result, err := svc.CompleteInterview(context.Background(), interview.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 9.0, result.Feedback.OverallScore)
	assert.Nil(t, feedbackRepo.created, "no second feedback row")
	assert.Empty(t, *interviewRepo.calls, "no writes on repeat completion")
	assert.Empty(t, client.gotPrompt, "no AI call on repeat completion")
}

func TestCompleteInterview_PromptContents(t *testing.T) {
	interview := interviewFixture()
	client := &fakeAIClient{reply: `{"overallScore":8,"strengths":"A","improvements":"B","detailedAnalysis":"C"}`}
	svc, _, _ := newFeedbackFixture(interview, client)

	_, err := svc.CompleteInterview(context.Background(), interview.ID.String())
	require.NoError(t, err)

	assert.Contains(t, client.gotPrompt, "Job Type: Software Developer")
	assert.Contains(t, client.gotPrompt, "Q1 (general): Tell me more about yourself.")
	assert.Contains(t, client.gotPrompt, "I debugged a race condition in our queue consumer.")
	assert.Contains(t, client.gotPrompt, `"overallScore": <number between 1-10>`)
	assert.Less(t,
		strings.Index(client.gotPrompt, "Tell me more about yourself."),
		strings.Index(client.gotPrompt, "Describe a challenging technical problem"),
		"responses appear in question order")
}

func TestGetFeedbackReport_NotFound(t *testing.T) {
	svc, _, _ := newFeedbackFixture(nil, nil)

	_, err := svc.GetFeedbackReport(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, utils.ErrInterviewNotFound)
}

func TestGetFeedbackReport_NotReady(t *testing.T) {
	interview := interviewFixture()
	svc, _, _ := newFeedbackFixture(interview, nil)

	_, err := svc.GetFeedbackReport(context.Background(), interview.ID.String())

	assert.ErrorIs(t, err, utils.ErrFeedbackNotReady)
}

func TestGetFeedbackReport_ReturnsOrderedResponses(t *testing.T) {
	interview := interviewFixture()
	completedAt := int64(1700000000)
	interview.Status = db_models.StatusCompleted
	interview.CompletedAt = &completedAt
	feedback := &db_models.Feedback{
		InterviewID:      interview.ID,
		OverallScore:     8.5,
		Strengths:        "A",
		Improvements:     "B",
		DetailedAnalysis: "C",
	}
	feedback.ID = uuid.New()
	interview.Feedback = feedback

	svc, _, _ := newFeedbackFixture(interview, nil)

	report, err := svc.GetFeedbackReport(context.Background(), interview.ID.String())

	require.NoError(t, err)
	assert.Equal(t, interview.ID.String(), report.Interview.ID)
	assert.Equal(t, "software-developer", report.Interview.JobType)
	assert.NotEmpty(t, report.Interview.CompletedAt)
	assert.Equal(t, 8.5, report.Feedback.OverallScore)
	require.Len(t, report.Responses, 2)
	assert.Equal(t, 1, report.Responses[0].Question.Order)
	assert.Equal(t, 2, report.Responses[1].Question.Order)
	assert.Equal(t, db_models.CategoryGeneral, report.Responses[0].Question.Category)
}

func TestParseFeedbackJSON_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"overallScore\":8,\"strengths\":\"A\",\"improvements\":\"B\",\"detailedAnalysis\":\"C\"}\n```"

	payload, err := parseFeedbackJSON(raw)

	require.NoError(t, err)
	assert.Equal(t, 8.0, payload.OverallScore)
}

func TestParseFeedbackJSON_EmptyReply(t *testing.T) {
	_, err := parseFeedbackJSON("")
	assert.ErrorIs(t, err, utils.ErrAIGenerationFailed)
}

func TestParseFeedbackJSON_MissingFields(t *testing.T) {
	_, err := parseFeedbackJSON(`{"overallScore":8}`)
	assert.ErrorIs(t, err, utils.ErrAIGenerationFailed)
}

func TestFormatJobType(t *testing.T) {
	assert.Equal(t, "Software Developer", formatJobType("software-developer"))
	assert.Equal(t, "Data Analyst", formatJobType("data-analyst"))
	assert.Equal(t, "Designer", formatJobType("designer"))
}
