package response_models

type FeedbackItem struct {
	ID               string  `json:"id"`
	InterviewID      string  `json:"interviewId"`
	OverallScore     float64 `json:"overallScore"`
	Strengths        string  `json:"strengths"`
	Improvements     string  `json:"improvements"`
	DetailedAnalysis string  `json:"detailedAnalysis"`
	CreatedAt        string  `json:"createdAt"`
}

type CompleteInterviewResponse struct {
	Success  bool         `json:"success"`
	Feedback FeedbackItem `json:"feedback"`
}

// AnsweredQuestion pairs a stored transcript with the question it answered,
// for the feedback report view.
type AnsweredQuestion struct {
	ID         string           `json:"id"`
	Transcript string           `json:"transcript"`
	Question   QuestionSnapshot `json:"question"`
}

type QuestionSnapshot struct {
	QuestionText string `json:"questionText"`
	Category     string `json:"category"`
	Order        int    `json:"order"`
}

type FeedbackReportResponse struct {
	Interview InterviewSummary   `json:"interview"`
	Feedback  FeedbackItem       `json:"feedback"`
	Responses []AnsweredQuestion `json:"responses"`
}
