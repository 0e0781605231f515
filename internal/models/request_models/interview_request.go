package request_models

type StartInterviewRequest struct {
	JobType string `json:"jobType"`
	UserID  string `json:"userId,omitempty"`
}

type SubmitResponseRequest struct {
	InterviewID string `json:"interviewId"`
	QuestionID  string `json:"questionId"`
	Transcript  string `json:"transcript"`
	Duration    *int   `json:"duration,omitempty"`
}

type CompleteInterviewRequest struct {
	InterviewID string `json:"interviewId"`
}
