package response_models

// QuestionItem is one bank entry as served to the client at interview start.
type QuestionItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Order    int    `json:"order"`
	Category string `json:"category"`
}

type InterviewSummary struct {
	ID          string `json:"id"`
	UserID      string `json:"userId,omitempty"`
	JobType     string `json:"jobType"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}

type StartInterviewResponse struct {
	Interview InterviewSummary `json:"interview"`
	Questions []QuestionItem   `json:"questions"`
}

type ResponseItem struct {
	ID         string `json:"id"`
	Transcript string `json:"transcript"`
	Duration   *int   `json:"duration,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

type SubmitResponseResponse struct {
	Success  bool         `json:"success"`
	Response ResponseItem `json:"response"`
}
