package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mockmate/internal/models/request_models"
	"mockmate/internal/services"
	"mockmate/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// CompleteInterview godoc
// @Summary Complete an interview
// @Description Synthesize the AI feedback report and mark the interview completed
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.CompleteInterviewRequest true "Complete payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/complete [post]
func (f *FeedbackController) CompleteInterview(c *gin.Context) {
	var req request_models.CompleteInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := f.feedbackService.CompleteInterview(c.Request.Context(), req.InterviewID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Interview completed")
}

// GetFeedback godoc
// @Summary Fetch the feedback report
// @Description Return the interview summary, feedback, and responses ordered by question order
// @Tags Feedback
// @Produce json
// @Param interviewId path string true "Interview ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/{interviewId}/feedback [get]
func (f *FeedbackController) GetFeedback(c *gin.Context) {
	interviewID := c.Param("interviewId")

	result, err := f.feedbackService.GetFeedbackReport(c.Request.Context(), interviewID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Feedback fetched")
}
