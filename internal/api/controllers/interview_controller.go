package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mockmate/internal/models/request_models"
	"mockmate/internal/services"
	"mockmate/pkg/utils"
)

type InterviewController struct {
	interviewService services.InterviewServiceInterface
}

func NewInterviewController(interviewService services.InterviewServiceInterface) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// StartInterview godoc
// @Summary Start a mock interview
// @Description Create an in_progress interview for a job type and return its ordered question set
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body request_models.StartInterviewRequest true "Start payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/start [post]
func (i *InterviewController) StartInterview(c *gin.Context) {
	var req request_models.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := i.interviewService.StartInterview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Interview started")
}

// SubmitResponse godoc
// @Summary Record an answer
// @Description Store one transcribed answer for a question within an interview
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body request_models.SubmitResponseRequest true "Response payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/response [post]
func (i *InterviewController) SubmitResponse(c *gin.Context) {
	var req request_models.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := i.interviewService.RecordResponse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Response saved")
}
