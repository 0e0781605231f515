package feedbackfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"mockmate/internal/api/controllers"
	"mockmate/internal/repositories"
	"mockmate/internal/services"
	"mockmate/pkg/utils"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	interviewRepo repositories.InterviewRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
	aiClient utils.FeedbackClientInterface,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(interviewRepo, feedbackRepo, aiClient)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
