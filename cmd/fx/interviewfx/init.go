package interviewfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"mockmate/internal/api/controllers"
	"mockmate/internal/repositories"
	"mockmate/internal/services"
)

var Module = fx.Provide(
	provideInterviewRepo, provideResponseRepo, provideInterviewService, provideInterviewController,
)

func provideInterviewRepo(db *gorm.DB) repositories.InterviewRepositoryInterface {
	return repositories.NewInterviewRepository(db)
}

func provideResponseRepo(db *gorm.DB) repositories.ResponseRepositoryInterface {
	return repositories.NewResponseRepository(db)
}

func provideInterviewService(
	interviewRepo repositories.InterviewRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	questionService services.QuestionServiceInterface,
) services.InterviewServiceInterface {
	return services.NewInterviewService(interviewRepo, responseRepo, questionService)
}

func provideInterviewController(interviewService services.InterviewServiceInterface) *controllers.InterviewController {
	return controllers.NewInterviewController(interviewService)
}
