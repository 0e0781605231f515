package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"mockmate/cmd/fx/aifx"
	"mockmate/cmd/fx/dbfx"
	"mockmate/cmd/fx/feedbackfx"
	"mockmate/cmd/fx/interviewfx"
	"mockmate/cmd/fx/questionfx"
	"mockmate/internal/api/controllers"
	"mockmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		aifx.Module,
		questionfx.Module,
		interviewfx.Module,
		feedbackfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	interviewController *controllers.InterviewController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, interviewController, feedbackController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	interviewController *controllers.InterviewController,
	feedbackController *controllers.FeedbackController) {

	api := r.Group("/api")
	api.POST("/start", interviewController.StartInterview)
	api.POST("/response", interviewController.SubmitResponse)
	api.POST("/complete", feedbackController.CompleteInterview)
	api.GET("/:interviewId/feedback", feedbackController.GetFeedback)
}
