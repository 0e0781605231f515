package aifx

import (
	"log"

	"go.uber.org/fx"
	"mockmate/pkg/utils"
)

var Module = fx.Provide(
	provideFeedbackClient,
)

// provideFeedbackClient builds the configured completion client. When the
// key or provider is missing only the synthesis path degrades: the feedback
// service substitutes the default report for every interview.
func provideFeedbackClient() utils.FeedbackClientInterface {
	cfg := utils.LoadAIConfigFromEnv()
	client, err := utils.NewFeedbackClient(cfg)
	if err != nil {
		log.Printf("AI client unavailable, feedback falls back to the default report: %v", err)
		return nil
	}
	return client
}
