package questionfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"mockmate/internal/repositories"
	"mockmate/internal/services"
	mem "mockmate/pkg/memcache"
)

var Module = fx.Provide(
	provideQuestionRepo, provideQuestionCache, provideQuestionService,
)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionCache() mem.QuestionCacheInterface {
	return mem.NewQuestionCache()
}

func provideQuestionService(questionRepo repositories.QuestionRepositoryInterface, cache mem.QuestionCacheInterface) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, cache)
}
