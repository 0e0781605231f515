package services

import (
	"context"
	"time"

	"mockmate/internal/models/db_models"
	"mockmate/internal/repositories"
	mem "mockmate/pkg/memcache"
	"mockmate/pkg/utils"
)

// The bank is immutable at runtime, the TTL only bounds staleness after a reseed.
const questionCacheTTL = 5 * time.Minute

type QuestionServiceInterface interface {
	ListQuestionsByJobType(ctx context.Context, jobType string) ([]db_models.Question, error)
}

type QuestionService struct {
	questionRepo repositories.QuestionRepositoryInterface
	cache        mem.QuestionCacheInterface
}

func NewQuestionService(questionRepo repositories.QuestionRepositoryInterface, cache mem.QuestionCacheInterface) QuestionServiceInterface {
	return &QuestionService{questionRepo: questionRepo, cache: cache}
}

func (s *QuestionService) ListQuestionsByJobType(ctx context.Context, jobType string) ([]db_models.Question, error) {
	if cached, ok := s.cache.Get(jobType); ok {
		return cached, nil
	}

	questions, err := s.questionRepo.ListQuestionsByJobType(ctx, jobType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(questions) > 0 {
		s.cache.Set(jobType, questions, questionCacheTTL)
	}
	return questions, nil
}
