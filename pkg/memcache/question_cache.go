// pkg/mem/question_cache.go
package mem

import (
	"sync"
	"time"

	"mockmate/internal/models/db_models"
)

// QuestionCacheInterface caches the ordered question list per job type. The
// bank is immutable after seeding, so a short TTL only guards against a
// reseed during development.
type QuestionCacheInterface interface {
	Get(jobType string) ([]db_models.Question, bool)
	Set(jobType string, questions []db_models.Question, ttl time.Duration)
}

type questionEntry struct {
	questions []db_models.Question
	expiresAt time.Time
}

type QuestionCache struct {
	mu   sync.RWMutex
	data map[string]questionEntry
}

func NewQuestionCache() *QuestionCache {
	return &QuestionCache{
		data: make(map[string]questionEntry),
	}
}

func (s *QuestionCache) Get(jobType string) ([]db_models.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[jobType]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.questions, true
}

func (s *QuestionCache) Set(jobType string, questions []db_models.Question, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[jobType] = questionEntry{
		questions: questions,
		expiresAt: time.Now().Add(ttl),
	}
}
