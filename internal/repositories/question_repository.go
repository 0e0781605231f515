package repositories

import (
	"context"

	"gorm.io/gorm"
	"mockmate/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	ListQuestionsByJobType(ctx context.Context, jobType string) ([]db_models.Question, error)
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) ListQuestionsByJobType(ctx context.Context, jobType string) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("job_type = ?", jobType).
		Order("question_order ASC").
		Find(&questions).Error
	return questions, err
}
