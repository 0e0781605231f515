package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"mockmate/internal/models/db_models"
)

type InterviewRepositoryInterface interface {
	CreateInterview(ctx context.Context, interview *db_models.Interview) error
	GetInterviewByID(ctx context.Context, interviewID string) (*db_models.Interview, error)
	GetInterviewWithResponses(ctx context.Context, interviewID string) (*db_models.Interview, error)
	MarkInterviewCompleted(ctx context.Context, interviewID string, completedAt int64) error
}

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) CreateInterview(ctx context.Context, interview *db_models.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *InterviewRepository) GetInterviewByID(ctx context.Context, interviewID string) (*db_models.Interview, error) {
	var interview db_models.Interview
	err := r.db.WithContext(ctx).First(&interview, "id = ?", interviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interview, nil
}

// GetInterviewWithResponses loads the interview, its feedback when present,
// and all responses joined to their questions ordered by question order.
func (r *InterviewRepository) GetInterviewWithResponses(ctx context.Context, interviewID string) (*db_models.Interview, error) {
	var interview db_models.Interview
	err := r.db.WithContext(ctx).
		Preload("Feedback").
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN questions ON questions.id = responses.question_id").
				Order("questions.question_order ASC")
		}).
		Preload("Responses.Question").
		First(&interview, "id = ?", interviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) MarkInterviewCompleted(ctx context.Context, interviewID string, completedAt int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Interview{}).
		Where("id = ?", interviewID).
		Updates(map[string]interface{}{
			"status":       db_models.StatusCompleted,
			"completed_at": completedAt,
		}).Error
}
