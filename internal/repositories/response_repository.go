package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"mockmate/internal/models/db_models"
)

type ResponseRepositoryInterface interface {
	UpsertResponse(ctx context.Context, response *db_models.Response) error
}

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// UpsertResponse inserts a response; a resubmission for the same
// (interview, question) pair overwrites the stored transcript and duration.
func (r *ResponseRepository) UpsertResponse(ctx context.Context, response *db_models.Response) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "interview_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"transcript", "duration", "updated_at"}),
		}).
		Create(response).Error
}
