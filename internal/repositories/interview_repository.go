package repositories

import (
	"errors"

	"jobhunt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	FindByJob(db *gorm.DB, jobID string) ([]models.Interview, error)

	// FindOwned resolves the interview through its job so ownership is
	// enforced in one query.
	FindOwned(db *gorm.DB, id, userID string) (*models.Interview, error)

	Create(db *gorm.DB, interview *models.Interview) error
	Update(db *gorm.DB, interview *models.Interview) error
	Delete(db *gorm.DB, id string) error
}

type interviewRepository struct{}

func NewInterviewRepository() InterviewRepository {
	return &interviewRepository{}
}

func (r *interviewRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := db.Where("job_id = ?", jobID).
		Order("scheduled_at ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *interviewRepository) FindOwned(db *gorm.DB, id, userID string) (*models.Interview, error) {
	var interview models.Interview
	err := db.Joins("JOIN jobs ON jobs.id = interviews.job_id").
		Where("interviews.id = ? AND jobs.user_id = ?", id, userID).
		First(&interview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) Create(db *gorm.DB, interview *models.Interview) error {
	return db.Create(interview).Error
}

func (r *interviewRepository) Update(db *gorm.DB, interview *models.Interview) error {
	result := db.Model(&models.Interview{}).
		Where("id = ?", interview.ID).
		Select("*").
		Omit("id", "job_id", "created_at").
		Updates(interview)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *interviewRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Interview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
