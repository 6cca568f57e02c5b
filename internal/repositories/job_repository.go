package repositories

import (
	"errors"

	"jobhunt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows a listing. Zero values mean no filtering.
type JobFilter struct {
	Status          models.JobStatus
	IncludeArchived bool
}

type JobRepository interface {
	FindByUser(db *gorm.DB, userID string, filter JobFilter) ([]models.Job, error)

	// FindOwned returns the job only when it belongs to userID. A job owned
	// by someone else is indistinguishable from a missing one.
	FindOwned(db *gorm.DB, id, userID string) (*models.Job, error)

	Create(db *gorm.DB, job *models.Job) error
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id, userID string) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) FindByUser(db *gorm.DB, userID string, filter JobFilter) ([]models.Job, error) {
	query := db.Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) FindOwned(db *gorm.DB, id, userID string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Interviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("scheduled_at ASC")
	}).First(&job, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(&models.Job{}).
		Where("id = ? AND user_id = ?", job.ID, job.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) Delete(db *gorm.DB, id, userID string) error {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
