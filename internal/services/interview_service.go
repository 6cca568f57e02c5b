package services

import (
	"jobhunt_backend/internal/models"
	"jobhunt_backend/internal/repositories"
	"jobhunt_backend/internal/services/dto"
	"jobhunt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type InterviewService interface {
	ListInterviews(db *gorm.DB, jobID, userID string) ([]models.Interview, error)
	GetInterview(db *gorm.DB, interviewID, userID string) (*models.Interview, error)
	CreateInterview(db *gorm.DB, jobID, userID string, req *dto.CreateInterviewRequest) (*models.Interview, error)
	UpdateInterview(db *gorm.DB, interviewID, userID string, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	DeleteInterview(db *gorm.DB, interviewID, userID string) error
}

type InterviewServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	jobRepo       repositories.JobRepository
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	jobRepo repositories.JobRepository,
) InterviewService {
	return &InterviewServiceImpl{
		interviewRepo: interviewRepo,
		jobRepo:       jobRepo,
	}
}

func (s *InterviewServiceImpl) ListInterviews(db *gorm.DB, jobID, userID string) ([]models.Interview, error) {
	if _, err := s.findOwnedJob(db, jobID, userID); err != nil {
		return nil, err
	}

	interviews, err := s.interviewRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviews, nil
}

func (s *InterviewServiceImpl) GetInterview(db *gorm.DB, interviewID, userID string) (*models.Interview, error) {
	return s.findOwnedInterview(db, interviewID, userID)
}

// CreateInterview also advances the parent job: a job still in "applied"
// moves to "interview", and the job's next interview date is pulled
// forward when this one is sooner.
func (s *InterviewServiceImpl) CreateInterview(db *gorm.DB, jobID, userID string, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	job, err := s.findOwnedJob(db, jobID, userID)
	if err != nil {
		return nil, err
	}

	interview := &models.Interview{
		JobID:           jobID,
		ScheduledAt:     req.ScheduledAt,
		InterviewType:   req.InterviewType,
		InterviewerName: req.InterviewerName,
		Location:        req.Location,
		Notes:           req.Notes,
	}

	if err := s.interviewRepo.Create(db, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobChanged := false
	if job.Status == models.JobStatusApplied {
		job.Status = models.JobStatusInterview
		jobChanged = true
	}
	if job.NextInterviewDate == nil || req.ScheduledAt.Before(*job.NextInterviewDate) {
		job.NextInterviewDate = &interview.ScheduledAt
		jobChanged = true
	}
	if jobChanged {
		if err := s.jobRepo.Update(db, job); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return interview, nil
}

func (s *InterviewServiceImpl) UpdateInterview(db *gorm.DB, interviewID, userID string, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	interview, err := s.findOwnedInterview(db, interviewID, userID)
	if err != nil {
		return nil, err
	}

	interview.ScheduledAt = req.ScheduledAt
	interview.InterviewType = req.InterviewType
	interview.InterviewerName = req.InterviewerName
	interview.Location = req.Location
	interview.Notes = req.Notes
	interview.Completed = req.Completed

	if err := s.interviewRepo.Update(db, interview); err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *InterviewServiceImpl) DeleteInterview(db *gorm.DB, interviewID, userID string) error {
	if _, err := s.findOwnedInterview(db, interviewID, userID); err != nil {
		return err
	}

	if err := s.interviewRepo.Delete(db, interviewID); err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InterviewServiceImpl) findOwnedJob(db *gorm.DB, jobID, userID string) (*models.Job, error) {
	job, err := s.jobRepo.FindOwned(db, jobID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *InterviewServiceImpl) findOwnedInterview(db *gorm.DB, interviewID, userID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindOwned(db, interviewID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}
