package services

import (
	"jobhunt_backend/internal/models"
	"jobhunt_backend/internal/repositories"
	"jobhunt_backend/internal/services/dto"
	"jobhunt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	ListJobs(db *gorm.DB, userID string, query *dto.ListJobsQuery) ([]models.Job, error)
	GetJob(db *gorm.DB, jobID, userID string) (*models.Job, error)
	CreateJob(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(db *gorm.DB, jobID, userID string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(db *gorm.DB, jobID, userID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, userID string, query *dto.ListJobsQuery) ([]models.Job, error) {
	filter := repositories.JobFilter{
		Status:          models.JobStatus(query.Status),
		IncludeArchived: query.IncludeArchived,
	}
	jobs, err := s.jobRepo.FindByUser(db, userID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID, userID string) (*models.Job, error) {
	job, err := s.jobRepo.FindOwned(db, jobID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatusSaved
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		UserID:             userID,
		JobTitle:           req.JobTitle,
		Company:            req.Company,
		Industry:           req.Industry,
		CompanyOverview:    req.CompanyOverview,
		Location:           req.Location,
		WhyIWantToWorkHere: req.WhyIWantToWorkHere,
		DateApplied:        req.DateApplied,
		JobPostingLink:     req.JobPostingLink,
		ContactNameOrInfo:  req.ContactNameOrInfo,
		Notes:              req.Notes,
		ResumeVersionUsed:  req.ResumeVersionUsed,
		Referral:           req.Referral,
		SalaryRange:        req.SalaryRange,
		Status:             status,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) UpdateJob(db *gorm.DB, jobID, userID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindOwned(db, jobID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job.JobTitle = req.JobTitle
	job.Company = req.Company
	job.Industry = req.Industry
	job.CompanyOverview = req.CompanyOverview
	job.Location = req.Location
	job.WhyIWantToWorkHere = req.WhyIWantToWorkHere
	job.DateApplied = req.DateApplied
	job.JobPostingLink = req.JobPostingLink
	job.ContactNameOrInfo = req.ContactNameOrInfo
	job.Notes = req.Notes
	job.ResumeVersionUsed = req.ResumeVersionUsed
	job.Referral = req.Referral
	job.SalaryRange = req.SalaryRange
	job.Status = models.JobStatus(req.Status)
	job.NextInterviewDate = req.NextInterviewDate
	job.LastFollowUpDate = req.LastFollowUpDate
	job.NextFollowUpDate = req.NextFollowUpDate
	job.OfferedSalary = req.OfferedSalary
	job.IsArchived = req.IsArchived

	if err := s.jobRepo.Update(db, job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID, userID string) error {
	if err := s.jobRepo.Delete(db, jobID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
