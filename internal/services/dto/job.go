package dto

import (
	"time"
)

type CreateJobRequest struct {
	JobTitle           string     `json:"job_title" binding:"required"`
	Company            string     `json:"company" binding:"required"`
	Industry           string     `json:"industry"`
	CompanyOverview    string     `json:"company_overview"`
	Location           string     `json:"location"`
	WhyIWantToWorkHere string     `json:"why_i_want_to_work_here"`
	DateApplied        *time.Time `json:"date_applied,omitempty"`
	JobPostingLink     string     `json:"job_posting_link" binding:"omitempty,url"`
	ContactNameOrInfo  string     `json:"contact_name_or_info"`
	Notes              string     `json:"notes"`
	ResumeVersionUsed  string     `json:"resume_version_used"`
	Referral           string     `json:"referral"`
	SalaryRange        string     `json:"salary_range"`
	Status             string     `json:"status" validate:"omitempty,is-job-status"`
}

// UpdateJobRequest replaces the mutable fields wholesale, matching a form
// submit from the frontend.
type UpdateJobRequest struct {
	JobTitle           string     `json:"job_title" binding:"required"`
	Company            string     `json:"company" binding:"required"`
	Industry           string     `json:"industry"`
	CompanyOverview    string     `json:"company_overview"`
	Location           string     `json:"location"`
	WhyIWantToWorkHere string     `json:"why_i_want_to_work_here"`
	DateApplied        *time.Time `json:"date_applied,omitempty"`
	JobPostingLink     string     `json:"job_posting_link" binding:"omitempty,url"`
	ContactNameOrInfo  string     `json:"contact_name_or_info"`
	Notes              string     `json:"notes"`
	ResumeVersionUsed  string     `json:"resume_version_used"`
	Referral           string     `json:"referral"`
	SalaryRange        string     `json:"salary_range"`
	Status             string     `json:"status" binding:"required" validate:"is-job-status"`
	NextInterviewDate  *time.Time `json:"next_interview_date,omitempty"`
	LastFollowUpDate   *time.Time `json:"last_follow_up_date,omitempty"`
	NextFollowUpDate   *time.Time `json:"next_follow_up_date,omitempty"`
	OfferedSalary      *float64   `json:"offered_salary,omitempty"`
	IsArchived         bool       `json:"is_archived"`
}

type ListJobsQuery struct {
	Status          string `form:"status" validate:"omitempty,is-job-status"`
	IncludeArchived bool   `form:"include_archived"`
}

type CreateInterviewRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	InterviewType   string    `json:"interview_type" binding:"required" validate:"is-interview-type"`
	InterviewerName *string   `json:"interviewer_name,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}

type UpdateInterviewRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	InterviewType   string    `json:"interview_type" binding:"required" validate:"is-interview-type"`
	InterviewerName *string   `json:"interviewer_name,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Completed       bool      `json:"completed"`
}
