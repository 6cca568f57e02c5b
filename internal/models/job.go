package models

import "time"

type Job struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`

	JobTitle           string     `gorm:"not null" json:"job_title"`
	Company            string     `gorm:"not null" json:"company"`
	Industry           string     `json:"industry"`
	CompanyOverview    string     `json:"company_overview"`
	Location           string     `json:"location"`
	WhyIWantToWorkHere string     `json:"why_i_want_to_work_here"`
	DateApplied        *time.Time `json:"date_applied,omitempty"`
	JobPostingLink     string     `json:"job_posting_link"`
	ContactNameOrInfo  string     `json:"contact_name_or_info"`
	Notes              string     `json:"notes"`
	ResumeVersionUsed  string     `json:"resume_version_used"`
	Referral           string     `json:"referral"`
	SalaryRange        string     `json:"salary_range"`

	Status            JobStatus  `gorm:"type:varchar(20);default:'saved'" json:"status"`
	NextInterviewDate *time.Time `json:"next_interview_date,omitempty"`
	LastFollowUpDate  *time.Time `json:"last_follow_up_date,omitempty"`
	NextFollowUpDate  *time.Time `json:"next_follow_up_date,omitempty"`
	OfferedSalary     *float64   `json:"offered_salary,omitempty"`
	IsArchived        bool       `gorm:"default:false" json:"is_archived"`

	// Relations
	Interviews []Interview `gorm:"foreignKey:JobID" json:"interviews,omitempty"`
}

type Interview struct {
	BaseModel
	JobID string `gorm:"not null;index" json:"job_id"`

	ScheduledAt     time.Time `gorm:"not null" json:"scheduled_at"`
	InterviewType   string    `gorm:"not null" json:"interview_type"` // Phone, Video, OnSite, ...
	InterviewerName *string   `json:"interviewer_name,omitempty"`
	Location        *string   `json:"location,omitempty"` // link for virtual, address for on-site
	Notes           *string   `json:"notes,omitempty"`
	Completed       bool      `gorm:"default:false" json:"completed"`
}
