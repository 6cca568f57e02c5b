package dto

import (
	"time"

	"jobhunt_backend/internal/models"
)

type UserDTO struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

type ProfileResponse struct {
	UserDTO
	PhoneNumber  *string `json:"phone_number,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
}

func NewProfileResponse(u *models.User) ProfileResponse {
	return ProfileResponse{
		UserDTO:      NewUserDTO(u),
		PhoneNumber:  u.PhoneNumber,
		LinkedInURL:  u.LinkedInURL,
		GithubURL:    u.GithubURL,
		PortfolioURL: u.PortfolioURL,
	}
}

// UpdateProfileRequest uses pointers so absent fields are left untouched.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty" binding:"omitempty,url"`
	GithubURL    *string `json:"github_url,omitempty" binding:"omitempty,url"`
	PortfolioURL *string `json:"portfolio_url,omitempty" binding:"omitempty,url"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type SettingsResponse struct {
	EmailNotifications bool    `json:"email_notifications"`
	WeeklyDigest       bool    `json:"weekly_digest"`
	TimeZone           *string `json:"time_zone,omitempty"`
	DefaultCurrency    *string `json:"default_currency,omitempty"`
}

func NewSettingsResponse(s *models.UserSettings) SettingsResponse {
	return SettingsResponse{
		EmailNotifications: s.EmailNotifications,
		WeeklyDigest:       s.WeeklyDigest,
		TimeZone:           s.TimeZone,
		DefaultCurrency:    s.DefaultCurrency,
	}
}

type UpdateSettingsRequest struct {
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	WeeklyDigest       *bool   `json:"weekly_digest,omitempty"`
	TimeZone           *string `json:"time_zone,omitempty"`
	DefaultCurrency    *string `json:"default_currency,omitempty" binding:"omitempty,len=3"`
}
