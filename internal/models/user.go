package models

import "time"

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`

	PhoneNumber  *string `json:"phone_number,omitempty"`
	LinkedInURL  *string `json:"linkedin_url,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`

	EmailVerified            bool       `gorm:"default:false" json:"email_verified"`
	VerificationToken        *string    `gorm:"index" json:"-"`
	VerificationTokenExpiry  *time.Time `json:"-"`
	ResetPasswordToken       *string    `gorm:"index" json:"-"`
	ResetPasswordTokenExpiry *time.Time `json:"-"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Settings      *UserSettings  `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

// UserSettings holds per-user notification and display preferences.
// The row is created lazily on first settings access.
type UserSettings struct {
	BaseModel
	UserID             string  `gorm:"not null;uniqueIndex" json:"user_id"`
	EmailNotifications bool    `gorm:"default:false" json:"email_notifications"`
	WeeklyDigest       bool    `gorm:"default:false" json:"weekly_digest"`
	TimeZone           *string `json:"time_zone,omitempty"`
	DefaultCurrency    *string `json:"default_currency,omitempty"`
}
