package services

import (
	"jobhunt_backend/internal/auth"
	"jobhunt_backend/internal/models"
	"jobhunt_backend/internal/repositories"
	"jobhunt_backend/internal/services/dto"
	"jobhunt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
	GetSettings(db *gorm.DB, userID string) (*dto.SettingsResponse, error)
	UpdateSettings(db *gorm.DB, userID string, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	settingsRepo     repositories.UserSettingsRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	settingsRepo repositories.UserSettingsRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		settingsRepo:     settingsRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProfileResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.LinkedInURL != nil {
		user.LinkedInURL = req.LinkedInURL
	}
	if req.GithubURL != nil {
		user.GithubURL = req.GithubURL
	}
	if req.PortfolioURL != nil {
		user.PortfolioURL = req.PortfolioURL
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.findUser(db, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrCurrentPasswordIncorrect
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	// Other sessions must re-authenticate with the new password.
	if err := s.refreshTokenRepo.RevokeAllForUser(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetSettings creates the row with defaults on first access, so every user
// has settings without a registration-time insert.
func (s *UserServiceImpl) GetSettings(db *gorm.DB, userID string) (*dto.SettingsResponse, error) {
	settings, err := s.findOrCreateSettings(db, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewSettingsResponse(settings)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateSettings(db *gorm.DB, userID string, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.findOrCreateSettings(db, userID)
	if err != nil {
		return nil, err
	}

	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.WeeklyDigest != nil {
		settings.WeeklyDigest = *req.WeeklyDigest
	}
	if req.TimeZone != nil {
		settings.TimeZone = req.TimeZone
	}
	if req.DefaultCurrency != nil {
		settings.DefaultCurrency = req.DefaultCurrency
	}

	if err := s.settingsRepo.Update(db, settings); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSettingsResponse(settings)
	return &resp, nil
}

func (s *UserServiceImpl) findUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) findOrCreateSettings(db *gorm.DB, userID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(db, userID)
	if err == nil {
		return settings, nil
	}
	if !apperrors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, apperrors.InternalError(err)
	}

	settings = &models.UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		WeeklyDigest:       false,
	}
	if err := s.settingsRepo.Create(db, settings); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}
