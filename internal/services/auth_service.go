package services

import (
	"time"

	"jobhunt_backend/internal/auth"
	"jobhunt_backend/internal/email"
	"jobhunt_backend/internal/logger"
	"jobhunt_backend/internal/models"
	"jobhunt_backend/internal/repositories"
	"jobhunt_backend/internal/services/dto"
	"jobhunt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = 1 * time.Hour
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	ValidateEmail(db *gorm.DB, emailAddr string) (bool, error)
	VerifyEmail(db *gorm.DB, token string) error
	InitiatePasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokenManager     *auth.TokenManager
	emailProvider    email.Provider
	websiteBaseURL   string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokenManager *auth.TokenManager,
	emailProvider email.Provider,
	websiteBaseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenManager:     tokenManager,
		emailProvider:    emailProvider,
		websiteBaseURL:   websiteBaseURL,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken, err := auth.GenerateRandomToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	verificationExpiry := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		Email:                   req.Email,
		PasswordHash:            hashedPassword,
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		EmailVerified:           false,
		VerificationToken:       &verificationToken,
		VerificationTokenExpiry: &verificationExpiry,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	pair, err := s.issueTokenPair(db, user.ID)
	if err != nil {
		return nil, err
	}

	// The user row is committed at this point, so a failed send leaves a
	// token the user can have re-sent. Never block registration on SMTP.
	s.sendVerificationEmail(user, verificationToken)

	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password so callers cannot probe for
			// registered addresses.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(db, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

// Refresh rotates the session: the presented refresh token is revoked and a
// fresh pair is issued. The expired access token proves which user the
// refresh token was issued to.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	claims, err := s.tokenManager.ParseExpiredToken(req.AccessToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	stored, err := s.refreshTokenRepo.FindByToken(db, req.RefreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, apperrors.InternalError(err)
	}

	if stored.UserID != claims.UserID() || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.refreshTokenRepo.Revoke(db, req.RefreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	pair, err := s.issueTokenPair(db, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.Revoke(db, refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidRefreshToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ValidateEmail reports availability: true means the address is free to
// register. Backs the live check in the signup form.
func (s *AuthServiceImpl) ValidateEmail(db *gorm.DB, emailAddr string) (bool, error) {
	exists, err := s.userRepo.ExistsByEmail(db, emailAddr)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return !exists, nil
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidVerificationToken
		}
		return apperrors.InternalError(err)
	}

	if user.VerificationTokenExpiry == nil || time.Now().After(*user.VerificationTokenExpiry) {
		return apperrors.ErrVerificationTokenExpired
	}

	// Single use: clearing the token makes a replay fail the lookup above.
	user.EmailVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpiry = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) InitiatePasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	resetToken, err := auth.GenerateRandomToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	resetExpiry := time.Now().Add(resetTokenTTL)

	user.ResetPasswordToken = &resetToken
	user.ResetPasswordTokenExpiry = &resetExpiry

	// Persist before sending so a failed send still leaves a usable token.
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user, resetToken)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	if user.ResetPasswordTokenExpiry == nil || time.Now().After(*user.ResetPasswordTokenExpiry) {
		return apperrors.ErrResetTokenExpired
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetPasswordToken = nil
	user.ResetPasswordTokenExpiry = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	// Existing sessions die with the old password.
	if err := s.refreshTokenRepo.RevokeAllForUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokenPair(db *gorm.DB, userID string) (*auth.TokenPair, error) {
	pair, err := s.tokenManager.GenerateTokens(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.RefreshToken{
		UserID:    userID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Now().Add(s.tokenManager.RefreshTokenTTL()),
	}
	if err := s.refreshTokenRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pair, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User, token string) {
	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplateVerification, email.TemplateData{
			"FirstName":       user.FirstName,
			"VerificationURL": s.websiteBaseURL + "/verify-email?token=" + token,
		}, &email.Email{
			To:      []string{user.Email},
			Subject: "Verify your email address",
		})
		if err != nil {
			logger.GetLogger().Error("failed to send verification email", "error", err, "user_id", user.ID)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(user *models.User, token string) {
	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplatePasswordReset, email.TemplateData{
			"FirstName": user.FirstName,
			"ResetURL":  s.websiteBaseURL + "/reset-password?token=" + token,
		}, &email.Email{
			To:      []string{user.Email},
			Subject: "Reset your password",
		})
		if err != nil {
			logger.GetLogger().Error("failed to send password reset email", "error", err, "user_id", user.ID)
		}
	}()
}
