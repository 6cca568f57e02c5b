package services

import (
	"sort"
	"sync"
	"time"

	"jobhunt_backend/internal/email"
	"jobhunt_backend/internal/models"
	"jobhunt_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored; tests pass nil.
// Finders return copies so a service mutating a result does not change the
// stored row until it calls Update, same as a real database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ *gorm.DB, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByVerificationToken(_ *gorm.DB, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(_ *gorm.DB, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(_ *gorm.DB, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(_ *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[tokenString]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *fakeRefreshTokenRepo) Revoke(_ *gorm.DB, tokenString string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[tokenString]
	if !ok || t.Revoked {
		return repositories.ErrRefreshTokenNotFound
	}
	t.Revoked = true
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAllForUser(_ *gorm.DB, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ *gorm.DB) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, t := range r.tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) CountActiveForUser(_ *gorm.DB, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, t := range r.tokens {
		if t.UserID == userID && !t.Revoked && time.Now().Before(t.ExpiresAt) {
			count++
		}
	}
	return count, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[string]*models.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[string]*models.UserSettings)}
}

func (r *fakeSettingsRepo) FindByUserID(_ *gorm.DB, userID string) (*models.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.settings[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrSettingsNotFound
}

func (r *fakeSettingsRepo) Create(_ *gorm.DB, settings *models.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}
	cp := *settings
	r.settings[settings.UserID] = &cp
	return nil
}

func (r *fakeSettingsRepo) Update(_ *gorm.DB, settings *models.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.settings[settings.UserID]; !ok {
		return repositories.ErrSettingsNotFound
	}
	cp := *settings
	r.settings[settings.UserID] = &cp
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) FindByUser(_ *gorm.DB, userID string, filter repositories.JobFilter) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Job
	for _, j := range r.jobs {
		if j.UserID != userID {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if !filter.IncludeArchived && j.IsArchived {
			continue
		}
		result = append(result, *j)
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].CreatedAt.After(result[k].CreatedAt)
	})
	return result, nil
}

func (r *fakeJobRepo) FindOwned(_ *gorm.DB, id, userID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok && j.UserID == userID {
		cp := *j
		return &cp, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(_ *gorm.DB, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.jobs[job.ID]
	if !ok || existing.UserID != job.UserID {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(_ *gorm.DB, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok && j.UserID == userID {
		delete(r.jobs, id)
		return nil
	}
	return repositories.ErrJobNotFound
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews map[string]*models.Interview
	jobs       *fakeJobRepo
}

func newFakeInterviewRepo(jobs *fakeJobRepo) *fakeInterviewRepo {
	return &fakeInterviewRepo{
		interviews: make(map[string]*models.Interview),
		jobs:       jobs,
	}
}

func (r *fakeInterviewRepo) FindByJob(_ *gorm.DB, jobID string) ([]models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Interview
	for _, iv := range r.interviews {
		if iv.JobID == jobID {
			result = append(result, *iv)
		}
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].ScheduledAt.Before(result[k].ScheduledAt)
	})
	return result, nil
}

func (r *fakeInterviewRepo) FindOwned(db *gorm.DB, id, userID string) (*models.Interview, error) {
	r.mu.Lock()
	iv, ok := r.interviews[id]
	r.mu.Unlock()
	if !ok {
		return nil, repositories.ErrInterviewNotFound
	}
	if _, err := r.jobs.FindOwned(db, iv.JobID, userID); err != nil {
		return nil, repositories.ErrInterviewNotFound
	}
	cp := *iv
	return &cp, nil
}

func (r *fakeInterviewRepo) Create(_ *gorm.DB, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	cp := *interview
	r.interviews[interview.ID] = &cp
	return nil
}

func (r *fakeInterviewRepo) Update(_ *gorm.DB, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interviews[interview.ID]; !ok {
		return repositories.ErrInterviewNotFound
	}
	cp := *interview
	r.interviews[interview.ID] = &cp
	return nil
}

func (r *fakeInterviewRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interviews[id]; !ok {
		return repositories.ErrInterviewNotFound
	}
	delete(r.interviews, id)
	return nil
}

// fakeEmailProvider records template sends on a buffered channel so tests
// can wait for the fire-and-forget goroutines.
type fakeEmailProvider struct {
	sent chan string
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{sent: make(chan string, 16)}
}

func (p *fakeEmailProvider) Send(_ *email.Email) error {
	p.sent <- "raw"
	return nil
}

func (p *fakeEmailProvider) SendWithTemplate(templateName string, _ email.TemplateData, _ *email.Email) error {
	p.sent <- templateName
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
func (p *fakeEmailProvider) Close() error    { return nil }

func (p *fakeEmailProvider) waitForSend(timeout time.Duration) (string, bool) {
	select {
	case name := <-p.sent:
		return name, true
	case <-time.After(timeout):
		return "", false
	}
}
