package services

import (
	"testing"

	"jobhunt_backend/internal/models"
	"jobhunt_backend/internal/services/dto"
	"jobhunt_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService() (JobService, *fakeJobRepo) {
	repo := newFakeJobRepo()
	return NewJobService(repo), repo
}

func TestCreateJob_DefaultsToSaved(t *testing.T) {
	t.Parallel()
	svc, _ := newJobService()

	job, err := svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "Backend Engineer",
		Company:  "Initech",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusSaved, job.Status)
	assert.Equal(t, "user-1", job.UserID)
	assert.NotEmpty(t, job.ID)
}

func TestGetJob_OwnershipIsOpaque(t *testing.T) {
	t.Parallel()
	svc, _ := newJobService()

	job, err := svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "Backend Engineer",
		Company:  "Initech",
	})
	require.NoError(t, err)

	// Someone else's job looks exactly like a missing one.
	_, errOther := svc.GetJob(nil, job.ID, "user-2")
	_, errMissing := svc.GetJob(nil, "no-such-job", "user-1")

	var appErrOther, appErrMissing *apperrors.AppError
	require.True(t, apperrors.As(errOther, &appErrOther))
	require.True(t, apperrors.As(errMissing, &appErrMissing))
	assert.Equal(t, appErrMissing.Code, appErrOther.Code)
	assert.Equal(t, appErrMissing.Message, appErrOther.Message)
}

func TestListJobs_FiltersStatusAndArchived(t *testing.T) {
	t.Parallel()
	svc, repo := newJobService()

	applied, err := svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "A", Company: "A Corp", Status: string(models.JobStatusApplied),
	})
	require.NoError(t, err)
	_, err = svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "B", Company: "B Corp",
	})
	require.NoError(t, err)

	archived, err := svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "C", Company: "C Corp",
	})
	require.NoError(t, err)
	archived.IsArchived = true
	require.NoError(t, repo.Update(nil, archived))

	jobs, err := svc.ListJobs(nil, "user-1", &dto.ListJobsQuery{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = svc.ListJobs(nil, "user-1", &dto.ListJobsQuery{Status: string(models.JobStatusApplied)})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, applied.ID, jobs[0].ID)

	jobs, err = svc.ListJobs(nil, "user-1", &dto.ListJobsQuery{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestUpdateJob_ReplacesFields(t *testing.T) {
	t.Parallel()
	svc, _ := newJobService()

	job, err := svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "Backend Engineer",
		Company:  "Initech",
		Notes:    "old notes",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateJob(nil, job.ID, "user-1", &dto.UpdateJobRequest{
		JobTitle: "Senior Backend Engineer",
		Company:  "Initech",
		Status:   string(models.JobStatusOffer),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.JobTitle)
	assert.Equal(t, models.JobStatusOffer, updated.Status)
	// Wholesale replacement: fields absent from the request are cleared.
	assert.Empty(t, updated.Notes)
}

func TestDeleteJob(t *testing.T) {
	t.Parallel()
	svc, _ := newJobService()

	job, err := svc.CreateJob(nil, "user-1", &dto.CreateJobRequest{
		JobTitle: "Backend Engineer",
		Company:  "Initech",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(nil, job.ID, "user-1"))

	_, err = svc.GetJob(nil, job.ID, "user-1")
	assert.Error(t, err)
}
