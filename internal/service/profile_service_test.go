package service

import (
	"context"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Upsert_Create(t *testing.T) {
	t.Parallel()

	profiles := noopProfileRepo()
	var created *models.Profile
	profiles.createFn = func(_ context.Context, p *models.Profile) error {
		p.ID = 10
		created = p
		return nil
	}
	fetches := 0
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		fetches++
		if created == nil {
			return nil, models.NewNotFoundError("noprofile", "There is no profile for this user")
		}
		return created, nil
	}

	svc := NewProfileService(profiles)
	profile, err := svc.Upsert(context.Background(), 1, validation.ProfileInput{
		Handle:  "janedoe",
		Status:  "Developer",
		Skills:  "Go, SQL ,  Docker,",
		Twitter: "https://twitter.com/janedoe",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), profile.UserID)
	assert.Equal(t, "janedoe", profile.Handle)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, profile.Skills)
	assert.Equal(t, "https://twitter.com/janedoe", profile.Social.Twitter)
	assert.GreaterOrEqual(t, fetches, 1)
}

func TestProfileService_Upsert_Update(t *testing.T) {
	t.Parallel()

	existing := &models.Profile{ID: 10, UserID: 1, Handle: "janedoe", Status: "Junior Dev", Bio: "old bio"}
	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return existing, nil
	}
	var updated *models.Profile
	profiles.updateFn = func(_ context.Context, p *models.Profile) error {
		updated = p
		return nil
	}

	svc := NewProfileService(profiles)
	_, err := svc.Upsert(context.Background(), 1, validation.ProfileInput{
		Handle: "janedoe",
		Status: "Senior Dev",
		Skills: "Go",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, uint(10), updated.ID)
	assert.Equal(t, "Senior Dev", updated.Status)
	// The whole record is written; omitted fields are cleared.
	assert.Empty(t, updated.Bio)
}

func TestProfileService_Upsert_HandleTaken(t *testing.T) {
	t.Parallel()

	profiles := noopProfileRepo()
	profiles.getByHandleFn = func(_ context.Context, handle string) (*models.Profile, error) {
		return &models.Profile{ID: 99, UserID: 2, Handle: handle}, nil
	}

	svc := NewProfileService(profiles)
	_, err := svc.Upsert(context.Background(), 1, validation.ProfileInput{
		Handle: "taken", Status: "Dev", Skills: "Go",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "handle", appErr.Key)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestProfileService_Upsert_OwnHandleKept(t *testing.T) {
	t.Parallel()

	existing := &models.Profile{ID: 10, UserID: 1, Handle: "janedoe", Status: "Dev"}
	profiles := noopProfileRepo()
	profiles.getByHandleFn = func(context.Context, string) (*models.Profile, error) {
		return existing, nil
	}
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return existing, nil
	}

	svc := NewProfileService(profiles)
	_, err := svc.Upsert(context.Background(), 1, validation.ProfileInput{
		Handle: "janedoe", Status: "Dev", Skills: "Go",
	})
	assert.NoError(t, err)
}

func TestProfileService_AddExperience(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		profiles := noopProfileRepo()
		profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
			return &models.Profile{ID: 10, UserID: 1}, nil
		}
		var added *models.Experience
		profiles.addExperienceFn = func(_ context.Context, profileID uint, exp *models.Experience) error {
			assert.Equal(t, uint(10), profileID)
			added = exp
			return nil
		}

		svc := NewProfileService(profiles)
		_, err := svc.AddExperience(context.Background(), 1, validation.ExperienceInput{
			Title:   "Engineer",
			Company: "Acme",
			From:    "2020-01-15",
			To:      "2022-06-30",
		})
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, "Engineer", added.Title)
		assert.Equal(t, 2020, added.From.Year())
		require.NotNil(t, added.To)
		assert.Equal(t, 2022, added.To.Year())
	})

	t.Run("current job ignores to date", func(t *testing.T) {
		t.Parallel()
		profiles := noopProfileRepo()
		profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
			return &models.Profile{ID: 10, UserID: 1}, nil
		}
		var added *models.Experience
		profiles.addExperienceFn = func(_ context.Context, _ uint, exp *models.Experience) error {
			added = exp
			return nil
		}

		svc := NewProfileService(profiles)
		_, err := svc.AddExperience(context.Background(), 1, validation.ExperienceInput{
			Title: "Engineer", Company: "Acme", From: "2023-01-01", To: "2024-01-01", Current: true,
		})
		require.NoError(t, err)
		assert.True(t, added.Current)
		assert.Nil(t, added.To)
	})

	t.Run("no profile", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo())
		_, err := svc.AddExperience(context.Background(), 1, validation.ExperienceInput{
			Title: "Engineer", Company: "Acme", From: "2020-01-01",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "noprofile", appErr.Key)
	})

	t.Run("bad from date", func(t *testing.T) {
		t.Parallel()
		profiles := noopProfileRepo()
		profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
			return &models.Profile{ID: 10, UserID: 1}, nil
		}
		svc := NewProfileService(profiles)
		_, err := svc.AddExperience(context.Background(), 1, validation.ExperienceInput{
			Title: "Engineer", Company: "Acme", From: "not-a-date",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "from", appErr.Key)
	})
}

func TestProfileService_AddEducation(t *testing.T) {
	t.Parallel()

	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return &models.Profile{ID: 10, UserID: 1}, nil
	}
	var added *models.Education
	profiles.addEducationFn = func(_ context.Context, profileID uint, edu *models.Education) error {
		assert.Equal(t, uint(10), profileID)
		added = edu
		return nil
	}

	svc := NewProfileService(profiles)
	_, err := svc.AddEducation(context.Background(), 1, validation.EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2014-09-01",
	})
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "MIT", added.School)
	assert.Equal(t, "CS", added.FieldOfStudy)
}

func TestProfileService_DeleteEntries(t *testing.T) {
	t.Parallel()

	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return &models.Profile{ID: 10, UserID: 1}, nil
	}
	profiles.deleteExperienceFn = func(_ context.Context, profileID, expID uint) error {
		assert.Equal(t, uint(10), profileID)
		assert.Equal(t, uint(33), expID)
		return nil
	}
	profiles.deleteEducationFn = func(_ context.Context, profileID, eduID uint) error {
		if eduID != 44 {
			return models.NewNotFoundError("educationnotfound", "Education entry not found")
		}
		return nil
	}

	svc := NewProfileService(profiles)

	_, err := svc.DeleteExperience(context.Background(), 1, 33)
	assert.NoError(t, err)

	_, err = svc.DeleteEducation(context.Background(), 1, 44)
	assert.NoError(t, err)

	_, err = svc.DeleteEducation(context.Background(), 1, 45)
	assert.Error(t, err)
}
