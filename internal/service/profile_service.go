package service

import (
	"context"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// ProfileService handles profile upserts and nested experience and education
// entries.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetByUserID returns the profile owned by the user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetByHandle returns the profile with the given handle.
func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.profileRepo.GetByHandle(ctx, handle)
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// splitSkills turns the comma separated skills payload into a trimmed list.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// applyInput maps the payload onto the profile. The whole record is written
// on update, so every mapped field reflects the latest payload.
func applyInput(profile *models.Profile, userID uint, in validation.ProfileInput) {
	profile.UserID = userID
	profile.Handle = in.Handle
	profile.Status = in.Status
	profile.Company = in.Company
	profile.Website = in.Website
	profile.Location = in.Location
	profile.Bio = in.Bio
	profile.GithubUsername = in.GithubUsername
	profile.Skills = splitSkills(in.Skills)
	profile.Social = models.SocialLinks{
		Youtube:   in.Youtube,
		Twitter:   in.Twitter,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Instagram: in.Instagram,
	}
}

// Upsert creates the caller's profile or overwrites it when one exists.
// Handles must stay unique across users.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in validation.ProfileInput) (*models.Profile, error) {
	byHandle, err := s.profileRepo.GetByHandle(ctx, in.Handle)
	if err != nil {
		var appErr *models.AppError
		if !asAppError(err, &appErr) || appErr.Code != models.CodeNotFound {
			return nil, err
		}
	}
	if byHandle != nil && byHandle.UserID != userID {
		return nil, models.NewConflictError("handle", "That handle already exists")
	}

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		var appErr *models.AppError
		if !asAppError(err, &appErr) || appErr.Code != models.CodeNotFound {
			return nil, err
		}
	}

	if existing != nil {
		applyInput(existing, userID, in)
		if err := s.profileRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return s.profileRepo.GetByUserID(ctx, userID)
	}

	profile := &models.Profile{}
	applyInput(profile, userID, in)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// parseDate accepts the wire formats the dashboard sends.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// AddExperience appends a work experience entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in validation.ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseDate(in.From)
	if err != nil {
		return nil, models.NewFieldError("from", "From date is invalid")
	}

	exp := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		Current:     in.Current,
		Description: in.Description,
	}
	if in.To != "" && !in.Current {
		to, err := parseDate(in.To)
		if err != nil {
			return nil, models.NewFieldError("to", "To date is invalid")
		}
		exp.To = &to
	}

	if err := s.profileRepo.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// DeleteExperience removes an experience entry by id from the caller's profile.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation appends an education entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in validation.EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := parseDate(in.From)
	if err != nil {
		return nil, models.NewFieldError("from", "From date is invalid")
	}

	edu := &models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		Current:      in.Current,
		Description:  in.Description,
	}
	if in.To != "" && !in.Current {
		to, err := parseDate(in.To)
		if err != nil {
			return nil, models.NewFieldError("to", "To date is invalid")
		}
		edu.To = &to
	}

	if err := s.profileRepo.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// DeleteEducation removes an education entry by id from the caller's profile.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}
