package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUserID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetAllProfiles handles GET /api/profile/all
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} models.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/all [get]
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	if len(profiles) == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There are no profiles"))
	}
	return c.JSON(profiles)
}

// GetProfileByHandle handles GET /api/profile/handle/:handle
// @Summary Profile by handle
// @Tags profile
// @Produce json
// @Param handle path string true "Profile handle"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/handle/{handle} [get]
func (s *Server) GetProfileByHandle(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByHandle(c.UserContext(), c.Params("handle"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByUserID handles GET /api/profile/user/:user_id
// @Summary Profile by user ID
// @Tags profile
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/user/{user_id} [get]
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "user_id")
	if err != nil {
		return nil
	}
	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile
// @Summary Create or update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ProfileInput true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Router /profile [post]
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var in validation.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidateProfile(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	profile, err := s.profileService.Upsert(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles POST /api/profile/experience
// @Summary Add an experience entry
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ExperienceInput true "Experience fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile/experience [post]
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var in validation.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidateExperience(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id
// @Summary Remove an experience entry
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param exp_id path int true "Experience ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/experience/{exp_id} [delete]
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := s.parseID(c, "exp_id")
	if err != nil {
		return nil
	}
	profile, err := s.profileService.DeleteExperience(c.UserContext(), currentUserID(c), expID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles POST /api/profile/education
// @Summary Add an education entry
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.EducationInput true "Education fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile/education [post]
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var in validation.EducationInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidateEducation(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id
// @Summary Remove an education entry
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param edu_id path int true "Education ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Router /profile/education/{edu_id} [delete]
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := s.parseID(c, "edu_id")
	if err != nil {
		return nil
	}
	profile, err := s.profileService.DeleteEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile
// @Summary Delete the current user's account
// @Description Remove the user's posts, profile, and account
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool}
// @Failure 401 {object} map[string]string
// @Router /profile [delete]
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
