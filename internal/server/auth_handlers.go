// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"time"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users/register
// @Summary Register a new user
// @Description Create a user account with a gravatar-derived avatar
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.RegisterInput true "Registration request"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /users/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var in validation.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidateRegister(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	user, err := s.userService.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/users/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.LoginInput true "Login credentials"
// @Success 200 {object} object{success=bool,token=string}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var in validation.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidateLogin(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	user, err := s.userService.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	token, _, err := s.auth.Sign(middleware.Identity{
		ID:     user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}, s.tokenExpiry())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   "Bearer " + token,
	})
}

// CurrentUser handles GET /api/users/current
// @Summary Current user
// @Description Return the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /users/current [get]
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Logout handles POST /api/users/logout
// @Summary Log out
// @Description Revoke the presented bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool}
// @Failure 401 {object} map[string]string
// @Router /users/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	// Blacklist for the full token lifetime; the entry outliving the token
	// by a few minutes is harmless.
	if jti := middleware.JTIFromCtx(c); jti != "" {
		if err := s.auth.Revoke(c.UserContext(), jti, s.tokenExpiry()); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// UserFlags handles GET /api/users/flags
// @Summary Feature flags
// @Description Evaluate the configured feature flags for the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /users/flags [get]
func (s *Server) UserFlags(c *fiber.Ctx) error {
	return c.JSON(s.flags.Snapshot(currentUserID(c)))
}

func (s *Server) tokenExpiry() time.Duration {
	return time.Duration(s.config.JWTExpiryMins) * time.Minute
}
