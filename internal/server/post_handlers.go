package server

import (
	"devconnect/internal/models"
	"devconnect/internal/notifications"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List posts newest first
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.postService.GetByID(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.PostInput true "Post fields"
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in validation.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidatePost(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	post, err := s.postService.Create(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}

	s.publishFeedEvent(notifications.EventPostCreated, post.ID, post.UserID, map[string]interface{}{
		"text": post.Text,
		"name": post.Name,
	})
	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Only the post's author may delete it
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{success=bool}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	if err := s.postService.Delete(c.UserContext(), userID, postID); err != nil {
		return respondError(c, err)
	}

	s.publishFeedEvent(notifications.EventPostDeleted, postID, userID, nil)
	return c.JSON(fiber.Map{"success": true})
}

// LikePost handles POST /api/posts/like/:id
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/like/{id} [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	post, err := s.postService.Like(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	s.publishFeedEvent(notifications.EventPostLiked, postID, userID, nil)
	s.notifyPostOwner(notifications.EventPostLiked, post.UserID, postID, userID)
	return c.JSON(post)
}

// UnlikePost handles POST /api/posts/unlike/:id
// @Summary Remove a like from a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/unlike/{id} [post]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	post, err := s.postService.Unlike(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	s.publishFeedEvent(notifications.EventPostUnliked, postID, userID, nil)
	return c.JSON(post)
}

// AddComment handles POST /api/posts/comment/:id
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body validation.PostInput true "Comment fields"
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/comment/{id} [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in validation.PostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldError("body", "Invalid request body"))
	}

	if result := validation.ValidatePost(in); !result.IsValid() {
		return models.RespondWithFieldErrors(c, result.Errors)
	}

	userID := currentUserID(c)
	post, err := s.postService.AddComment(c.UserContext(), userID, postID, in)
	if err != nil {
		return respondError(c, err)
	}

	s.publishFeedEvent(notifications.EventPostCommented, postID, userID, nil)
	s.notifyPostOwner(notifications.EventPostCommented, post.UserID, postID, userID)
	return c.JSON(post)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id
// @Summary Remove a comment from a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /posts/comment/{id}/{comment_id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "comment_id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	post, err := s.postService.DeleteComment(c.UserContext(), userID, postID, commentID)
	if err != nil {
		return respondError(c, err)
	}

	s.publishFeedEvent(notifications.EventCommentDeleted, postID, userID, nil)
	return c.JSON(post)
}
