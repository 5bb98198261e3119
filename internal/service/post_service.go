package service

import (
	"context"
	"errors"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

func asAppError(err error, target **models.AppError) bool {
	return errors.As(err, target)
}

// PostService handles posts, likes, and comments.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetByID returns a single post with its likes and comments.
func (s *PostService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Create stores a new post. The author's display name and avatar are
// snapshotted onto the post.
func (s *PostService) Create(ctx context.Context, userID uint, in validation.PostInput) (*models.Post, error) {
	post := &models.Post{
		Text:   in.Text,
		Name:   in.Name,
		Avatar: in.Avatar,
		UserID: userID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the owner may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records a like for the caller. A second like on the same post is
// rejected.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.AddLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// Unlike removes the caller's like. Unliking a post that was never liked is
// rejected.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.RemoveLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// AddComment appends a comment to the post.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, in validation.PostInput) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   in.Text,
		Name:   in.Name,
		Avatar: in.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// DeleteComment removes a comment by id from the post.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
