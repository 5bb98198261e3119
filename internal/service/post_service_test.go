package service

import (
	"context"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Create(t *testing.T) {
	t.Parallel()

	posts := noopPostRepo()
	var created *models.Post
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 5
		created = p
		return nil
	}

	svc := NewPostService(posts)
	post, err := svc.Create(context.Background(), 1, validation.PostInput{
		Text:   "A post with enough text in it",
		Name:   "Jane Doe",
		Avatar: "//gravatar/jane",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uint(5), post.ID)
	assert.Equal(t, uint(1), post.UserID)
	assert.Equal(t, "Jane Doe", post.Name)
	assert.Equal(t, "//gravatar/jane", post.Avatar)
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		}
		deleted := false
		posts.deleteFn = func(context.Context, uint) error {
			deleted = true
			return nil
		}

		svc := NewPostService(posts)
		require.NoError(t, svc.Delete(context.Background(), 1, 5))
		assert.True(t, deleted)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 2}, nil
		}
		posts.deleteFn = func(context.Context, uint) error {
			t.Fatal("delete must not be called")
			return nil
		}

		svc := NewPostService(posts)
		err := svc.Delete(context.Background(), 1, 5)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "notauthorized", appErr.Key)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getByIDFn = func(context.Context, uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("nopost", "Post not found")
		}

		svc := NewPostService(posts)
		err := svc.Delete(context.Background(), 1, 404)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "nopost", appErr.Key)
	})
}

func TestPostService_LikeUnlike(t *testing.T) {
	t.Parallel()

	t.Run("like propagates already liked", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.addLikeFn = func(context.Context, uint, uint) error {
			return models.NewFieldError("alreadyliked", "User already liked this post")
		}

		svc := NewPostService(posts)
		_, err := svc.Like(context.Background(), 1, 5)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "alreadyliked", appErr.Key)
	})

	t.Run("unlike propagates not liked", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.removeLikeFn = func(context.Context, uint, uint) error {
			return models.NewFieldError("notliked", "You have not yet liked this post")
		}

		svc := NewPostService(posts)
		_, err := svc.Unlike(context.Background(), 1, 5)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "notliked", appErr.Key)
	})

	t.Run("like returns refreshed post", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		liked := false
		posts.addLikeFn = func(context.Context, uint, uint) error {
			liked = true
			return nil
		}
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			post := &models.Post{ID: id, UserID: 2}
			if liked {
				post.Likes = []models.Like{{UserID: 1, PostID: id}}
			}
			return post, nil
		}

		svc := NewPostService(posts)
		post, err := svc.Like(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Len(t, post.Likes, 1)
	})
}

func TestPostService_Comments(t *testing.T) {
	t.Parallel()

	t.Run("add comment", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		var added *models.Comment
		posts.addCommentFn = func(_ context.Context, c *models.Comment) error {
			added = c
			return nil
		}

		svc := NewPostService(posts)
		_, err := svc.AddComment(context.Background(), 1, 5, validation.PostInput{
			Text: "A thoughtful comment here", Name: "Jane", Avatar: "//img",
		})
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, uint(5), added.PostID)
		assert.Equal(t, uint(1), added.UserID)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.deleteCommentFn = func(context.Context, uint, uint) error {
			return models.NewNotFoundError("commentnotexists", "Comment does not exist")
		}

		svc := NewPostService(posts)
		_, err := svc.DeleteComment(context.Background(), 1, 5, 77)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "commentnotexists", appErr.Key)
	})
}
