package repository

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, repo PostRepository, user *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "jane@example.com")

	post := createTestPost(t, repo, user, "This is my first post here")

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "This is my first post here", got.Text)
	assert.Equal(t, user.ID, got.UserID)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Comments)
}

func TestPostRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "nopost", appErr.Key)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "jane@example.com")

	first := createTestPost(t, repo, user, "The very first post text")
	// Force distinct timestamps so ordering is deterministic.
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	second := createTestPost(t, repo, user, "A newer post with more text")

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestPostRepository_LikeStateMachine(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	liker := createTestUser(t, db, "liker@example.com")

	post := createTestPost(t, repo, author, "A post that will be liked")

	require.NoError(t, repo.AddLike(ctx, post.ID, liker.ID))

	// Liking twice is rejected and leaves the state unchanged.
	err := repo.AddLike(ctx, post.ID, liker.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "alreadyliked", appErr.Key)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 1)

	require.NoError(t, repo.RemoveLike(ctx, post.ID, liker.ID))

	// Unliking when not liked is rejected.
	err = repo.RemoveLike(ctx, post.ID, liker.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "notliked", appErr.Key)

	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)
}

func TestPostRepository_Comments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	commenter := createTestUser(t, db, "commenter@example.com")

	post := createTestPost(t, repo, author, "A post that will be commented")

	comment := &models.Comment{
		PostID: post.ID,
		UserID: commenter.ID,
		Text:   "Nice post, thanks for sharing",
		Name:   commenter.Name,
		Avatar: commenter.Avatar,
	}
	require.NoError(t, repo.AddComment(ctx, comment))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Nice post, thanks for sharing", got.Comments[0].Text)

	require.NoError(t, repo.DeleteComment(ctx, post.ID, comment.ID))

	err = repo.DeleteComment(ctx, post.ID, comment.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "commentnotexists", appErr.Key)
}

func TestPostRepository_DeleteScopedToPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "jane@example.com")

	postA := createTestPost(t, repo, user, "First post with a comment")
	postB := createTestPost(t, repo, user, "Second post with a comment")

	comment := &models.Comment{PostID: postA.ID, UserID: user.ID, Text: "only on post A", Name: user.Name}
	require.NoError(t, repo.AddComment(ctx, comment))

	// A comment id cannot be deleted through another post.
	err := repo.DeleteComment(ctx, postB.ID, comment.ID)
	assert.Error(t, err)

	got, err := repo.GetByID(ctx, postA.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 1)
}

func TestPostRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "jane@example.com")

	post := createTestPost(t, repo, user, "A post about to be removed")
	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.Error(t, err)

	err = repo.Delete(ctx, post.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPostRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	createTestPost(t, repo, owner, "Owner post number one here")
	createTestPost(t, repo, owner, "Owner post number two here")
	kept := createTestPost(t, repo, other, "Unrelated post stays around")

	require.NoError(t, repo.DeleteByUserID(ctx, owner.ID))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, kept.ID, posts[0].ID)

	// No posts left is a no-op.
	assert.NoError(t, repo.DeleteByUserID(ctx, owner.ID))
}
