package client

import (
	"context"
	"fmt"
	"net/http"
)

// loginResponse matches the login endpoint body.
type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Register creates a new account and returns the created user.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, nil, http.MethodPost, "/api/users/register", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a Session holding the bearer token and the
// identity decoded from it.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, nil, http.MethodPost, "/api/users/login", body, &resp); err != nil {
		return nil, err
	}
	return NewSession(resp.Token)
}

// CurrentUser returns the account behind the session.
func (c *Client) CurrentUser(ctx context.Context, session *Session) (*User, error) {
	var user User
	if err := c.do(ctx, session, http.MethodGet, "/api/users/current", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the session's token on the server. The Session value is not
// mutated; callers drop it after a successful logout.
func (c *Client) Logout(ctx context.Context, session *Session) error {
	return c.do(ctx, session, http.MethodPost, "/api/users/logout", nil, nil)
}

// MyProfile returns the profile belonging to the session's user.
func (c *Client) MyProfile(ctx context.Context, session *Session) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, session, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// AllProfiles lists every profile.
func (c *Client) AllProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := c.do(ctx, nil, http.MethodGet, "/api/profile/all", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ProfileByHandle looks a profile up by its handle.
func (c *Client) ProfileByHandle(ctx context.Context, handle string) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, nil, http.MethodGet, "/api/profile/handle/"+handle, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileByUserID looks a profile up by its owner's user id.
func (c *Client) ProfileByUserID(ctx context.Context, userID uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/user/%d", userID)
	if err := c.do(ctx, nil, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile creates or updates the session user's profile.
func (c *Client) SaveProfile(ctx context.Context, session *Session, in ProfileInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, session, http.MethodPost, "/api/profile", in, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// AddExperience appends a work history entry and returns the updated profile.
func (c *Client) AddExperience(ctx context.Context, session *Session, in ExperienceInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, session, http.MethodPost, "/api/profile/experience", in, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteExperience removes a work history entry and returns the updated profile.
func (c *Client) DeleteExperience(ctx context.Context, session *Session, expID uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/experience/%d", expID)
	if err := c.do(ctx, session, http.MethodDelete, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// AddEducation appends a schooling entry and returns the updated profile.
func (c *Client) AddEducation(ctx context.Context, session *Session, in EducationInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, session, http.MethodPost, "/api/profile/education", in, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteEducation removes a schooling entry and returns the updated profile.
func (c *Client) DeleteEducation(ctx context.Context, session *Session, eduID uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/education/%d", eduID)
	if err := c.do(ctx, session, http.MethodDelete, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteAccount removes the session user's account, profile, and posts.
func (c *Client) DeleteAccount(ctx context.Context, session *Session) error {
	return c.do(ctx, session, http.MethodDelete, "/api/profile", nil, nil)
}

// Posts lists all posts, newest first.
func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, nil, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostByID returns one post.
func (c *Client) PostByID(ctx context.Context, postID uint) (*Post, error) {
	var post Post
	path := fmt.Sprintf("/api/posts/%d", postID)
	if err := c.do(ctx, nil, http.MethodGet, path, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost publishes a post. The author snapshot fields of PostInput are
// usually filled from session.Identity; NewPostInput does that.
func (c *Client) CreatePost(ctx context.Context, session *Session, in PostInput) (*Post, error) {
	var post Post
	if err := c.do(ctx, session, http.MethodPost, "/api/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// NewPostInput builds a PostInput carrying the session's author snapshot.
func NewPostInput(session *Session, text string) PostInput {
	in := PostInput{Text: text}
	if session != nil {
		in.Name = session.Identity.Name
		in.Avatar = session.Identity.Avatar
	}
	return in
}

// DeletePost removes a post owned by the session's user.
func (c *Client) DeletePost(ctx context.Context, session *Session, postID uint) error {
	path := fmt.Sprintf("/api/posts/%d", postID)
	return c.do(ctx, session, http.MethodDelete, path, nil, nil)
}

// LikePost records a like and returns the post's updated like list.
func (c *Client) LikePost(ctx context.Context, session *Session, postID uint) ([]Like, error) {
	var likes []Like
	path := fmt.Sprintf("/api/posts/like/%d", postID)
	if err := c.do(ctx, session, http.MethodPost, path, nil, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// UnlikePost removes a like and returns the post's updated like list.
func (c *Client) UnlikePost(ctx context.Context, session *Session, postID uint) ([]Like, error) {
	var likes []Like
	path := fmt.Sprintf("/api/posts/unlike/%d", postID)
	if err := c.do(ctx, session, http.MethodPost, path, nil, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// AddComment appends a comment and returns the post's updated comment list.
func (c *Client) AddComment(ctx context.Context, session *Session, postID uint, in PostInput) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/posts/comment/%d", postID)
	if err := c.do(ctx, session, http.MethodPost, path, in, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment and returns the post's updated comment list.
func (c *Client) DeleteComment(ctx context.Context, session *Session, postID, commentID uint) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/posts/comment/%d/%d", postID, commentID)
	if err := c.do(ctx, session, http.MethodDelete, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
