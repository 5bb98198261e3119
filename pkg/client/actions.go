package client

import "context"

// Actions dispatches API calls and folds their results into a Store. Every
// action returns immediately; completion is observed through store updates,
// so UI code subscribes to the store instead of waiting on calls.
type Actions struct {
	client *Client
	store  *Store
}

// NewActions binds a client to a store.
func NewActions(c *Client, s *Store) *Actions {
	return &Actions{client: c, store: s}
}

// Store returns the bound store.
func (a *Actions) Store() *Store {
	return a.store
}

func (a *Actions) dispatch(fn func()) {
	go fn()
}

// session returns the store's current session, which may be nil.
func (a *Actions) session() *Session {
	return a.store.Auth().Session
}

// RegisterUser creates an account and, on success, logs the new user in.
func (a *Actions) RegisterUser(ctx context.Context, in RegisterInput) {
	a.dispatch(func() {
		if _, err := a.client.Register(ctx, in); err != nil {
			a.store.setError(err)
			return
		}
		a.login(ctx, in.Email, in.Password)
	})
}

// LoginUser authenticates and stores the resulting session.
func (a *Actions) LoginUser(ctx context.Context, email, password string) {
	a.dispatch(func() { a.login(ctx, email, password) })
}

func (a *Actions) login(ctx context.Context, email, password string) {
	session, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.store.setError(err)
		return
	}
	a.store.setAuth(session, nil)
	if user, err := a.client.CurrentUser(ctx, session); err == nil {
		a.store.setUser(user)
	}
}

// LogoutUser revokes the session server-side and resets the store. The store
// is cleared even when revocation fails; the token then simply ages out.
func (a *Actions) LogoutUser(ctx context.Context) {
	session := a.session()
	a.dispatch(func() {
		if session.Authenticated() {
			_ = a.client.Logout(ctx, session)
		}
		a.store.clearAuth()
	})
}

// SetCurrentUser refreshes the authenticated user from the server.
func (a *Actions) SetCurrentUser(ctx context.Context) {
	session := a.session()
	a.dispatch(func() {
		user, err := a.client.CurrentUser(ctx, session)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setUser(user)
	})
}

// GetCurrentProfile loads the session user's profile into the store.
func (a *Actions) GetCurrentProfile(ctx context.Context) {
	session := a.session()
	a.store.setProfileLoading()
	a.dispatch(func() {
		profile, err := a.client.MyProfile(ctx, session)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfile(profile)
	})
}

// GetProfiles loads every profile into the store.
func (a *Actions) GetProfiles(ctx context.Context) {
	a.store.setProfileLoading()
	a.dispatch(func() {
		profiles, err := a.client.AllProfiles(ctx)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfiles(profiles)
	})
}

// SaveProfile creates or updates the session user's profile.
func (a *Actions) SaveProfile(ctx context.Context, in ProfileInput) {
	session := a.session()
	a.dispatch(func() {
		profile, err := a.client.SaveProfile(ctx, session, in)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfile(profile)
	})
}

// AddExperience appends a work history entry to the session user's profile.
func (a *Actions) AddExperience(ctx context.Context, in ExperienceInput) {
	session := a.session()
	a.dispatch(func() {
		profile, err := a.client.AddExperience(ctx, session, in)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfile(profile)
	})
}

// DeleteExperience removes a work history entry.
func (a *Actions) DeleteExperience(ctx context.Context, expID uint) {
	session := a.session()
	a.dispatch(func() {
		profile, err := a.client.DeleteExperience(ctx, session, expID)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfile(profile)
	})
}

// AddEducation appends a schooling entry to the session user's profile.
func (a *Actions) AddEducation(ctx context.Context, in EducationInput) {
	session := a.session()
	a.dispatch(func() {
		profile, err := a.client.AddEducation(ctx, session, in)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfile(profile)
	})
}

// DeleteEducation removes a schooling entry.
func (a *Actions) DeleteEducation(ctx context.Context, eduID uint) {
	session := a.session()
	a.dispatch(func() {
		profile, err := a.client.DeleteEducation(ctx, session, eduID)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setProfile(profile)
	})
}

// DeleteAccount removes the session user's account and resets the store.
func (a *Actions) DeleteAccount(ctx context.Context) {
	session := a.session()
	a.dispatch(func() {
		if err := a.client.DeleteAccount(ctx, session); err != nil {
			a.store.setError(err)
			return
		}
		a.store.clearAuth()
	})
}

// GetPosts loads the feed into the store.
func (a *Actions) GetPosts(ctx context.Context) {
	a.dispatch(func() {
		posts, err := a.client.Posts(ctx)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setPosts(posts)
	})
}

// CreatePost publishes a post with the session's author snapshot and
// prepends it to the stored feed.
func (a *Actions) CreatePost(ctx context.Context, text string) {
	session := a.session()
	a.dispatch(func() {
		post, err := a.client.CreatePost(ctx, session, NewPostInput(session, text))
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setPosts(append([]Post{*post}, a.store.Posts()...))
	})
}

// DeletePost removes a post and drops it from the stored feed.
func (a *Actions) DeletePost(ctx context.Context, postID uint) {
	session := a.session()
	a.dispatch(func() {
		if err := a.client.DeletePost(ctx, session, postID); err != nil {
			a.store.setError(err)
			return
		}
		posts := a.store.Posts()
		kept := posts[:0]
		for _, p := range posts {
			if p.ID != postID {
				kept = append(kept, p)
			}
		}
		a.store.setPosts(kept)
	})
}

// LikePost likes a post and refreshes its like list in the stored feed.
func (a *Actions) LikePost(ctx context.Context, postID uint) {
	session := a.session()
	a.dispatch(func() {
		likes, err := a.client.LikePost(ctx, session, postID)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setPosts(withLikes(a.store.Posts(), postID, likes))
	})
}

// UnlikePost removes a like and refreshes the post's like list.
func (a *Actions) UnlikePost(ctx context.Context, postID uint) {
	session := a.session()
	a.dispatch(func() {
		likes, err := a.client.UnlikePost(ctx, session, postID)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setPosts(withLikes(a.store.Posts(), postID, likes))
	})
}

// AddComment comments on a post and refreshes its comment list.
func (a *Actions) AddComment(ctx context.Context, postID uint, text string) {
	session := a.session()
	a.dispatch(func() {
		comments, err := a.client.AddComment(ctx, session, postID, NewPostInput(session, text))
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setPosts(withComments(a.store.Posts(), postID, comments))
	})
}

// DeleteComment removes a comment and refreshes the post's comment list.
func (a *Actions) DeleteComment(ctx context.Context, postID, commentID uint) {
	session := a.session()
	a.dispatch(func() {
		comments, err := a.client.DeleteComment(ctx, session, postID, commentID)
		if err != nil {
			a.store.setError(err)
			return
		}
		a.store.setPosts(withComments(a.store.Posts(), postID, comments))
	})
}

func withLikes(posts []Post, postID uint, likes []Like) []Post {
	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Likes = likes
		}
	}
	return posts
}

func withComments(posts []Post, postID uint, comments []Comment) []Post {
	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Comments = comments
		}
	}
	return posts
}
