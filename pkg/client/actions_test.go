package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storeTimeout = time.Second
	storePoll    = 10 * time.Millisecond
)

// fakeAPI is a minimal in-memory rendition of the endpoints the actions hit.
type fakeAPI struct {
	t     *testing.T
	token string
	posts []Post
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/register", func(w http.ResponseWriter, r *http.Request) {
		var in RegisterInput
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&in))
		if in.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"name": "Name field is required!"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(User{ID: 1, Name: in.Name, Email: in.Email})
	})
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "password123" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"password": "Password incorrect"})
			return
		}
		json.NewEncoder(w).Encode(loginResponse{Success: true, Token: f.token})
	})
	mux.HandleFunc("GET /api/users/current", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != f.token {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"notauthorized": "Authorization denied"})
			return
		}
		json.NewEncoder(w).Encode(User{ID: 7, Name: "Jane Doe", Email: "jane@example.com"})
	})
	mux.HandleFunc("POST /api/users/logout", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.posts)
	})
	mux.HandleFunc("POST /api/posts/like/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Like{{ID: 1, UserID: 7}})
	})
	return mux
}

func newTestActions(t *testing.T) (*Actions, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{
		t:     t,
		token: signTestToken(t, 7, "Jane Doe", ""),
		posts: []Post{
			{ID: 2, UserID: 7, Text: "Second post with enough text"},
			{ID: 1, UserID: 7, Text: "First post with enough text"},
		},
	}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewActions(New(srv.URL), NewStore()), api
}

func TestLoginUserUpdatesStore(t *testing.T) {
	actions, _ := newTestActions(t)

	actions.LoginUser(context.Background(), "jane@example.com", "password123")

	require.Eventually(t, func() bool {
		auth := actions.Store().Auth()
		return auth.IsAuthenticated && auth.User != nil
	}, storeTimeout, storePoll)

	auth := actions.Store().Auth()
	assert.Equal(t, uint(7), auth.Session.Identity.ID)
	assert.Equal(t, "Jane Doe", auth.User.Name)
	assert.Empty(t, actions.Store().Errors())
}

func TestLoginUserFailureSetsErrors(t *testing.T) {
	actions, _ := newTestActions(t)

	actions.LoginUser(context.Background(), "jane@example.com", "wrong")

	require.Eventually(t, func() bool {
		return len(actions.Store().Errors()) > 0
	}, storeTimeout, storePoll)

	assert.Equal(t, "Password incorrect", actions.Store().Errors()["password"])
	assert.False(t, actions.Store().Auth().IsAuthenticated)
}

func TestRegisterUserLogsIn(t *testing.T) {
	actions, _ := newTestActions(t)

	actions.RegisterUser(context.Background(), RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.Eventually(t, func() bool {
		return actions.Store().Auth().IsAuthenticated
	}, storeTimeout, storePoll)
}

func TestRegisterUserValidationFailure(t *testing.T) {
	actions, _ := newTestActions(t)

	actions.RegisterUser(context.Background(), RegisterInput{Email: "jane@example.com", Password: "password123"})

	require.Eventually(t, func() bool {
		return len(actions.Store().Errors()) > 0
	}, storeTimeout, storePoll)

	assert.Equal(t, "Name field is required!", actions.Store().Errors()["name"])
	assert.False(t, actions.Store().Auth().IsAuthenticated)
}

func TestLogoutUserClearsStore(t *testing.T) {
	actions, _ := newTestActions(t)

	actions.LoginUser(context.Background(), "jane@example.com", "password123")
	require.Eventually(t, func() bool {
		return actions.Store().Auth().IsAuthenticated
	}, storeTimeout, storePoll)

	actions.GetPosts(context.Background())
	require.Eventually(t, func() bool {
		return len(actions.Store().Posts()) == 2
	}, storeTimeout, storePoll)

	actions.LogoutUser(context.Background())
	require.Eventually(t, func() bool {
		return !actions.Store().Auth().IsAuthenticated
	}, storeTimeout, storePoll)

	assert.Empty(t, actions.Store().Posts())
	assert.Nil(t, actions.Store().Auth().Session)
}

func TestLikePostUpdatesFeed(t *testing.T) {
	actions, _ := newTestActions(t)

	actions.GetPosts(context.Background())
	require.Eventually(t, func() bool {
		return len(actions.Store().Posts()) == 2
	}, storeTimeout, storePoll)

	actions.LikePost(context.Background(), 2)
	require.Eventually(t, func() bool {
		posts := actions.Store().Posts()
		return len(posts) == 2 && len(posts[0].Likes) == 1
	}, storeTimeout, storePoll)

	posts := actions.Store().Posts()
	assert.Equal(t, uint(7), posts[0].Likes[0].UserID)
	assert.Empty(t, posts[1].Likes)
}

func TestStoreSubscribeNotifies(t *testing.T) {
	store := NewStore()
	var fired atomic.Int64
	unsubscribe := store.Subscribe(func() { fired.Add(1) })

	store.setPosts([]Post{{ID: 1}})
	assert.Equal(t, int64(1), fired.Load())

	unsubscribe()
	store.setPosts(nil)
	assert.Equal(t, int64(1), fired.Load())
}

func TestStoreSnapshotsAreCopies(t *testing.T) {
	store := NewStore()
	store.setPosts([]Post{{ID: 1, Text: "original"}})

	snapshot := store.Posts()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "original", store.Posts()[0].Text)
}
