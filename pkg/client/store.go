package client

import "sync"

// AuthState is the authentication slice of the store.
type AuthState struct {
	IsAuthenticated bool
	Session         *Session
	User            *User
}

// ProfileState is the profile slice of the store.
type ProfileState struct {
	Profile  *Profile
	Profiles []Profile
	Loading  bool
}

// Store holds client-side application state. Actions mutate it and
// subscribers are notified after every mutation; reads return snapshots so
// callers never observe a half-applied update.
type Store struct {
	mu      sync.RWMutex
	auth    AuthState
	profile ProfileState
	posts   []Post
	errors  map[string]string

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		errors: map[string]string{},
		subs:   map[int]func(){},
	}
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Auth returns the current authentication state.
func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// ProfileState returns the current profile state.
func (s *Store) ProfileState() ProfileState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Posts returns the current post list.
func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Errors returns the last error map set by a failed action. It is empty
// after any successful action.
func (s *Store) Errors() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

func (s *Store) setAuth(session *Session, user *User) {
	s.mu.Lock()
	s.auth = AuthState{IsAuthenticated: session.Authenticated(), Session: session, User: user}
	s.errors = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) clearAuth() {
	s.mu.Lock()
	s.auth = AuthState{}
	s.profile = ProfileState{}
	s.posts = nil
	s.errors = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setUser(user *User) {
	s.mu.Lock()
	s.auth.User = user
	s.errors = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setProfile(profile *Profile) {
	s.mu.Lock()
	s.profile.Profile = profile
	s.profile.Loading = false
	s.errors = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setProfiles(profiles []Profile) {
	s.mu.Lock()
	s.profile.Profiles = profiles
	s.profile.Loading = false
	s.errors = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setProfileLoading() {
	s.mu.Lock()
	s.profile.Loading = true
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setPosts(posts []Post) {
	s.mu.Lock()
	s.posts = posts
	s.errors = map[string]string{}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setError(err error) {
	fields := map[string]string{"error": err.Error()}
	if apiErr, ok := err.(*APIError); ok && len(apiErr.Fields) > 0 {
		fields = apiErr.Fields
	}
	s.mu.Lock()
	s.errors = fields
	s.profile.Loading = false
	s.mu.Unlock()
	s.notify()
}
