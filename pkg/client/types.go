// Package client is a Go SDK for the DevConnect API. It mirrors the server's
// wire format with its own types so importers do not depend on server
// internals.
package client

import "time"

// Identity is the caller identity decoded from a bearer token.
type Identity struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// User is an account record as returned by the API.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialLinks is the optional set of social network URLs on a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Experience is one work history entry on a profile.
type Experience struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// Education is one schooling entry on a profile.
type Education struct {
	ID           uint       `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Profile is a developer profile with nested experience and education.
type Profile struct {
	ID             uint         `json:"id"`
	UserID         uint         `json:"user_id"`
	Handle         string       `json:"handle"`
	Status         string       `json:"status"`
	Company        string       `json:"company"`
	Website        string       `json:"website"`
	Location       string       `json:"location"`
	Bio            string       `json:"bio"`
	GithubUsername string       `json:"githubusername"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	User           *User        `json:"user,omitempty"`
}

// Like marks a user's like on a post.
type Like struct {
	ID     uint `json:"id"`
	UserID uint `json:"user"`
}

// Comment is a comment on a post with an author snapshot.
type Comment struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a feed post with embedded likes and comments.
type Post struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedEvent is a realtime feed update delivered over the WebSocket.
type FeedEvent struct {
	Type      string    `json:"type"`
	PostID    uint      `json:"post_id,omitempty"`
	ActorID   uint      `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterInput is the payload for RegisterUser.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileInput is the payload for SaveProfile. Skills is a comma-separated
// list, matching the server contract.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty"`
	GithubUsername string `json:"githubusername,omitempty"`
	Youtube        string `json:"youtube,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
}

// ExperienceInput is the payload for AddExperience. Dates use YYYY-MM-DD.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationInput is the payload for AddEducation. Dates use YYYY-MM-DD.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current,omitempty"`
	Description  string `json:"description,omitempty"`
}

// PostInput is the payload for CreatePost and AddComment. Name and Avatar
// are the author snapshot the server stores on the record.
type PostInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
