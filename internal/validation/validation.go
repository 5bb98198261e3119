// Package validation provides input validation for API payloads. Validators
// are pure functions returning a field-to-message map; for each field the
// first failing rule wins.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// Result collects per-field validation errors keyed by the JSON field name.
type Result struct {
	Errors map[string]string
}

// IsValid reports whether the payload passed every rule.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(field, message string) {
	if _, exists := r.Errors[field]; exists {
		return
	}
	r.Errors[field] = message
}

func newResult() Result {
	return Result{Errors: make(map[string]string)}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// isURL accepts absolute URLs with or without a scheme, requiring a dotted
// host. Bare words like "not-a-url" are rejected.
func isURL(s string) bool {
	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.TrimSuffix(u.Host, ".")
	return strings.Contains(host, ".")
}

func lengthBetween(s string, min, max int) bool {
	n := len([]rune(s))
	return n >= min && n <= max
}

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegister checks a registration payload.
func ValidateRegister(in RegisterInput) Result {
	res := newResult()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		res.add("name", "Name field is required!")
	} else if !lengthBetween(name, 2, 30) {
		res.add("name", "Name must be between 2 and 30 characters")
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		res.add("email", "Email field is required!")
	} else if !isEmail(email) {
		res.add("email", "Email is invalid!")
	}

	if in.Password == "" {
		res.add("password", "Password field is required!")
	} else if !lengthBetween(in.Password, 6, 30) {
		res.add("password", "Password must be between 6 and 30 characters")
	}

	return res
}

// LoginInput is the payload for credential login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin checks a login payload.
func ValidateLogin(in LoginInput) Result {
	res := newResult()

	email := strings.TrimSpace(in.Email)
	if email == "" {
		res.add("email", "Email field is required!")
	} else if !isEmail(email) {
		res.add("email", "Email is invalid!")
	}

	if in.Password == "" {
		res.add("password", "Password field is required!")
	}

	return res
}

// ProfileInput is the payload for creating or updating a profile. Skills is
// a comma-separated list; social fields are optional URLs.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ValidateProfile checks a profile payload. Optional URL fields are only
// validated when present.
func ValidateProfile(in ProfileInput) Result {
	res := newResult()

	handle := strings.TrimSpace(in.Handle)
	if handle == "" {
		res.add("handle", "Profile handle is required")
	} else if !lengthBetween(handle, 2, 40) {
		res.add("handle", "Handle needs to be between 2 and 40 characters")
	} else if handleReserved(handle) {
		res.add("handle", "That handle is reserved")
	}

	if strings.TrimSpace(in.Status) == "" {
		res.add("status", "Status field is required")
	}

	if strings.TrimSpace(in.Skills) == "" {
		res.add("skills", "Skills field is required")
	}

	optionalURLs := map[string]string{
		"website":   in.Website,
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	}
	for field, value := range optionalURLs {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if !isURL(value) {
			res.add(field, "Not a valid URL")
		}
	}

	return res
}

// ExperienceInput is the payload for adding a work experience entry. Dates
// are ISO strings; To may be empty when Current is set.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ValidateExperience checks an experience payload.
func ValidateExperience(in ExperienceInput) Result {
	res := newResult()

	if strings.TrimSpace(in.Title) == "" {
		res.add("title", "Title field is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		res.add("company", "Company field is required")
	}
	if strings.TrimSpace(in.From) == "" {
		res.add("from", "From date field is required")
	}

	return res
}

// EducationInput is the payload for adding an education entry.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ValidateEducation checks an education payload.
func ValidateEducation(in EducationInput) Result {
	res := newResult()

	if strings.TrimSpace(in.School) == "" {
		res.add("school", "School field is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		res.add("degree", "Degree field is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		res.add("fieldofstudy", "Field of study is required")
	}
	if strings.TrimSpace(in.From) == "" {
		res.add("from", "From date field is required")
	}

	return res
}

// PostInput is the payload for creating a post or comment.
type PostInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ValidatePost checks a post or comment payload.
func ValidatePost(in PostInput) Result {
	res := newResult()

	text := strings.TrimSpace(in.Text)
	if text == "" {
		res.add("text", "Text field is required")
	} else if !lengthBetween(text, 10, 300) {
		res.add("text", "Post must be between 10 and 300 characters")
	}

	if strings.TrimSpace(in.Name) == "" {
		res.add("name", "Name field is required")
	}
	if strings.TrimSpace(in.Avatar) == "" {
		res.add("avatar", "Avatar field is required")
	}

	return res
}
