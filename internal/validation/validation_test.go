package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr map[string]string
	}{
		{
			"Valid",
			RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "hunter22"},
			nil,
		},
		{
			"All Empty",
			RegisterInput{},
			map[string]string{
				"name":     "Name field is required!",
				"email":    "Email field is required!",
				"password": "Password field is required!",
			},
		},
		{
			"Name Too Short",
			RegisterInput{Name: "J", Email: "jane@example.com", Password: "hunter22"},
			map[string]string{"name": "Name must be between 2 and 30 characters"},
		},
		{
			"Name Too Long",
			RegisterInput{Name: strings.Repeat("a", 31), Email: "jane@example.com", Password: "hunter22"},
			map[string]string{"name": "Name must be between 2 and 30 characters"},
		},
		{
			"Bad Email",
			RegisterInput{Name: "Jane Doe", Email: "not-an-email", Password: "hunter22"},
			map[string]string{"email": "Email is invalid!"},
		},
		{
			"Password Too Short",
			RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "abc"},
			map[string]string{"password": "Password must be between 6 and 30 characters"},
		},
		{
			"Empty Name Reports Required Not Length",
			RegisterInput{Email: "jane@example.com", Password: "hunter22"},
			map[string]string{"name": "Name field is required!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateRegister(tt.input)
			if tt.wantErr == nil {
				assert.True(t, res.IsValid())
				assert.Empty(t, res.Errors)
				return
			}
			assert.False(t, res.IsValid())
			assert.Equal(t, tt.wantErr, res.Errors)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   LoginInput
		wantErr map[string]string
	}{
		{"Valid", LoginInput{Email: "jane@example.com", Password: "hunter22"}, nil},
		{
			"Empty",
			LoginInput{},
			map[string]string{
				"email":    "Email field is required!",
				"password": "Password field is required!",
			},
		},
		{
			"Bad Email",
			LoginInput{Email: "jane@", Password: "hunter22"},
			map[string]string{"email": "Email is invalid!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateLogin(tt.input)
			if tt.wantErr == nil {
				assert.True(t, res.IsValid())
				return
			}
			assert.Equal(t, tt.wantErr, res.Errors)
		})
	}
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()
	valid := ProfileInput{
		Handle: "janedoe",
		Status: "Developer",
		Skills: "Go,SQL",
	}

	tests := []struct {
		name    string
		mutate  func(*ProfileInput)
		wantErr map[string]string
	}{
		{"Valid Minimal", func(in *ProfileInput) {}, nil},
		{
			"Missing Required",
			func(in *ProfileInput) { in.Handle = ""; in.Status = ""; in.Skills = "" },
			map[string]string{
				"handle": "Profile handle is required",
				"status": "Status field is required",
				"skills": "Skills field is required",
			},
		},
		{
			"Handle Too Short",
			func(in *ProfileInput) { in.Handle = "j" },
			map[string]string{"handle": "Handle needs to be between 2 and 40 characters"},
		},
		{
			"Handle Too Long",
			func(in *ProfileInput) { in.Handle = strings.Repeat("j", 41) },
			map[string]string{"handle": "Handle needs to be between 2 and 40 characters"},
		},
		{
			"Bad Website",
			func(in *ProfileInput) { in.Website = "not a url" },
			map[string]string{"website": "Not a valid URL"},
		},
		{
			"Bad Social Links",
			func(in *ProfileInput) { in.Youtube = "nope"; in.Linkedin = "alsonope" },
			map[string]string{
				"youtube":  "Not a valid URL",
				"linkedin": "Not a valid URL",
			},
		},
		{
			"Schemeless URL Accepted",
			func(in *ProfileInput) { in.Website = "janedoe.dev"; in.Twitter = "twitter.com/janedoe" },
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			res := ValidateProfile(input)
			if tt.wantErr == nil {
				assert.True(t, res.IsValid(), "errors: %v", res.Errors)
				return
			}
			assert.Equal(t, tt.wantErr, res.Errors)
		})
	}
}

func TestValidateExperience(t *testing.T) {
	t.Parallel()
	res := ValidateExperience(ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	assert.True(t, res.IsValid())

	res = ValidateExperience(ExperienceInput{})
	assert.Equal(t, map[string]string{
		"title":   "Title field is required",
		"company": "Company field is required",
		"from":    "From date field is required",
	}, res.Errors)
}

func TestValidateEducation(t *testing.T) {
	t.Parallel()
	res := ValidateEducation(EducationInput{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01"})
	assert.True(t, res.IsValid())

	res = ValidateEducation(EducationInput{})
	assert.Equal(t, map[string]string{
		"school":       "School field is required",
		"degree":       "Degree field is required",
		"fieldofstudy": "Field of study is required",
		"from":         "From date field is required",
	}, res.Errors)
}

func TestValidatePost(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   PostInput
		wantErr map[string]string
	}{
		{"Valid", PostInput{Text: "This is a long enough post", Name: "Jane", Avatar: "//img"}, nil},
		{
			"Text Too Short",
			PostInput{Text: "short", Name: "Jane", Avatar: "//img"},
			map[string]string{"text": "Post must be between 10 and 300 characters"},
		},
		{
			"Text Too Long",
			PostInput{Text: strings.Repeat("x", 301), Name: "Jane", Avatar: "//img"},
			map[string]string{"text": "Post must be between 10 and 300 characters"},
		},
		{
			"Missing Everything",
			PostInput{},
			map[string]string{
				"text":   "Text field is required",
				"name":   "Name field is required",
				"avatar": "Avatar field is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePost(tt.input)
			if tt.wantErr == nil {
				assert.True(t, res.IsValid())
				return
			}
			assert.Equal(t, tt.wantErr, res.Errors)
		})
	}
}
