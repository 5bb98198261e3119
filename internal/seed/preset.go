package seed

import (
	"fmt"
	"os"
	"strings"
	"time"

	"devconnect/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset describes a hand-curated dataset loaded from YAML. Presets produce
// stable demo accounts, unlike the randomized Seed path.
type Preset struct {
	Users []PresetUser `yaml:"users"`
}

// PresetUser is one account in a preset, with an optional profile and posts.
type PresetUser struct {
	Name     string         `yaml:"name"`
	Email    string         `yaml:"email"`
	Password string         `yaml:"password"`
	Profile  *PresetProfile `yaml:"profile"`
	Posts    []string       `yaml:"posts"`
}

// PresetProfile mirrors the profile fields a preset may pin.
type PresetProfile struct {
	Handle   string   `yaml:"handle"`
	Status   string   `yaml:"status"`
	Company  string   `yaml:"company"`
	Location string   `yaml:"location"`
	Bio      string   `yaml:"bio"`
	Skills   []string `yaml:"skills"`
}

// LoadPreset reads and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304: operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}

	for i, u := range preset.Users {
		if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Email) == "" {
			return nil, fmt.Errorf("preset user %d: name and email are required", i)
		}
		if u.Profile != nil && strings.TrimSpace(u.Profile.Handle) == "" {
			return nil, fmt.Errorf("preset user %d: profile handle is required", i)
		}
	}
	return &preset, nil
}

// Apply writes the preset's users, profiles, and posts to the database.
// Existing users with the same email are left untouched.
func (p *Preset) Apply(db *gorm.DB) error {
	for _, pu := range p.Users {
		password := pu.Password
		if password == "" {
			password = "password123"
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", pu.Email, err)
		}

		user := models.User{
			Name:     pu.Name,
			Email:    pu.Email,
			Password: string(hashed),
			Avatar:   models.GravatarURL(pu.Email),
		}
		result := db.Where(models.User{Email: pu.Email}).
			Attrs(user).
			FirstOrCreate(&user)
		if result.Error != nil {
			return fmt.Errorf("create user %s: %w", pu.Email, result.Error)
		}
		if result.RowsAffected == 0 {
			// Already present; presets never overwrite live accounts.
			continue
		}

		if pu.Profile != nil {
			profile := models.Profile{
				UserID:   user.ID,
				Handle:   pu.Profile.Handle,
				Status:   pu.Profile.Status,
				Company:  pu.Profile.Company,
				Location: pu.Profile.Location,
				Bio:      pu.Profile.Bio,
				Skills:   pu.Profile.Skills,
			}
			if profile.Status == "" {
				profile.Status = "Developer"
			}
			if err := db.Create(&profile).Error; err != nil {
				return fmt.Errorf("create profile %s: %w", pu.Profile.Handle, err)
			}
		}

		for i, text := range pu.Posts {
			post := models.Post{
				UserID: user.ID,
				Text:   text,
				Name:   user.Name,
				Avatar: user.Avatar,
				// Keep preset posts in listed order under created_at DESC.
				CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
			}
			if err := db.Create(&post).Error; err != nil {
				return fmt.Errorf("create post for %s: %w", pu.Email, err)
			}
		}
	}
	return nil
}
