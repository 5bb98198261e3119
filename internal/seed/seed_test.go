package seed

import (
	"os"
	"path/filepath"
	"testing"

	"devconnect/internal/database"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedCreatesUsersAndPosts(t *testing.T) {
	db := setupSeedDB(t)

	// SkipBcrypt keeps the test fast; hashing is covered elsewhere.
	err := Seed(db, Options{NumUsers: 5, NumPosts: 10, SkipBcrypt: true})
	require.NoError(t, err)

	var userCount, profileCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)

	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 4, profileCount)
	assert.EqualValues(t, 10, postCount)

	// Post author snapshots must match the seeded users.
	var post models.Post
	require.NoError(t, db.First(&post).Error)
	assert.NotEmpty(t, post.Name)
	assert.NotEmpty(t, post.Avatar)
}

func TestSeedDryRunWritesNothing(t *testing.T) {
	db := setupSeedDB(t)

	err := Seed(db, Options{NumUsers: 3, NumPosts: 5, SkipBcrypt: true, DryRun: true})
	require.NoError(t, err)

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, postCount)
}

func TestFactoryCreatesLinkedRecords(t *testing.T) {
	db := setupSeedDB(t)
	factory := NewFactory(db, Options{SkipBcrypt: true})

	user, err := factory.CreateUser()
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")

	profile, err := factory.CreateProfile(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.NotEmpty(t, profile.Skills)

	_, err = factory.CreateExperience(profile)
	require.NoError(t, err)
	_, err = factory.CreateEducation(profile)
	require.NoError(t, err)

	var loaded models.Profile
	require.NoError(t, db.Preload("Experience").Preload("Education").
		First(&loaded, profile.ID).Error)
	assert.Len(t, loaded.Experience, 1)
	assert.Len(t, loaded.Education, 1)
}

const presetYAML = `
users:
  - name: John Doe
    email: john@example.com
    password: secret123
    profile:
      handle: johndoe
      status: Senior Developer
      skills: [Go, SQL]
    posts:
      - First demo post with plenty of text
      - Second demo post with plenty of text
  - name: Jane Doe
    email: jane@example.com
`

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPreset(t *testing.T) {
	preset, err := LoadPreset(writePreset(t, presetYAML))
	require.NoError(t, err)
	require.Len(t, preset.Users, 2)
	assert.Equal(t, "johndoe", preset.Users[0].Profile.Handle)
	assert.Equal(t, []string{"Go", "SQL"}, preset.Users[0].Profile.Skills)
	assert.Nil(t, preset.Users[1].Profile)
}

func TestLoadPresetRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Missing Email", "users:\n  - name: John Doe\n"},
		{"Missing Handle", "users:\n  - name: John\n    email: j@x.com\n    profile:\n      status: Dev\n"},
		{"Bad YAML", "users: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPreset(writePreset(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestPresetApply(t *testing.T) {
	db := setupSeedDB(t)

	preset, err := LoadPreset(writePreset(t, presetYAML))
	require.NoError(t, err)
	require.NoError(t, preset.Apply(db))

	var user models.User
	require.NoError(t, db.Where("email = ?", "john@example.com").First(&user).Error)
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "johndoe", profile.Handle)

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("user_id = ?", user.ID).Count(&postCount).Error)
	assert.EqualValues(t, 2, postCount)

	// Applying twice must not duplicate accounts or their content.
	require.NoError(t, preset.Apply(db))
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 2, userCount)
	require.NoError(t, db.Model(&models.Post{}).
		Where("user_id = ?", user.ID).Count(&postCount).Error)
	assert.EqualValues(t, 2, postCount)
}
