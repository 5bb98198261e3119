// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores a plain placeholder password to speed up large seeds.
	SkipBcrypt bool
	// MaxDays bounds how far back generated created_at timestamps spread.
	MaxDays int
	// DryRun logs what would be created without writing to the database.
	DryRun bool
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := gofakeit.Email()
	user := &models.User{
		Name:   gofakeit.Name(),
		Email:  email,
		Avatar: models.GravatarURL(email),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Name, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a developer profile for the given user.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	handle := strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(10, 999))
	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         handle,
		Status:         randomStatus(),
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: handle,
		Skills:         randomSkills(),
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", handle),
			Linkedin: fmt.Sprintf("https://www.linkedin.com/in/%s", handle),
		},
	}

	for _, override := range overrides {
		override(profile)
	}

	if f.opts.DryRun {
		f.nextID++
		profile.ID = f.nextID
		log.Printf("[dry-run] CreateProfile: handle=%s user=%d", profile.Handle, profile.UserID)
		return profile, nil
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateExperience persists a work history entry on the profile.
func (f *Factory) CreateExperience(profile *models.Profile, overrides ...func(*models.Experience)) (*models.Experience, error) {
	from := gofakeit.DateRange(
		time.Now().AddDate(-8, 0, 0),
		time.Now().AddDate(-1, 0, 0),
	)
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Current:     gofakeit.Bool(),
		Description: gofakeit.Sentence(10),
	}
	if !exp.Current {
		to := gofakeit.DateRange(from, time.Now())
		exp.To = &to
	}

	for _, override := range overrides {
		override(exp)
	}

	if f.opts.DryRun {
		f.nextID++
		exp.ID = f.nextID
		return exp, nil
	}

	if err := f.db.Create(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

// CreateEducation persists a schooling entry on the profile.
func (f *Factory) CreateEducation(profile *models.Profile, overrides ...func(*models.Education)) (*models.Education, error) {
	from := gofakeit.DateRange(
		time.Now().AddDate(-12, 0, 0),
		time.Now().AddDate(-5, 0, 0),
	)
	to := from.AddDate(4, 0, 0)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       randomDegree(),
		FieldOfStudy: randomField(),
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(edu)
	}

	if f.opts.DryRun {
		f.nextID++
		edu.ID = f.nextID
		return edu, nil
	}

	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}
	return edu, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user)

	for _, override := range overrides {
		override(post)
	}

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: user=%d text=%q", post.UserID, post.Text)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// BuildPost constructs a post struct without persisting it. Useful for batching.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	post := &models.Post{
		Text:   gofakeit.Paragraph(1, 2, 8, " "),
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	return post
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(10),
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

var (
	statuses = []string{
		"Developer", "Junior Developer", "Senior Developer", "Manager",
		"Student or Learning", "Instructor or Teacher", "Intern",
	}

	skillPool = []string{
		"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL",
		"PostgreSQL", "Redis", "Docker", "Kubernetes", "React", "Vue",
		"GraphQL", "gRPC", "Terraform", "AWS", "GCP", "Linux",
	}

	degrees = []string{
		"BSc", "BA", "MSc", "MEng", "PhD", "Associate Degree", "Bootcamp Certificate",
	}

	fields = []string{
		"Computer Science", "Software Engineering", "Information Systems",
		"Mathematics", "Electrical Engineering", "Physics",
	}
)

func randomStatus() string {
	return statuses[gofakeit.Number(0, len(statuses)-1)]
}

func randomSkills() []string {
	count := gofakeit.Number(3, 7)
	picked := make([]string, 0, count)
	seen := make(map[string]bool)
	for len(picked) < count {
		skill := skillPool[gofakeit.Number(0, len(skillPool)-1)]
		if !seen[skill] {
			seen[skill] = true
			picked = append(picked, skill)
		}
	}
	return picked
}

func randomDegree() string {
	return degrees[gofakeit.Number(0, len(degrees)-1)]
}

func randomField() string {
	return fields[gofakeit.Number(0, len(fields)-1)]
}
