package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Seed populates the database with generated users, profiles, and posts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	profiles := make([]*models.Profile, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, user)

		// Roughly four in five seed users carry a full profile; the rest
		// model fresh signups that never completed one.
		if i%5 == 4 {
			continue
		}
		profile, err := factory.CreateProfile(user)
		if err != nil {
			log.Printf("Failed to create profile for user %d: %v", user.ID, err)
			continue
		}
		profiles = append(profiles, profile)

		for j := 0; j < randIntn(3); j++ {
			if _, err := factory.CreateExperience(profile); err != nil {
				log.Printf("Failed to create experience: %v", err)
			}
		}
		for j := 0; j < randIntn(2); j++ {
			if _, err := factory.CreateEducation(profile); err != nil {
				log.Printf("Failed to create education: %v", err)
			}
		}
	}
	if len(users) == 0 {
		return fmt.Errorf("no users could be created")
	}
	log.Printf("Created %d users (%d with profiles)", len(users), len(profiles))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[randIntn(len(users))]
		posts = append(posts, factory.BuildPost(author))
	}
	if len(posts) > 0 {
		if err := factory.CreatePostsBatch(posts); err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
	}
	log.Printf("Created %d posts", len(posts))

	if !opts.DryRun {
		if err := addEngagement(factory, users, posts); err != nil {
			return fmt.Errorf("failed to add likes and comments: %w", err)
		}
	}

	log.Println("Database seeding completed")
	return nil
}

// addEngagement sprinkles likes and comments over the seeded posts.
func addEngagement(factory *Factory, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		likers := randIntn(min(len(users), 8))
		for _, user := range pickUsers(users, likers) {
			if err := factory.CreateLike(user, post); err != nil {
				return err
			}
		}

		for i := 0; i < randIntn(4); i++ {
			commenter := users[randIntn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	return nil
}

// pickUsers returns n distinct users chosen at random.
func pickUsers(users []*models.User, n int) []*models.User {
	shuffled := make([]*models.User, len(users))
	copy(shuffled, users)
	seededRand().Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, educations, experiences, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func seededRand() *rand.Rand {
	// #nosec G404: acceptable for seeding
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return seededRand().Intn(n)
}
