package service

import (
	"context"

	"devconnect/internal/models"
)

// Func-field repository stubs shared by the service tests in this package.

type userRepoStub struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	updateFn     func(ctx context.Context, user *models.User) error
	deleteFn     func(ctx context.Context, id uint) error
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return nil, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type profileRepoStub struct {
	getByUserIDFn      func(ctx context.Context, userID uint) (*models.Profile, error)
	getByHandleFn      func(ctx context.Context, handle string) (*models.Profile, error)
	listFn             func(ctx context.Context) ([]models.Profile, error)
	createFn           func(ctx context.Context, profile *models.Profile) error
	updateFn           func(ctx context.Context, profile *models.Profile) error
	deleteByUserIDFn   func(ctx context.Context, userID uint) error
	addExperienceFn    func(ctx context.Context, profileID uint, exp *models.Experience) error
	deleteExperienceFn func(ctx context.Context, profileID, expID uint) error
	addEducationFn     func(ctx context.Context, profileID uint, edu *models.Education) error
	deleteEducationFn  func(ctx context.Context, profileID, eduID uint) error
}

func noopProfileRepo() *profileRepoStub {
	notFound := models.NewNotFoundError("noprofile", "There is no profile for this user")
	return &profileRepoStub{
		getByUserIDFn:      func(context.Context, uint) (*models.Profile, error) { return nil, notFound },
		getByHandleFn:      func(context.Context, string) (*models.Profile, error) { return nil, notFound },
		listFn:             func(context.Context) ([]models.Profile, error) { return nil, nil },
		createFn:           func(context.Context, *models.Profile) error { return nil },
		updateFn:           func(context.Context, *models.Profile) error { return nil },
		deleteByUserIDFn:   func(context.Context, uint) error { return nil },
		addExperienceFn:    func(context.Context, uint, *models.Experience) error { return nil },
		deleteExperienceFn: func(context.Context, uint, uint) error { return nil },
		addEducationFn:     func(context.Context, uint, *models.Education) error { return nil },
		deleteEducationFn:  func(context.Context, uint, uint) error { return nil },
	}
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.getByHandleFn(ctx, handle)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, profileID uint, exp *models.Experience) error {
	return s.addExperienceFn(ctx, profileID, exp)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	return s.deleteExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, profileID uint, edu *models.Education) error {
	return s.addEducationFn(ctx, profileID, edu)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	return s.deleteEducationFn(ctx, profileID, eduID)
}

type postRepoStub struct {
	getByIDFn        func(ctx context.Context, id uint) (*models.Post, error)
	listFn           func(ctx context.Context) ([]models.Post, error)
	createFn         func(ctx context.Context, post *models.Post) error
	deleteFn         func(ctx context.Context, id uint) error
	deleteByUserIDFn func(ctx context.Context, userID uint) error
	addLikeFn        func(ctx context.Context, postID, userID uint) error
	removeLikeFn     func(ctx context.Context, postID, userID uint) error
	addCommentFn     func(ctx context.Context, comment *models.Comment) error
	deleteCommentFn  func(ctx context.Context, postID, commentID uint) error
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn:        func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:           func(context.Context) ([]models.Post, error) { return nil, nil },
		createFn:         func(context.Context, *models.Post) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		deleteByUserIDFn: func(context.Context, uint) error { return nil },
		addLikeFn:        func(context.Context, uint, uint) error { return nil },
		removeLikeFn:     func(context.Context, uint, uint) error { return nil },
		addCommentFn:     func(context.Context, *models.Comment) error { return nil },
		deleteCommentFn:  func(context.Context, uint, uint) error { return nil },
	}
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}
func (s *postRepoStub) AddLike(ctx context.Context, postID, userID uint) error {
	return s.addLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) RemoveLike(ctx context.Context, postID, userID uint) error {
	return s.removeLikeFn(ctx, postID, userID)
}
func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *postRepoStub) DeleteComment(ctx context.Context, postID, commentID uint) error {
	return s.deleteCommentFn(ctx, postID, commentID)
}
