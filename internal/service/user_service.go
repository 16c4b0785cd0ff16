package service

import (
	"context"

	"socialbook/internal/models"
	"socialbook/internal/observability"
	"socialbook/internal/repository"
	"socialbook/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides identity and account business logic.
type UserService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
	postRepo   repository.PostRepository
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Bio      string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, friendRepo repository.FriendRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
		postRepo:   postRepo,
	}
}

// Register creates a new account. Username and email are unique
// case-insensitively; the password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateBio(in.Bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateError("Username already taken")
	}

	existing, err = s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Bio:      in.Bio,
	}
	// The unique index is the last word: concurrent registrations racing past
	// the lookups above still surface as DUPLICATE here.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.RegistrationsTotal.Inc()
	user.FriendIDs = []uint{}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords return the same error so callers cannot probe for accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}

// GetUser returns the user with friend-ID and post-count projections computed
// from the friendships and posts tables.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	friendIDs, err := s.friendRepo.GetFriendIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	if friendIDs == nil {
		friendIDs = []uint{}
	}
	user.FriendIDs = friendIDs

	count, err := s.postRepo.CountByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PostCount = count

	return user, nil
}

// ListUsers returns users ordered by id.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}

// Suggestions returns users the viewer is not yet friends with, excluding the
// viewer, ordered by id and truncated to limit.
func (s *UserService) Suggestions(ctx context.Context, viewerID uint, limit int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	return s.userRepo.ListSuggestions(ctx, viewerID, limit)
}

// UpdateBio changes the user's bio, the only mutable profile field.
func (s *UserService) UpdateBio(ctx context.Context, userID uint, bio string) (*models.User, error) {
	if err := validation.ValidateBio(bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Bio = bio
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
