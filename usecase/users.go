package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jotbox/model"
	"jotbox/services"
	"jotbox/utils"

	"github.com/google/uuid"
)

// UserRepository is the persistence surface the user service needs.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UsersRepo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{UsersRepo: repo}
}

var errInvalidUserInput = errors.New("invalid email or password format")

// IsValidationError reports whether err is a user-input problem rather than
// a conflict or an internal fault.
func IsValidationError(err error) bool {
	return errors.Is(err, errInvalidUserInput)
}

// Register creates a new user with a hashed password. The plaintext password
// never leaves this call chain and the hash never leaves the model layer.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if !utils.ValidateEmail(email) || !utils.ValidatePassword(password) {
		return nil, errInvalidUserInput
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.UsersRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			utils.TrackAuthAttempt("failure", "register")
			return nil, model.ErrEmailTaken
		}
		return nil, err
	}

	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Authenticate resolves an email/password pair to a user. An unknown email
// and a wrong password both return model.ErrInvalidCredentials; the password
// check still runs against a dummy hash on unknown emails so the two cases
// take comparable time.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			services.ComparePasswords(dummyHash, password)
			utils.TrackAuthAttempt("failure", "login")
			return nil, model.ErrInvalidCredentials
		}
		log.Printf("Error finding user by email: %v", err)
		return nil, err
	}

	if !services.ComparePasswords(user.PasswordHash, password) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.ErrInvalidCredentials
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*model.User, error) {
	return s.UsersRepo.FindByID(ctx, userID)
}

// dummyHash is a valid salt$hash pair used to equalize timing when the email
// does not exist.
var dummyHash = func() string {
	h, err := services.HashPassword("jotbox-dummy-password")
	if err != nil {
		log.Fatalf("Failed to prepare dummy hash: %v", err)
	}
	return h
}()
