package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/ahleever/caltrack/internal/models"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users    AuthUserRepository
	location *time.Location
}

func NewAuthService(users AuthUserRepository, location *time.Location) *AuthService {
	if location == nil {
		location = time.UTC
	}
	return &AuthService{users: users, location: location}
}

// HashPassword is a single unsalted SHA-256 digest, kept compatible with the
// stored password_hash column. Not a hardened scheme; hardening it is out of
// scope for this store.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func (service *AuthService) Register(username string, password string) (models.User, error) {
	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		CreatedAt:    time.Now().In(service.location),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index is the last word when two registrations race.
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if user.PasswordHash != HashPassword(password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
