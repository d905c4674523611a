package api

import (
	"time"

	"github.com/ahleever/caltrack/internal/db"
	"github.com/ahleever/caltrack/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories   *db.Repositories
	authService    *services.AuthService
	profileService *services.ProfileService
	entryService   *services.EntryService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
