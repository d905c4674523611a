package api

import (
	"time"

	"github.com/ahleever/caltrack/internal/db"
	"github.com/ahleever/caltrack/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.location)
	handler.profileService = services.NewProfileService(handler.repositories.Users)
	handler.entryService = services.NewEntryService(handler.repositories.Entries, handler.location)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users, handler.location)
	}
	if handler.profileService == nil {
		handler.profileService = services.NewProfileService(handler.repositories.Users)
	}
	if handler.entryService == nil {
		handler.entryService = services.NewEntryService(handler.repositories.Entries, handler.location)
	}
}
