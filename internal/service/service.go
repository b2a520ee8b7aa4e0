package service

import (
	"github.com/rosterkit/roster/internal/config"
	"github.com/rosterkit/roster/internal/domain/person"
	"github.com/rosterkit/roster/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	PersonRepo person.Repository
}
