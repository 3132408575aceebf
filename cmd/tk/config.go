package main

import (
	"os"

	"task-tracker/internal/api"
	"task-tracker/internal/cli"
	"task-tracker/internal/config"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// factoryFor picks where tasks are stored for an environment
func factoryFor(env Environment) cli.APIFactory {
	switch env {
	case Testing:
		// in-memory, nothing survives the process
		return cli.InMemoryAPIFactory
	case Development:
		return developmentFactory
	default:
		return cli.DefaultAPIFactory
	}
}

// developmentFactory keeps the database in the working directory
func developmentFactory(cfg *config.Config) (api.API, func() error, error) {
	dev := *cfg
	dev.Database.Dir = "."
	return cli.DefaultAPIFactory(&dev)
}

// getEnvironment determines the current environment from TK_ENV
func getEnvironment() Environment {
	switch os.Getenv("TK_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
