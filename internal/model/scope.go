package model

// Scope identifies the planner session a request acts on.
type Scope struct {
	SessionID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
