package model

// Environment names the deployment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentTesting     Environment = "testing"
	EnvironmentProduction  Environment = "production"
)

// Valid reports whether e is one of the known environments.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentTesting, EnvironmentProduction:
		return true
	}
	return false
}
