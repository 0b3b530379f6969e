// Package environments enumerates the deploy environments the app can
// run as, selected through APP_ENV.
package environments

type Environment string

const (
	Production  Environment = "production"
	Staging     Environment = "staging"
	Development Environment = "development"
	Test        Environment = "test"
)
