package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidateOutput checks that f is a supported output format.
func ValidateOutput(f OutputFormat) error {
	switch f {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return &ValidationError{
			Field:   "output",
			Value:   f,
			Message: "must be 'json' or 'yaml'",
		}
	}
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	if err := ValidateOutput(cfg.Output); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool)
	defaults := 0
	for i, env := range cfg.Environments {
		field := fmt.Sprintf("environments[%d]", i)

		if env.Name == "" {
			errs = append(errs, &ValidationError{
				Field:   field + ".name",
				Value:   env.Name,
				Message: "must not be empty",
			})
		} else if seen[env.Name] {
			errs = append(errs, &ValidationError{
				Field:   field + ".name",
				Value:   env.Name,
				Message: "duplicate environment name",
			})
		}
		seen[env.Name] = true

		if env.APIEndpoint != "" {
			if u, err := url.Parse(env.APIEndpoint); err != nil || u.Scheme == "" || u.Host == "" {
				errs = append(errs, &ValidationError{
					Field:   field + ".api_endpoint",
					Value:   env.APIEndpoint,
					Message: "must be an absolute URL",
				})
			}
		}

		if env.Default {
			defaults++
		}
	}

	if defaults > 1 {
		errs = append(errs, &ValidationError{
			Field:   "environments",
			Value:   defaults,
			Message: "at most one environment may be marked default",
		})
	}

	return errors.Join(errs...)
}
