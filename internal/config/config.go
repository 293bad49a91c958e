package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how response payloads are printed.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config holds the TianNiu CLI configuration.
// It is read-only after LoadConfig returns.
type Config struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`

	// Environments lists the API deployments the CLI can talk to
	Environments []Environment `yaml:"environments"`

	// Output is the default payload format: "json" (default) or "yaml"
	Output OutputFormat `yaml:"output"`

	// APIURL overrides every environment's endpoint. Only settable through
	// TIANNIU_API_URL.
	APIURL string `yaml:"-"`
}

// Metadata identifies the config document.
type Metadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Environment is one TianNiu deployment.
type Environment struct {
	Name        string   `yaml:"name"`
	APIEndpoint string   `yaml:"api_endpoint"`
	Auth        AuthSpec `yaml:"auth"`
	Default     bool     `yaml:"default"`
}

// AuthSpec describes where the environment's credential comes from.
type AuthSpec struct {
	// Type is informational; only bearer tokens are supported
	Type string `yaml:"type"`

	// APIKeyEnv names the environment variable holding the bearer token
	APIKeyEnv string `yaml:"api_key_env"`
}

// ResolvePath picks the config file location.
// Precedence: flag value, TIANNIU_CONFIG, DefaultConfigPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadConfig reads and validates the YAML config at path.
// The file is required and its top-level document must be a mapping.
// Environment variable overrides are applied after the file is parsed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse config %s: top-level document must be a mapping", path)
	}

	cfg := DefaultConfig()
	if err := doc.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// SelectEnvironment returns the environment called name, or the one marked
// default when name is empty. It returns nil, nil when name is empty and no
// environment is marked default.
func (c *Config) SelectEnvironment(name string) (*Environment, error) {
	if name != "" {
		for i := range c.Environments {
			if c.Environments[i].Name == name {
				return &c.Environments[i], nil
			}
		}
		return nil, fmt.Errorf("environment %q not found in config", name)
	}

	for i := range c.Environments {
		if c.Environments[i].Default {
			return &c.Environments[i], nil
		}
	}
	return nil, nil
}

// Endpoint returns the API base URL for env.
// Precedence: TIANNIU_API_URL, env.APIEndpoint, DefaultAPIBaseURL.
func (c *Config) Endpoint(env *Environment) string {
	if c.APIURL != "" {
		return c.APIURL
	}
	if env != nil && env.APIEndpoint != "" {
		return env.APIEndpoint
	}
	return DefaultAPIBaseURL
}

// APIKeyEnv returns the name of the variable holding the bearer token.
func (c *Config) APIKeyEnv(env *Environment) string {
	if env != nil && env.Auth.APIKeyEnv != "" {
		return env.Auth.APIKeyEnv
	}
	return DefaultAPIKeyEnv
}
