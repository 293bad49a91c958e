package config

import "os"

const (
	EnvConfigPath = "TIANNIU_CONFIG"
	EnvAPIURL     = "TIANNIU_API_URL"
	EnvOutput     = "TIANNIU_OUTPUT"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: EnvAPIURL,
		apply: func(c *Config, v string) {
			c.APIURL = v
		},
	},
	{
		envVar: EnvOutput,
		apply: func(c *Config, v string) {
			c.Output = OutputFormat(v)
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
