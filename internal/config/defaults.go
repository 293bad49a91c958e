package config

const (
	// DefaultConfigPath is where the config file is looked up when neither
	// --config nor TIANNIU_CONFIG is set. Relative to the working directory.
	DefaultConfigPath = "config/tianniu-config.yaml"

	DefaultAPIBaseURL = "https://tianniuprod.baidu.com/api/v1"
	DefaultAPIKeyEnv  = "TIANNIU_API_KEY"
	DefaultOutput     = OutputJSON
	DefaultDotEnvPath = ".env"
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}
