package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != OutputJSON {
		t.Errorf("expected Output to be %q, got %q", OutputJSON, cfg.Output)
	}
	if cfg.APIURL != "" {
		t.Errorf("expected APIURL to be empty, got %q", cfg.APIURL)
	}
	if len(cfg.Environments) != 0 {
		t.Errorf("expected no environments, got %d", len(cfg.Environments))
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultAPIKeyEnv != "TIANNIU_API_KEY" {
		t.Errorf("unexpected DefaultAPIKeyEnv %q", DefaultAPIKeyEnv)
	}
	if DefaultConfigPath != "config/tianniu-config.yaml" {
		t.Errorf("unexpected DefaultConfigPath %q", DefaultConfigPath)
	}
}
