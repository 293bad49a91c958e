package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCommands(t *testing.T) {
	app := New()

	want := []string{"list", "get", "create", "start", "stop", "restart", "delete", "logs", "exec", "version"}
	for _, name := range want {
		cmd, _, err := app.rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestNew_GlobalFlags(t *testing.T) {
	app := New()
	flags := app.rootCmd.PersistentFlags()

	for _, name := range []string{"config", "env", "output", "verbose", "http-timeout"} {
		assert.NotNil(t, flags.Lookup(name), "missing --%s", name)
	}
	assert.Equal(t, "o", flags.Lookup("output").Shorthand)
	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
	assert.Equal(t, "0s", flags.Lookup("http-timeout").DefValue)
}

func TestCommandFlags(t *testing.T) {
	app := New()

	tests := []struct {
		cmd   string
		flags []string
	}{
		{"list", []string{"status", "limit"}},
		{"create", []string{"name", "image", "environment", "config-file"}},
		{"stop", []string{"timeout"}},
		{"restart", []string{"timeout"}},
		{"delete", []string{"force", "remove-volumes"}},
		{"logs", []string{"tail", "since", "until", "follow"}},
	}

	for _, tt := range tests {
		cmd, _, err := app.rootCmd.Find([]string{tt.cmd})
		require.NoError(t, err)
		for _, f := range tt.flags {
			assert.NotNil(t, cmd.Flags().Lookup(f), "%s missing --%s", tt.cmd, f)
		}
	}
}
