package cli

import (
	"fmt"
	"net/http"

	"github.com/RevCBH/tianniu/internal/client"
	"github.com/RevCBH/tianniu/internal/config"
	"github.com/spf13/cobra"
)

// Session is the per-invocation context handed to every API command.
// It is built once from flags, the config file and the environment, and
// is read-only afterwards.
type Session struct {
	Config      *config.Config
	Environment *config.Environment
	Client      *client.Client
	Printer     *Printer
}

// SessionFunc is the signature for commands that talk to the API.
type SessionFunc func(s *Session, cmd *cobra.Command, args []string) error

// withSession wraps fn with config loading and credential resolution.
// Any failure here aborts the command before a request is sent.
func (a *App) withSession(fn SessionFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := a.bootstrap(cmd)
		if err != nil {
			return err
		}
		return fn(s, cmd, args)
	}
}

// bootstrap loads .env and config, selects the environment, resolves the
// token and builds the API client. .env is loaded first so it can supply
// TIANNIU_CONFIG and the other overrides as well as the token.
func (a *App) bootstrap(cmd *cobra.Command) (*Session, error) {
	if err := config.LoadDotEnv(config.DefaultDotEnvPath); err != nil {
		return nil, err
	}

	path := config.ResolvePath(a.configPath)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	env, err := cfg.SelectEnvironment(a.envName)
	if err != nil {
		return nil, err
	}

	token, err := config.ResolveToken(cfg.APIKeyEnv(env))
	if err != nil {
		return nil, err
	}

	format := cfg.Output
	if a.output != "" {
		format = config.OutputFormat(a.output)
		if err := config.ValidateOutput(format); err != nil {
			return nil, err
		}
	}

	httpClient := a.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: a.httpTimeout}
	}

	endpoint := cfg.Endpoint(env)
	if env != nil {
		a.logger.Printf("using environment %s (%s)", env.Name, endpoint)
	}

	return &Session{
		Config:      cfg,
		Environment: env,
		Client: client.New(endpoint, token,
			client.WithHTTPClient(httpClient),
			client.WithUserAgent("tianniu-cli/"+a.versionString()),
			client.WithLogger(a.logger),
		),
		Printer: NewPrinter(cmd.OutOrStdout(), format),
	}, nil
}

// call sends req and renders the response. heading is printed above the
// payload on success; extra, when set, renders command-specific details
// after it.
func (s *Session) call(cmd *cobra.Command, req client.Request, heading string, extra func(payload any) error) error {
	resp, err := s.Client.Do(cmd.Context(), req)
	if err != nil {
		return err
	}
	return s.Printer.Response(resp, heading, extra)
}
