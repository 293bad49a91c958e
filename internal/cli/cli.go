package cli

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Global flags
	configPath  string
	envName     string
	output      string
	verbose     bool
	httpTimeout time.Duration

	// httpClient is used for API calls when set; tests inject one here
	httpClient *http.Client

	// logger receives request diagnostics; discarded unless --verbose
	logger *log.Logger

	versionInfo VersionInfo
}

// VersionInfo holds build metadata set via ldflags
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{
		logger: log.New(io.Discard, "tianniu: ", 0),
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "tianniu",
		Short: "TianNiu container management CLI",
		Long: `tianniu manages containers on the TianNiu platform.

Each command sends one authenticated request to the TianNiu API and prints
the response. The bearer token is read from TIANNIU_API_KEY (or the
variable named by the selected environment's auth.api_key_env).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger.SetOutput(cmd.ErrOrStderr())
			}
		},
	}

	flags := a.rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "",
		"Path to TianNiu configuration file (default config/tianniu-config.yaml, or $TIANNIU_CONFIG)")
	flags.StringVar(&a.envName, "env", "",
		"Environment to use (defaults to the default environment in config)")
	flags.StringVarP(&a.output, "output", "o", "",
		"Payload format: json or yaml (default from config, json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false,
		"Log requests to stderr")
	flags.DurationVar(&a.httpTimeout, "http-timeout", 0,
		"Client-side HTTP timeout (0 means no timeout)")

	a.rootCmd.AddCommand(
		NewListCmd(a),
		NewGetCmd(a),
		NewCreateCmd(a),
		NewStartCmd(a),
		NewStopCmd(a),
		NewRestartCmd(a),
		NewDeleteCmd(a),
		NewLogsCmd(a),
		NewExecCmd(a),
		NewVersionCmd(a),
	)
}
