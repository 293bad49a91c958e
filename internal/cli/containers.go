package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/RevCBH/tianniu/internal/client"
	"github.com/spf13/cobra"
)

// NewListCmd creates the 'list' command
// Flags: --status (string), --limit (int)
func NewListCmd(a *App) *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List containers",
		Long: `List containers, optionally filtered by status.

Valid statuses: running, stopped, paused`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			var q client.Query
			if cmd.Flags().Changed("status") {
				q.Set("status", status)
			}
			if cmd.Flags().Changed("limit") {
				q.Set("limit", limit)
			}

			req := client.Request{Method: http.MethodGet, Path: "/containers", Query: q}
			return s.call(cmd, req, "", func(payload any) error {
				if m, ok := payload.(map[string]any); ok {
					if total, ok := m["total"]; ok {
						s.Printer.Line("Total containers: %v", total)
					}
				}
				return nil
			})
		}),
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (running, stopped, paused)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit number of results")

	return cmd
}

// NewGetCmd creates the 'get' command
// Args: container-id (required)
func NewGetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <container-id>",
		Short: "Get container details",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			req := client.Request{Method: http.MethodGet, Path: client.ContainerPath(args[0])}
			return s.call(cmd, req, "", nil)
		}),
	}
}

// ContainerSpec is the body sent by 'create' when no config file is given.
type ContainerSpec struct {
	Name                 string            `json:"name"`
	Image                string            `json:"image"`
	Labels               map[string]string `json:"labels"`
	Ports                []PortMapping     `json:"ports"`
	EnvironmentVariables []EnvVar          `json:"environment_variables"`
}

// PortMapping maps a container port to a host port.
type PortMapping struct {
	Internal int    `json:"internal"`
	External int    `json:"external"`
	Protocol string `json:"protocol"`
}

// EnvVar is a single container environment variable.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

const (
	defaultEnvironment  = "development"
	createdByLabel      = "tianniu-cli"
	defaultInternalPort = 8080
	defaultExternalPort = 9000
)

// defaultContainerSpec builds the create body from command-line flags.
func defaultContainerSpec(name, image, environment string) ContainerSpec {
	if environment == "" {
		environment = defaultEnvironment
	}
	return ContainerSpec{
		Name:  name,
		Image: image,
		Labels: map[string]string{
			"app":         name,
			"environment": environment,
			"created_by":  createdByLabel,
		},
		Ports: []PortMapping{
			{Internal: defaultInternalPort, External: defaultExternalPort, Protocol: "tcp"},
		},
		EnvironmentVariables: []EnvVar{
			{Name: "LOG_LEVEL", Value: "info"},
		},
	}
}

// loadContainerSpec reads a JSON container spec to be sent verbatim.
func loadContainerSpec(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load container config: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("load container config: %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}

// NewCreateCmd creates the 'create' command
// Flags: --name, --image (required), --environment, --config-file
func NewCreateCmd(a *App) *cobra.Command {
	var (
		name        string
		image       string
		environment string
		configFile  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new container",
		Long: `Create a new container.

With --config-file the JSON file is sent as the request body unchanged.
Otherwise the body is built from --name, --image and --environment with a
8080->9000/tcp port mapping and LOG_LEVEL=info.`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			var body any
			if configFile != "" {
				raw, err := loadContainerSpec(configFile)
				if err != nil {
					return err
				}
				body = raw
			} else {
				body = defaultContainerSpec(name, image, environment)
			}

			req := client.Request{Method: http.MethodPost, Path: "/containers", Body: body}
			return s.call(cmd, req, "Container created successfully:", nil)
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "Container name")
	cmd.Flags().StringVar(&image, "image", "", "Container image")
	cmd.Flags().StringVar(&environment, "environment", "", "Environment (development, staging, production)")
	cmd.Flags().StringVar(&configFile, "config-file", "", "Path to container configuration JSON file")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

// NewStartCmd creates the 'start' command
// Args: container-id (required)
func NewStartCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <container-id>",
		Short: "Start a container",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			req := client.Request{Method: http.MethodPost, Path: client.ContainerPath(args[0], "start")}
			return s.call(cmd, req, "Container started successfully:", nil)
		}),
	}
}

// NewStopCmd creates the 'stop' command
// Args: container-id (required)
// Flags: --timeout (int, seconds)
func NewStopCmd(a *App) *cobra.Command {
	return newTimeoutCmd(a, "stop", "Stop a container", "Container stopped successfully:")
}

// NewRestartCmd creates the 'restart' command
// Args: container-id (required)
// Flags: --timeout (int, seconds)
func NewRestartCmd(a *App) *cobra.Command {
	return newTimeoutCmd(a, "restart", "Restart a container", "Container restarted successfully:")
}

// newTimeoutCmd builds stop and restart, which differ only in their action
// path segment and success heading.
func newTimeoutCmd(a *App, action, short, heading string) *cobra.Command {
	var timeout int

	cmd := &cobra.Command{
		Use:   action + " <container-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			var q client.Query
			if cmd.Flags().Changed("timeout") {
				q.Set("timeout", timeout)
			}

			req := client.Request{
				Method: http.MethodPost,
				Path:   client.ContainerPath(args[0], action),
				Query:  q,
			}
			return s.call(cmd, req, heading, nil)
		}),
	}

	cmd.Flags().IntVar(&timeout, "timeout", 0, "Timeout in seconds")

	return cmd
}

// NewDeleteCmd creates the 'delete' command
// Args: container-id (required)
// Flags: --force (bool), --remove-volumes (bool)
func NewDeleteCmd(a *App) *cobra.Command {
	var (
		force         bool
		removeVolumes bool
	)

	cmd := &cobra.Command{
		Use:   "delete <container-id>",
		Short: "Delete a container",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			var q client.Query
			if cmd.Flags().Changed("force") {
				q.Set("force", force)
			}
			if cmd.Flags().Changed("remove-volumes") {
				q.Set("remove_volumes", removeVolumes)
			}

			req := client.Request{Method: http.MethodDelete, Path: client.ContainerPath(args[0]), Query: q}
			return s.call(cmd, req, "Container deleted successfully:", nil)
		}),
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force deletion")
	cmd.Flags().BoolVar(&removeVolumes, "remove-volumes", false, "Remove associated volumes")

	return cmd
}
