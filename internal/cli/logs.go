package cli

import (
	"fmt"
	"net/http"

	"github.com/RevCBH/tianniu/internal/client"
	"github.com/spf13/cobra"
)

// NewLogsCmd creates the 'logs' command
// Args: container-id (required)
// Flags: --tail (int), --since, --until (ISO 8601), --follow (bool)
//
// --follow is forwarded to the API; the response is still read as a single
// completed body.
func NewLogsCmd(a *App) *cobra.Command {
	var (
		tail   int
		since  string
		until  string
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "logs <container-id>",
		Short: "Get container logs",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			var q client.Query
			if cmd.Flags().Changed("tail") {
				q.Set("tail", tail)
			}
			if cmd.Flags().Changed("since") {
				q.Set("since", since)
			}
			if cmd.Flags().Changed("until") {
				q.Set("until", until)
			}
			if cmd.Flags().Changed("follow") {
				q.Set("follow", follow)
			}

			req := client.Request{Method: http.MethodGet, Path: client.ContainerPath(args[0], "logs"), Query: q}
			return s.call(cmd, req, "", func(payload any) error {
				return printLogs(s.Printer, payload)
			})
		}),
	}

	cmd.Flags().IntVar(&tail, "tail", 0, "Number of lines to show from the end")
	cmd.Flags().StringVar(&since, "since", "", "Show logs since timestamp (ISO 8601)")
	cmd.Flags().StringVar(&until, "until", "", "Show logs until timestamp (ISO 8601)")
	cmd.Flags().BoolVar(&follow, "follow", false, "Follow log output")

	return cmd
}

// printLogs renders the "logs" array of a logs response.
func printLogs(p *Printer, payload any) error {
	m, ok := payload.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected logs response: expected an object")
	}
	entries, ok := m["logs"].([]any)
	if !ok {
		return fmt.Errorf("unexpected logs response: missing \"logs\" list")
	}

	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		p.LogEntry(
			stringField(entry, "timestamp"),
			stringField(entry, "stream"),
			stringField(entry, "message"),
		)
	}
	return nil
}
