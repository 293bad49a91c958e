package cli

import (
	"fmt"
	"net/http"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/RevCBH/tianniu/internal/client"
	"github.com/spf13/cobra"
)

// ExecRequest is the body of an exec call.
type ExecRequest struct {
	Command      []string `json:"command"`
	AttachStdout bool     `json:"attach_stdout"`
	AttachStderr bool     `json:"attach_stderr"`
}

// newExecRequest splits command on whitespace.
func newExecRequest(command string) ExecRequest {
	return ExecRequest{
		Command:      strings.Fields(command),
		AttachStdout: true,
		AttachStderr: true,
	}
}

// NewExecCmd creates the 'exec' command
// Args: container-id, command (both required; quote the command)
func NewExecCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <container-id> <command>",
		Short: "Execute command in container",
		Long: `Execute a command in a running container.

The command is a single argument split on whitespace, so quote it:

  tianniu exec web-1 "ls -la /app"`,
		Args: cobra.ExactArgs(2),
		RunE: a.withSession(func(s *Session, cmd *cobra.Command, args []string) error {
			body := newExecRequest(args[1])
			a.logger.Printf("exec in %s: %s", args[0], shellescape.QuoteCommand(body.Command))

			req := client.Request{
				Method: http.MethodPost,
				Path:   client.ContainerPath(args[0], "exec"),
				Body:   body,
			}
			return s.call(cmd, req, "", func(payload any) error {
				return printExecResult(s.Printer, payload)
			})
		}),
	}
}

// printExecResult prints the exit code followed by any captured output.
func printExecResult(p *Printer, payload any) error {
	m, ok := payload.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected exec response: expected an object")
	}
	if m["exit_code"] == nil {
		return fmt.Errorf("unexpected exec response: missing \"exit_code\"")
	}

	p.Line("Exit code: %s", stringField(m, "exit_code"))
	if out := stringField(m, "stdout"); out != "" {
		p.Block("STDOUT", out)
	}
	if errOut := stringField(m, "stderr"); errOut != "" {
		p.Block("STDERR", errOut)
	}
	return nil
}
