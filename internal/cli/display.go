package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/RevCBH/tianniu/internal/client"
	"github.com/RevCBH/tianniu/internal/config"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Styles used when writing to a terminal
type Styles struct {
	Heading lipgloss.Style
	Error   lipgloss.Style
	Label   lipgloss.Style
	Stream  lipgloss.Style
	Time    lipgloss.Style
}

// DefaultStyles returns the default output styles
func DefaultStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Stream:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Printer renders API responses. Styling is applied only when the
// destination is a terminal.
type Printer struct {
	w      io.Writer
	format config.OutputFormat
	color  bool
	styles Styles
}

// NewPrinter creates a Printer writing to w in the given format.
func NewPrinter(w io.Writer, format config.OutputFormat) *Printer {
	return &Printer{
		w:      w,
		format: format,
		color:  isTerminal(w),
		styles: DefaultStyles(),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Response prints resp. A 200 body is decoded and pretty-printed; any other
// status prints the code and the raw body without decoding it.
func (p *Printer) Response(resp *client.Response, heading string, extra func(payload any) error) error {
	if !resp.OK() {
		p.RemoteError(resp)
		return nil
	}

	payload, err := resp.JSON()
	if err != nil {
		return err
	}

	if heading != "" {
		fmt.Fprintln(p.w, p.style(p.styles.Heading, heading))
	}
	if err := p.Payload(payload); err != nil {
		return err
	}
	if extra != nil {
		return extra(payload)
	}
	return nil
}

// RemoteError prints a non-200 response verbatim.
func (p *Printer) RemoteError(resp *client.Response) {
	fmt.Fprintf(p.w, "%s %d\n", p.style(p.styles.Error, "Error:"), resp.StatusCode)
	fmt.Fprintln(p.w, string(resp.Body))
}

// Payload pretty-prints a decoded JSON value.
func (p *Printer) Payload(v any) error {
	switch p.format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlValue(v)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	}
}

// Line prints a single formatted line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Block prints a labeled block of text, e.g. exec output.
func (p *Printer) Block(label, text string) {
	fmt.Fprintln(p.w, p.style(p.styles.Label, label+":"))
	fmt.Fprintln(p.w, text)
}

// LogEntry prints one log line as "[timestamp] [stream] message".
func (p *Printer) LogEntry(timestamp, stream, message string) {
	fmt.Fprintf(p.w, "[%s] [%s] %s\n",
		p.style(p.styles.Time, formatLogTime(timestamp)),
		p.style(p.styles.Stream, stream),
		message)
}

// logTimeLayouts are the ISO-8601 shapes accepted for log timestamps, with
// and without a UTC offset.
var logTimeLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02 15:04:05.999999999Z07:00", true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02 15:04:05.999999999", false},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04", false},
	{"2006-01-02", false},
}

// formatLogTime parses an ISO-8601 timestamp and renders it as
// "2006-01-02 15:04:05[.ffffff][-07:00]". A trailing "Z" is read as
// "+00:00". Unparsable input is returned unchanged.
func formatLogTime(raw string) string {
	s := raw
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, l := range logTimeLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}

		layout := "2006-01-02 15:04:05"
		if t.Nanosecond() != 0 {
			layout += ".000000"
		}
		if l.zoned {
			layout += "-07:00"
		}
		return t.Format(layout)
	}
	return raw
}

// yamlValue converts json.Number leaves into ints or floats so the YAML
// encoder emits them as numbers instead of quoted strings.
func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = yamlValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = yamlValue(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

// stringField returns m[key] as a string. Non-string values are formatted
// with fmt.Sprint; missing keys yield "".
func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
