// -- internal/reporting/reporter.go --
package reporting

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reporter writes fill reports to an output.
type Reporter interface {
	// Write renders a single fill report.
	Write(report *schemas.FillReport) error
	// Close finalizes the report and closes any underlying resources.
	Close() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// New creates a reporter for the given format writing to outputPath.
// An empty path or "stdout" writes to standard output.
func New(format, outputPath string) (Reporter, error) {
	var writer io.WriteCloser
	isStdOut := outputPath == "" || outputPath == "stdout"

	if isStdOut {
		writer = &nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		writer = f
	}

	switch format {
	case "json":
		return &jsonReporter{w: writer}, nil
	case "text":
		return &textReporter{w: writer}, nil
	default:
		if !isStdOut {
			writer.Close()
		}
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

type jsonReporter struct {
	w io.WriteCloser
}

func (r *jsonReporter) Write(report *schemas.FillReport) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (r *jsonReporter) Close() error {
	return r.w.Close()
}

type textReporter struct {
	w io.WriteCloser
}

func (r *textReporter) Write(report *schemas.FillReport) error {
	fmt.Fprintf(r.w, "Fill pass %s\n", report.PassID)
	if report.URL != "" {
		fmt.Fprintf(r.w, "URL:       %s\n", report.URL)
	}
	fmt.Fprintf(r.w, "Attempted: %d  Succeeded: %d  Failed: %d  (%s)\n",
		report.Attempted, report.Succeeded, report.Failed, report.Duration.Round(1e6))

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tLOCATOR\tKIND\tVALUE\tREASON")
	for _, o := range report.Outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			o.Status, o.Locator, o.Kind, truncate(o.Value, 40), o.Reason)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

func (r *textReporter) Close() error {
	return r.w.Close()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
