// -- internal/reporting/notifier.go --
package reporting

import (
	"fmt"
	"io"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

// ConsoleNotifier prints one-line pass outcomes for interactive use.
type ConsoleNotifier struct {
	w io.Writer
}

var _ schemas.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) FillCompleted(report *schemas.FillReport) {
	verb := "Filled"
	if len(report.Outcomes) > 0 && report.Outcomes[0].Status == schemas.OutcomePlanned {
		verb = "Planned"
	}
	fmt.Fprintf(n.w, "%s %d/%d fields on %s\n",
		verb, report.Succeeded, report.Attempted, report.URL)
}

func (n *ConsoleNotifier) FillFailed(url string, err error) {
	fmt.Fprintf(n.w, "Fill failed for %s: %v\n", url, err)
}
