// api/schemas/report.go
package schemas

import "time"

// OutcomeStatus describes the result of one injection attempt.
type OutcomeStatus string

const (
	OutcomeFilled  OutcomeStatus = "filled"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomePlanned OutcomeStatus = "planned" // dry-run only, nothing written
)

// Failure reason codes carried on FillOutcome. Individual field failures are
// data, not errors; one bad field never aborts a pass.
const (
	ReasonElementNotFound   = "element_not_found"
	ReasonUnfillableControl = "unfillable_control"
	ReasonNoMatchingOption  = "no_matching_option"
	ReasonScriptError       = "script_error"
)

// FillOutcome records what happened to a single field.
type FillOutcome struct {
	Locator string        `json:"locator"`
	Kind    FieldKind     `json:"kind,omitempty"`
	Value   string        `json:"value,omitempty"`
	Status  OutcomeStatus `json:"status"`
	Reason  string        `json:"reason,omitempty"`
}

// FillReport is the aggregate result of one fill pass over a page's current
// field set.
type FillReport struct {
	PassID    string        `json:"passId"`
	URL       string        `json:"url,omitempty"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`

	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	Outcomes []FillOutcome `json:"outcomes"`
}

// Record appends an outcome and maintains the aggregate counters.
func (r *FillReport) Record(o FillOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Attempted++
	switch o.Status {
	case OutcomeFailed:
		r.Failed++
	default:
		r.Succeeded++
	}
}
