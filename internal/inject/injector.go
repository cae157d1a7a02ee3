// internal/inject/injector.go

// Package inject writes resolved values into live form controls through the
// page's script interface. Writes go through the native property setters and
// are followed by the synthetic event sequence modern frameworks listen for,
// so controlled components observe the change. Per-field failures are
// recorded as outcomes, never returned as errors; a broken field must not
// stop the rest of the pass.
package inject

import (
	"context"
	_ "embed"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed assets/fill_field.js
var fillFieldJS string

//go:embed assets/read_aria_checked.js
var readAriaCheckedJS string

// Planned is one unit of work for the injector: a field and the value
// resolved for it.
type Planned struct {
	Field *schemas.FormField
	Value string
}

// Injector executes planned writes against a page.
type Injector struct {
	page       schemas.PageContext
	limiter    *rate.Limiter
	ariaSettle time.Duration
	log        *zap.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithWriteRate caps injected writes per second. Zero or negative disables
// pacing.
func WithWriteRate(perSecond float64) Option {
	return func(i *Injector) {
		if perSecond > 0 {
			i.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithAriaSettle sets how long to wait before re-reading an ARIA radio
// group's checked state. Custom widgets update aria-checked from their own
// click handlers, which may run after our activation returns.
func WithAriaSettle(d time.Duration) Option {
	return func(i *Injector) { i.ariaSettle = d }
}

// New creates an Injector bound to one page.
func New(page schemas.PageContext, logger *zap.Logger, opts ...Option) *Injector {
	inj := &Injector{
		page:       page,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		ariaSettle: 150 * time.Millisecond,
		log:        logger.Named("injector"),
	}
	for _, o := range opts {
		o(inj)
	}
	return inj
}

// scriptResult mirrors the object the fill script returns.
type scriptResult struct {
	Status   string `json:"status"`
	Reason   string `json:"reason"`
	Applied  string `json:"applied"`
	Fallback bool   `json:"fallback"`
}

// FillOne writes a single value and reports the outcome.
func (i *Injector) FillOne(ctx context.Context, f *schemas.FormField, value string) schemas.FillOutcome {
	out := schemas.FillOutcome{
		Locator: f.Locator,
		Kind:    f.Kind,
		Value:   value,
	}

	if err := i.limiter.Wait(ctx); err != nil {
		out.Status = schemas.OutcomeFailed
		out.Reason = schemas.ReasonScriptError
		return out
	}

	raw, err := i.page.ExecuteScript(ctx, fillFieldJS, []interface{}{f.Locator, string(f.Kind), value, map[string]interface{}{}})
	if err != nil {
		i.log.Warn("fill script failed",
			zap.String("locator", f.Locator),
			zap.Error(err),
		)
		out.Status = schemas.OutcomeFailed
		out.Reason = schemas.ReasonScriptError
		return out
	}

	var res scriptResult
	if err := jsonAPI.Unmarshal(raw, &res); err != nil {
		out.Status = schemas.OutcomeFailed
		out.Reason = schemas.ReasonScriptError
		return out
	}

	if res.Status != "filled" {
		out.Status = schemas.OutcomeFailed
		out.Reason = res.Reason
		if out.Reason == "" {
			out.Reason = schemas.ReasonScriptError
		}
		i.log.Debug("field not filled",
			zap.String("locator", f.Locator),
			zap.String("reason", out.Reason),
		)
		return out
	}

	out.Status = schemas.OutcomeFilled
	if res.Applied != "" {
		out.Value = res.Applied
	}
	if res.Fallback {
		i.log.Debug("no option matched value, activated a random one",
			zap.String("locator", f.Locator),
			zap.String("wanted", value),
			zap.String("applied", res.Applied),
		)
	}

	if f.Kind == schemas.KindAriaRadioGroup {
		if applied, ok := i.settleAria(ctx, f.Locator); ok {
			out.Value = applied
		}
	}
	return out
}

// FillMany executes all planned writes in order and returns their outcomes.
func (i *Injector) FillMany(ctx context.Context, plan []Planned) []schemas.FillOutcome {
	outcomes := make([]schemas.FillOutcome, 0, len(plan))
	for _, p := range plan {
		if ctx.Err() != nil {
			break
		}
		outcomes = append(outcomes, i.FillOne(ctx, p.Field, p.Value))
	}
	return outcomes
}

// settleAria waits for the widget's own handlers to run, then reads which
// option ended up checked. Returns false when the state cannot be read.
func (i *Injector) settleAria(ctx context.Context, locator string) (string, bool) {
	select {
	case <-time.After(i.ariaSettle):
	case <-ctx.Done():
		return "", false
	}
	raw, err := i.page.ExecuteScript(ctx, readAriaCheckedJS, []interface{}{locator})
	if err != nil {
		return "", false
	}
	var applied *string
	if err := jsonAPI.Unmarshal(raw, &applied); err != nil || applied == nil || *applied == "" {
		return "", false
	}
	return *applied, true
}
