// internal/fillpass/fillpass.go

// Package fillpass orchestrates one fill of one page: navigate, snapshot,
// extract, resolve a value per field, inject, and aggregate the outcomes
// into a report. Field-level failures are report data; only pass-level
// conditions (no fields on the page, no usable profile data) come back as
// errors.
package fillpass

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/config"
	"github.com/xkilldash9x/formpilot-cli/internal/extract"
	"github.com/xkilldash9x/formpilot-cli/internal/generate"
	"github.com/xkilldash9x/formpilot-cli/internal/inject"
	"github.com/xkilldash9x/formpilot-cli/internal/profilemap"
)

// Value source modes.
const (
	ModeRandom  = "random"
	ModeProfile = "profile"
)

// ErrNoFieldsFound indicates the page has no fillable fields.
var ErrNoFieldsFound = errors.New("no fillable fields found on page")

// ErrNoProfileData mirrors the mapper's pass-level failure for callers that
// only import this package.
var ErrNoProfileData = profilemap.ErrNoProfileData

// Filler runs fill passes.
type Filler struct {
	cfg      config.Interface
	store    schemas.ProfileStore
	notifier schemas.Notifier
	gen      *generate.Generator
	log      *zap.Logger
}

// Option configures a Filler.
type Option func(*Filler)

// WithGenerator substitutes the value generator, used by tests to pin the
// random source.
func WithGenerator(g *generate.Generator) Option {
	return func(f *Filler) { f.gen = g }
}

// WithNotifier attaches a pass-outcome notifier.
func WithNotifier(n schemas.Notifier) Option {
	return func(f *Filler) { f.notifier = n }
}

// New creates a Filler. store may be nil when only random mode is used.
func New(cfg config.Interface, store schemas.ProfileStore, logger *zap.Logger, opts ...Option) *Filler {
	f := &Filler{
		cfg:   cfg,
		store: store,
		gen:   generate.New(logger),
		log:   logger.Named("fillpass"),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Extract navigates to url (when non-empty) and returns the page's fillable
// fields without writing anything.
func (f *Filler) Extract(ctx context.Context, page schemas.PageContext, url string) ([]schemas.FormField, error) {
	if url != "" {
		if err := page.Navigate(ctx, url); err != nil {
			return nil, err
		}
	}

	html, err := page.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page snapshot: %w", err)
	}

	opts := []extract.Option{}
	if prober, ok := page.(extract.Prober); ok {
		opts = append(opts, extract.WithProber(prober))
	}
	return extract.New(doc, f.log, opts...).ExtractAll(ctx)
}

// Run executes one full fill pass against url.
func (f *Filler) Run(ctx context.Context, page schemas.PageContext, url string) (*schemas.FillReport, error) {
	report := &schemas.FillReport{
		PassID:    uuid.New().String(),
		URL:       url,
		StartedAt: time.Now(),
	}
	log := f.log.With(zap.String("pass_id", report.PassID), zap.String("url", url))

	fields, err := f.Extract(ctx, page, url)
	if err != nil {
		f.notifyFailure(url, err)
		return nil, err
	}
	if len(fields) == 0 {
		f.notifyFailure(url, ErrNoFieldsFound)
		return nil, ErrNoFieldsFound
	}

	fcfg := f.cfg.Filler()
	if fcfg.MaxFields > 0 && len(fields) > fcfg.MaxFields {
		log.Info("Capping field count for this pass.",
			zap.Int("found", len(fields)),
			zap.Int("cap", fcfg.MaxFields),
		)
		fields = fields[:fcfg.MaxFields]
	}

	plan, err := f.plan(ctx, fields)
	if err != nil {
		f.notifyFailure(url, err)
		return nil, err
	}

	if fcfg.DryRun {
		for _, p := range plan {
			report.Record(schemas.FillOutcome{
				Locator: p.Field.Locator,
				Kind:    p.Field.Kind,
				Value:   p.Value,
				Status:  schemas.OutcomePlanned,
			})
		}
		report.Duration = time.Since(report.StartedAt)
		log.Info("Dry run complete.", zap.Int("planned", report.Attempted))
		f.notifySuccess(report)
		return report, nil
	}

	injector := inject.New(page, f.log,
		inject.WithWriteRate(fcfg.WritesPerSecond),
		inject.WithAriaSettle(time.Duration(fcfg.AriaSettleMs)*time.Millisecond),
	)
	for _, outcome := range injector.FillMany(ctx, plan) {
		report.Record(outcome)
	}
	report.Duration = time.Since(report.StartedAt)

	log.Info("Fill pass complete.",
		zap.Int("attempted", report.Attempted),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	f.notifySuccess(report)
	return report, nil
}

// plan resolves one value per field according to the configured mode.
func (f *Filler) plan(ctx context.Context, fields []schemas.FormField) ([]inject.Planned, error) {
	resolve, err := f.resolver(ctx)
	if err != nil {
		return nil, err
	}
	plan := make([]inject.Planned, 0, len(fields))
	for i := range fields {
		field := &fields[i]
		plan = append(plan, inject.Planned{Field: field, Value: resolve(field)})
	}
	return plan, nil
}

func (f *Filler) resolver(ctx context.Context) (func(*schemas.FormField) string, error) {
	mode := f.cfg.Filler().Mode
	switch mode {
	case "", ModeRandom:
		return f.gen.Generate, nil
	case ModeProfile:
		if f.store == nil {
			return nil, errors.New("profile mode requires a profile store")
		}
		active, err := f.store.ActiveProfile(ctx)
		if err != nil {
			return nil, fmt.Errorf("load active profile: %w", err)
		}
		mapper, err := profilemap.New(active, f.gen, f.log)
		if err != nil {
			return nil, err
		}
		return mapper.Resolve, nil
	default:
		return nil, fmt.Errorf("unknown fill mode %q", mode)
	}
}

func (f *Filler) notifySuccess(report *schemas.FillReport) {
	if f.notifier != nil {
		f.notifier.FillCompleted(report)
	}
}

func (f *Filler) notifyFailure(url string, err error) {
	if f.notifier != nil {
		f.notifier.FillFailed(url, err)
	}
}
