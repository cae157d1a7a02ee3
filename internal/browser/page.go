// internal/browser/page.go
package browser

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/config"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed assets/probe_visibility.js
var probeVisibilityJS string

// Page is one live tab. It implements schemas.PageContext and the
// extractor's visibility prober.
type Page struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	netCfg config.NetworkConfig
	logger *zap.Logger

	onClose func()

	mu       sync.Mutex
	isClosed bool
}

var _ schemas.PageContext = (*Page)(nil)

func newPage(ctx context.Context, cancel context.CancelFunc, netCfg config.NetworkConfig, logger *zap.Logger) *Page {
	id := uuid.New().String()
	return &Page{
		id:     id,
		ctx:    ctx,
		cancel: cancel,
		netCfg: netCfg,
		logger: logger.With(zap.String("page_id", id)),
	}
}

// ID returns the page's unique identifier.
func (p *Page) ID() string {
	return p.id
}

// Navigate loads url and waits for the document plus the configured settle
// period. Client-side frameworks often render the form well after load, so
// the post-load wait is part of navigation, not left to callers.
func (p *Page) Navigate(ctx context.Context, url string) error {
	navCtx, cancel := p.opContext(ctx, p.netCfg.NavigationTimeout)
	defer cancel()

	if err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}

	if p.netCfg.PostLoadWait > 0 {
		select {
		case <-time.After(p.netCfg.PostLoadWait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Snapshot returns the serialized DOM.
func (p *Page) Snapshot(ctx context.Context) (string, error) {
	runCtx, cancel := p.opContext(ctx, 0)
	defer cancel()

	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return html, nil
}

// ExecuteScript evaluates script, a JavaScript function expression, applied
// to args. Arguments are marshaled to JSON literals, so only data crosses
// into the page.
func (p *Page) ExecuteScript(ctx context.Context, script string, args []interface{}) (json.RawMessage, error) {
	expr, err := buildCall(script, args)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := p.opContext(ctx, 0)
	defer cancel()

	var raw json.RawMessage
	evaluate := chromedp.Evaluate(expr, &raw, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithAwaitPromise(true)
	})
	if err := chromedp.Run(runCtx, evaluate); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	return raw, nil
}

// CurrentURL reports the page's present location.
func (p *Page) CurrentURL(ctx context.Context) (string, error) {
	runCtx, cancel := p.opContext(ctx, 0)
	defer cancel()

	var loc string
	if err := chromedp.Run(runCtx, chromedp.Location(&loc)); err != nil {
		return "", fmt.Errorf("location: %w", err)
	}
	return loc, nil
}

// Visible reports, per locator, whether the element exists and is rendered
// with visible computed style and a non-zero box. Implements the
// extractor's Prober.
func (p *Page) Visible(ctx context.Context, locators []string) (map[string]bool, error) {
	raw, err := p.ExecuteScript(ctx, probeVisibilityJS, []interface{}{locators})
	if err != nil {
		return nil, err
	}
	visible := make(map[string]bool, len(locators))
	if err := jsonAPI.Unmarshal(raw, &visible); err != nil {
		return nil, fmt.Errorf("visibility probe result: %w", err)
	}
	return visible, nil
}

// Close releases the tab.
func (p *Page) Close() error {
	p.mu.Lock()
	if p.isClosed {
		p.mu.Unlock()
		return nil
	}
	p.isClosed = true
	p.mu.Unlock()

	p.logger.Debug("Closing page.")
	p.cancel()
	if p.onClose != nil {
		p.onClose()
	}
	return nil
}

// opContext joins the tab's lifetime with the caller's deadline, adding a
// timeout when one is given.
func (p *Page) opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx, cancel := CombineContext(p.ctx, ctx)
	if timeout <= 0 {
		return runCtx, cancel
	}
	timed, timedCancel := context.WithTimeout(runCtx, timeout)
	return timed, func() {
		timedCancel()
		cancel()
	}
}

// buildCall renders "(fn)(arg0, arg1, ...)" with each argument embedded as
// a JSON literal.
func buildCall(script string, args []interface{}) (string, error) {
	rendered := make([]string, 0, len(args))
	for _, a := range args {
		b, err := jsonAPI.Marshal(a)
		if err != nil {
			return "", fmt.Errorf("marshal script argument: %w", err)
		}
		rendered = append(rendered, string(b))
	}
	return fmt.Sprintf("(%s)(%s)", strings.TrimSpace(script), strings.Join(rendered, ", ")), nil
}
