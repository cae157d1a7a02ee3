// internal/browser/manager.go

// Package browser owns the Chrome process and exposes each tab as a
// schemas.PageContext. Only selector strings and JSON cross this boundary;
// the rest of the pipeline never touches CDP types.
package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/internal/config"
)

const shutdownGracePeriod = 15 * time.Second

// Manager handles the browser process lifecycle and page creation.
type Manager struct {
	cfg    config.Interface
	logger *zap.Logger

	allocCtx    context.Context
	allocCancel context.CancelFunc

	pages map[string]*Page
	mu    sync.RWMutex
	wg    sync.WaitGroup

	initOnce sync.Once
	initErr  error
}

// NewManager creates a browser manager. The Chrome process is launched
// lazily on the first page request.
func NewManager(cfg config.Interface, logger *zap.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		logger: logger.Named("browser_manager"),
		pages:  make(map[string]*Page),
	}
}

// initialize builds the exec allocator that owns the Chrome process.
func (m *Manager) initialize(ctx context.Context) error {
	m.initOnce.Do(func() {
		bcfg := m.cfg.Browser()

		opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		opts = append(opts,
			chromedp.Flag("headless", bcfg.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
		if bcfg.DisableCache {
			opts = append(opts, chromedp.Flag("disk-cache-size", "0"))
		}
		if bcfg.IgnoreTLSErrors {
			opts = append(opts, chromedp.Flag("ignore-certificate-errors", true))
		}
		if bcfg.UserDataDir != "" {
			opts = append(opts, chromedp.UserDataDir(bcfg.UserDataDir))
		}
		for _, arg := range bcfg.Args {
			opts = append(opts, chromedp.Flag(arg, true))
		}

		// The allocator derives from Background so pages are not torn down
		// when one caller's request context ends.
		m.allocCtx, m.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

		m.logger.Info("Browser allocator initialized.",
			zap.Bool("headless", bcfg.Headless),
		)
	})
	return m.initErr
}

// NewPage opens a tab and returns it as a live page handle.
func (m *Manager) NewPage(ctx context.Context) (*Page, error) {
	if err := m.initialize(ctx); err != nil {
		return nil, err
	}

	tabCtx, tabCancel := chromedp.NewContext(m.allocCtx)

	// Establish the target eagerly so a broken Chrome install surfaces here
	// instead of on the first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		return nil, fmt.Errorf("failed to open browser tab: %w", err)
	}

	page := newPage(tabCtx, tabCancel, m.cfg.Network(), m.logger)

	m.wg.Add(1)
	page.onClose = func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.pages, page.ID())
		m.wg.Done()
		m.logger.Debug("Page removed from manager.", zap.String("page_id", page.ID()))
	}

	m.mu.Lock()
	m.pages[page.ID()] = page
	m.mu.Unlock()

	m.logger.Info("New page created.", zap.String("page_id", page.ID()))
	return page, nil
}

// Shutdown closes all open pages and the browser process.
func (m *Manager) Shutdown(ctx context.Context) error {
	if m.allocCtx == nil {
		return nil
	}
	m.logger.Info("Shutting down browser manager.")

	m.mu.RLock()
	open := make([]*Page, 0, len(m.pages))
	for _, p := range m.pages {
		open = append(open, p)
	}
	m.mu.RUnlock()

	for _, p := range open {
		go func(p *Page) {
			if err := p.Close(); err != nil {
				m.logger.Warn("Error closing page during shutdown.",
					zap.String("page_id", p.ID()), zap.Error(err))
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All pages closed.")
	case <-ctx.Done():
		m.logger.Warn("Timeout waiting for pages to close.", zap.Error(ctx.Err()))
	case <-time.After(shutdownGracePeriod):
		m.logger.Warn("Grace period elapsed waiting for pages to close.")
	}

	m.allocCancel()
	return nil
}
