// -- cmd/fill.go --
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/browser"
	"github.com/xkilldash9x/formpilot-cli/internal/fillpass"
	"github.com/xkilldash9x/formpilot-cli/internal/observability"
	"github.com/xkilldash9x/formpilot-cli/internal/profile"
	"github.com/xkilldash9x/formpilot-cli/internal/reporting"
)

// newFillCmd creates and configures the `fill` command.
func newFillCmd() *cobra.Command {
	var (
		output   string
		format   string
		parallel int
	)

	fillCmd := &cobra.Command{
		Use:   "fill [urls...]",
		Short: "Fills the form on each URL with synthetic or profile data",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags so command-line values override config and env.
			if err := viper.BindPFlag("filler.mode", cmd.Flags().Lookup("mode")); err != nil {
				return err
			}
			if err := viper.BindPFlag("filler.dry_run", cmd.Flags().Lookup("dry-run")); err != nil {
				return err
			}
			if err := viper.BindPFlag("filler.max_fields", cmd.Flags().Lookup("max-fields")); err != nil {
				return err
			}
			if err := viper.BindPFlag("browser.keep_open", cmd.Flags().Lookup("keep-open")); err != nil {
				return err
			}
			if err := viper.BindPFlag("browser.headless", cmd.Flags().Lookup("headless")); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			if err := viper.Unmarshal(appCfg); err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}
			// Keep-open only makes sense with a visible window.
			if appCfg.BrowserCfg.KeepOpen && appCfg.BrowserCfg.Headless {
				logger.Warn("--keep-open with headless browser has no visible effect")
			}

			targets := normalizeTargets(args)

			var store schemas.ProfileStore
			if appCfg.FillerCfg.Mode == fillpass.ModeProfile {
				s, err := profile.Open(appCfg.ProfilesCfg.Path, logger)
				if err != nil {
					return fmt.Errorf("open profile store: %w", err)
				}
				store = s
				defer store.Close()
			}

			manager := browser.NewManager(appCfg, logger)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
				defer cancel()
				manager.Shutdown(shutdownCtx)
			}()

			notifier := reporting.NewConsoleNotifier(os.Stderr)
			filler := fillpass.New(appCfg, store, logger, fillpass.WithNotifier(notifier))

			reports, runErr := fillAll(ctx, manager, filler, targets, parallel, appCfg.BrowserCfg.KeepOpen, logger)

			if len(reports) > 0 {
				reporter, err := reporting.New(format, output)
				if err != nil {
					return err
				}
				defer reporter.Close()
				for _, r := range reports {
					if err := reporter.Write(r); err != nil {
						return fmt.Errorf("write report: %w", err)
					}
				}
			}

			if appCfg.BrowserCfg.KeepOpen && runErr == nil {
				logger.Info("Leaving browser open; press Ctrl-C to exit.")
				<-ctx.Done()
			}
			return runErr
		},
	}

	fillCmd.Flags().String("mode", "", "value source: random or profile")
	fillCmd.Flags().Bool("dry-run", false, "plan values without writing to the page")
	fillCmd.Flags().Int("max-fields", 0, "cap the number of fields filled per page (0 = no cap)")
	fillCmd.Flags().Bool("keep-open", false, "leave the browser open after filling")
	fillCmd.Flags().Bool("headless", true, "run the browser headless")
	fillCmd.Flags().StringVarP(&output, "output", "o", "", "report output path (default stdout)")
	fillCmd.Flags().StringVarP(&format, "format", "f", "text", "report format: text or json")
	fillCmd.Flags().IntVar(&parallel, "parallel", 2, "maximum pages filled concurrently")

	return fillCmd
}

// fillAll runs one fill pass per target, bounded by parallel. Per-URL
// failures are logged and folded into the returned error after every target
// has had its chance.
func fillAll(
	ctx context.Context,
	manager *browser.Manager,
	filler *fillpass.Filler,
	targets []string,
	parallel int,
	keepOpen bool,
	logger *zap.Logger,
) ([]*schemas.FillReport, error) {
	if parallel < 1 {
		parallel = 1
	}

	var (
		mu      sync.Mutex
		reports []*schemas.FillReport
		failed  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for _, target := range targets {
		url := target
		g.Go(func() error {
			page, err := manager.NewPage(gctx)
			if err != nil {
				// The browser itself is broken; abort the whole run.
				return fmt.Errorf("open page for %s: %w", url, err)
			}
			if !keepOpen {
				defer page.Close()
			}

			report, err := filler.Run(gctx, page, url)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("Fill pass failed.", zap.String("url", url), zap.Error(err))
				failed = append(failed, url)
				return nil
			}
			reports = append(reports, report)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	if len(failed) > 0 {
		return reports, fmt.Errorf("fill failed for %d of %d targets: %s",
			len(failed), len(targets), strings.Join(failed, ", "))
	}
	return reports, nil
}

func normalizeTargets(args []string) []string {
	targets := make([]string, 0, len(args))
	for _, a := range args {
		if !strings.HasPrefix(a, "http://") && !strings.HasPrefix(a, "https://") {
			a = "https://" + a
		}
		targets = append(targets, a)
	}
	return targets
}
