// -- cmd/extract.go --
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/internal/browser"
	"github.com/xkilldash9x/formpilot-cli/internal/fillpass"
	"github.com/xkilldash9x/formpilot-cli/internal/observability"
)

// newExtractCmd creates and configures the `extract` command.
func newExtractCmd() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract [url]",
		Short: "Extracts the fillable fields from a page and prints them as JSON",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlag("browser.headless", cmd.Flags().Lookup("headless"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			if err := viper.Unmarshal(appCfg); err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}

			url := normalizeTargets(args)[0]

			manager := browser.NewManager(appCfg, logger)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
				defer cancel()
				manager.Shutdown(shutdownCtx)
			}()

			page, err := manager.NewPage(ctx)
			if err != nil {
				return fmt.Errorf("open page: %w", err)
			}
			defer page.Close()

			filler := fillpass.New(appCfg, nil, logger)
			fields, err := filler.Extract(ctx, page, url)
			if err != nil {
				return err
			}

			logger.Info("Extraction complete.",
				zap.String("url", url),
				zap.Int("fields", len(fields)),
			)

			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(fields)
		},
	}

	extractCmd.Flags().Bool("headless", true, "run the browser headless")
	return extractCmd
}
