// internal/cli/serve.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scrapebadger/scrapebadger-mcp/internal/appconfig"
	"github.com/scrapebadger/scrapebadger-mcp/internal/logging"
	"github.com/scrapebadger/scrapebadger-mcp/internal/scrapebadger"
	"github.com/scrapebadger/scrapebadger-mcp/internal/server"
	"github.com/scrapebadger/scrapebadger-mcp/mcp/tools"
)

// serveCmd runs the MCP server loop on stdin/stdout.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long:  `Run the MCP server loop, answering tools/list and tools/call requests over stdio until the host closes the stream.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Verify the credential before entering the loop; the client itself is
	// still constructed lazily on the first tool call.
	if _, err := appconfig.APIKey(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider := func() (tools.DataClient, error) {
		key, err := appconfig.APIKey()
		if err != nil {
			return nil, err
		}
		return scrapebadger.New(scrapebadger.Config{
			APIKey:  key,
			BaseURL: cfg.APIBaseURL(),
			Timeout: cfg.RequestTimeout(),
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(os.Stdin, os.Stdout, provider)
	logging.LogEvent("serving MCP on stdio")
	if cfg.Debug {
		logging.LogEvent("config: endpoint=%s timeout=%s logFile=%q",
			cfg.APIBaseURL(), cfg.RequestTimeout(), cfg.LogFilePath())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
