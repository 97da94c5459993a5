package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/novalym/velm-native/internal/metrics"
	"github.com/novalym/velm-native/internal/tools"
)

var flagMetricsAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP tool server on stdio",
	Long:  "Serves scan_directory, hash_file, calculate_entropy, query_ast, check_syntax and list_languages over the Model Context Protocol on stdin/stdout. Relative paths resolve against the working directory.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
}

func runServe(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagMetricsAddr != "" {
		metricsSrv := metrics.StartMetricsServer(flagMetricsAddr)
		defer metricsSrv.Close()
		slog.Info("metrics.listen", "addr", flagMetricsAddr)
	}

	srv := tools.NewServer(cfg, wd, version)
	slog.Info("serve.start", "root", wd, "version", version)
	if err := srv.MCPServer().Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
