package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/beanview/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve every view as a JSON endpoint",
	Long: `Load the dataset once and serve the views over HTTP:

  GET /healthz
  GET /api/controls
  GET /api/table
  GET /api/histogram?min_score=N
  GET /api/scatter?cat1=&cat2=
  GET /api/countries?country1=&country2=&normalize=`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(cmd)
		if err != nil {
			return err
		}
		addr := cfg.ListenAddr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := server.New(t, renderer(), cfg.Preferences(), logger)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Serving %d records from %s on %s\n", t.Len(), t.Source, addr)
		return app.ListenAndServe(ctx, addr, time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config: :8501)")
}
