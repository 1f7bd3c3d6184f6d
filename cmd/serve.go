package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tesserae/tesserae-web/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search pages over HTTP",
	Long:  `Starts an HTTP server with one route per configured page, a health check and a read-only JSON API under /api/pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("allow-all-origins") {
			cfg.Server.AllowAllOrigins, _ = cmd.Flags().GetBool("allow-all-origins")
		}

		s, err := buildSite(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, s, slog.Default())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			slog.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("shutdown", "error", err)
			}
		}()

		slog.Info("starting tesserae", "version", Version, "config", cfgFile, "html_base", cfg.Endpoints.HTML)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow every CORS origin (overrides server.allow_all_origins)")
	rootCmd.AddCommand(serveCmd)
}
