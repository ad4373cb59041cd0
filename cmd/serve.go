package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zopdev/chartdoc/internal/attempts"
	"github.com/zopdev/chartdoc/internal/db"
	"github.com/zopdev/chartdoc/internal/server"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the README viewer server",
	Long: `Starts the HTTP server. Open /readme?id=<chart> in a browser to view a
chart README with its table of contents. JSON endpoints are available
under /api/readme/<chart> and /api/attempts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("allow-all") {
			cfg.Server.AllowAll = serveAllowAll
		}

		database, err := db.OpenMemory()
		if err != nil {
			return fmt.Errorf("opening attempt log: %w", err)
		}
		defer database.Close()
		store := attempts.NewStore(database)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		}, newFactory(cfg, store), store)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			if err := srv.Shutdown(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
			}
		}()

		fmt.Fprintf(os.Stderr, "chartdoc server %s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Source: %s\n", cfg.Source.BaseURL)
		fmt.Fprintf(os.Stderr, "  Filenames: %v\n", cfg.Source.Filenames)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
