package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/handlers"
	"github.com/Keoroanthony/go-crm/internal/notifier"
	"github.com/Keoroanthony/go-crm/internal/service"
	"github.com/Keoroanthony/go-crm/internal/validation"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gdb, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			log.Println("Database connected and migrated successfully")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			n, err := notifier.FromConfig(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to set up notifications: %w", err)
			}

			gin.SetMode(cfg.Server.GinMode)
			h := handlers.New(
				service.NewCreationService(gdb, validation.New(), n),
				service.NewQueryService(gdb),
			)

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           handlers.NewRouter(h),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Listening on %s", cfg.Server.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Println("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
