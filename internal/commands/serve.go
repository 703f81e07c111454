package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/seriparkdev/haru/internal/server"
	"github.com/seriparkdev/haru/internal/store"
)

func newServeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "이벤트 persistence 서비스 실행",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    cfg.Listen,
				Handler: server.New(store.Open(cfg.DataDir)).Handler(),
			}

			// Shut down when the root context is cancelled (SIGINT/SIGTERM).
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()

			log.Printf("persistence service listening on %s (data: %s)", cfg.Listen, cfg.DataDir)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
