package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const limiterSweep = 5 * time.Minute

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.statuses.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.cfg.Server.Addr(), err)
	}
	return serve(ctx, a, ln)
}

// serve runs the site on ln until ctx is done. Request contexts derive from
// ctx, so open hero streams end as soon as shutdown begins.
func serve(ctx context.Context, a *app, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler:      a.router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error {
		a.log.WithFields(map[string]any{"addr": ln.Addr().String()}).Info("server starting")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		a.limiter.Run(gctx, limiterSweep)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
