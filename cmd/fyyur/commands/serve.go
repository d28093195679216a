package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/fyyur/internal/constants"
	httpapp "github.com/cesargomez89/fyyur/internal/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.close(); err != nil {
			rt.log.Error("Failed to release resources", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:    ":" + rt.cfg.Port,
		Handler: httpapp.NewHandler(rt.app, rt.log).Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		rt.log.Info("Server listening", "addr", srv.Addr, "driver", rt.cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return wrap("server", err)
		}
		return nil
	case <-ctx.Done():
	}

	rt.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return wrap("server forced to shutdown", err)
	}
	rt.log.Info("Server exiting")
	return nil
}
