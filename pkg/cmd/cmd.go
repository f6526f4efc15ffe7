// Package cmd contains the command line interface of the service.
package cmd

import (
	contextPkg "context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/greengivers/nursery/pkg/app"
	"github.com/greengivers/nursery/pkg/log"
)

const shutdownGrace = 10 * time.Second

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "nursery",
		Short: "Green Givers Nursery backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose command output")

	rootCmd.AddCommand(serveCmd)
	registerConfigsCommands()
	registerSeedCommand()
	registerMailCommands()
}

// runServe blocks until the server fails or a termination signal arrives.
func runServe() error {
	a := app.NewApp(configPath)

	ctx, stop := signal.NotifyContext(contextPkg.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.Run)
	g.Go(func() error {
		<-gctx.Done()

		log.Logger().Info().Msg("shutting down")

		shutdownCtx, cancel := contextPkg.WithTimeout(contextPkg.Background(), shutdownGrace)
		defer cancel()

		return a.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
