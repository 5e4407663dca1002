package cdpcmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tgraves/cdpctl/pkg/cdp"
)

// LaunchOptions holds the parsed state for the `launch` subcommand.
type LaunchOptions struct {
	global *GlobalOptions
}

func newLaunchCommand(global *GlobalOptions) *cobra.Command {
	o := &LaunchOptions{global: global}
	return &cobra.Command{
		Use:   "launch",
		Short: "Launch a tracked browser instance and wait for a shutdown signal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context())
		},
	}
}

// Run launches a browser instance per o.global's server address/launch
// policy flags, prints its debug host and port, then blocks until
// SIGINT/SIGTERM, at which point it closes the client, killing the
// instance and releasing every resource it holds.
func (o *LaunchOptions) Run(ctx context.Context) error {
	cfg, err := o.global.ServerConfig()
	if err != nil {
		return fmt.Errorf("resolving config: %w", err)
	}

	client, err := cdp.New(cfg, o.global.Logger())
	if err != nil {
		return fmt.Errorf("constructing client: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := client.Launch(ctx); err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	fmt.Printf("listening on %s:%d\n", cfg.Host, client.Config.Port)

	<-ctx.Done()

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.CommandTimeout)
	defer cancel()
	return client.Close(closeCtx)
}
