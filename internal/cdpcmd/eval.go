package cdpcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tgraves/cdpctl/pkg/cdp"
)

// EvalOptions holds the parsed state for the `eval` subcommand.
type EvalOptions struct {
	global *GlobalOptions
	Expr   string
}

func newEvalCommand(global *GlobalOptions) *cobra.Command {
	o := &EvalOptions{global: global}
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a JavaScript expression against the first page target and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Expr = args[0]
			return o.Run(cmd.Context())
		},
	}
}

// Run attaches to the browser named by o.global's host/debug-port flags,
// evaluates o.Expr, prints the result's value, then disconnects.
func (o *EvalOptions) Run(ctx context.Context) error {
	cfg, err := o.global.Config()
	if err != nil {
		return fmt.Errorf("resolving config: %w", err)
	}

	client, err := cdp.New(cfg, o.global.Logger())
	if err != nil {
		return fmt.Errorf("constructing client: %w", err)
	}
	if err := client.Attach(ctx); err != nil {
		return fmt.Errorf("attaching to browser: %w", err)
	}
	defer client.Close(context.Background())

	value, err := client.GetValue(ctx, o.Expr)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", o.Expr, err)
	}

	fmt.Println(value)
	return nil
}
