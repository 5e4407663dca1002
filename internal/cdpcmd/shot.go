package cdpcmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tgraves/cdpctl/pkg/cdp"
	"github.com/tgraves/cdpctl/pkg/cdp/page"
)

// ShotOptions holds the parsed state for the `shot` subcommand.
type ShotOptions struct {
	global *GlobalOptions
	Path   string
	URL    string
}

func newShotCommand(global *GlobalOptions) *cobra.Command {
	o := &ShotOptions{global: global}
	cmd := &cobra.Command{
		Use:   "shot PATH",
		Short: "Capture a screenshot of the first page target to PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Path = args[0]
			return o.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&o.URL, "url", "", "navigate to this URL before capturing")
	return cmd
}

// Run attaches to the browser named by o.global's host/debug-port flags,
// navigates to o.URL if set, captures a screenshot, and writes the
// decoded image bytes to o.Path.
func (o *ShotOptions) Run(ctx context.Context) error {
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

	if o.URL != "" {
		if _, err := page.NewNavigate(o.URL).Do(ctx, client); err != nil {
			return fmt.Errorf("navigating to %q: %w", o.URL, err)
		}
	}

	resp, err := page.NewCaptureScreenshot().Do(ctx, client)
	if err != nil {
		return fmt.Errorf("capturing screenshot: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data)
	if err != nil {
		return fmt.Errorf("decoding screenshot data: %w", err)
	}
	if err := os.WriteFile(o.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", o.Path, err)
	}

	fmt.Printf("wrote %d bytes to %s\n", len(data), o.Path)
	return nil
}
