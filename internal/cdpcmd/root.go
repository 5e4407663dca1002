// Package cdpcmd implements the cdpctl CLI: a thin host that maps flags
// onto an internal/cdpconfig.Config and drives a single pkg/cdp.Client
// operation per invocation.
package cdpcmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tgraves/cdpctl/internal/cdpconfig"
	"github.com/tgraves/cdpctl/internal/cdplog"
)

// GlobalOptions holds the flags shared by every subcommand: how to reach
// the browser (or how to launch one), and the ambient logging/timeout
// policy.
type GlobalOptions struct {
	Host           string
	DebugPort      int
	ServerHost     string
	ServerPort     int
	UserDataDir    string
	ChromeBinary   string
	Verbose        bool
	InitScript     string
	InitFile       string
	EnableDOM      bool
	EnableNetwork  bool
	EnableConsole  bool
	MaxChildren    int
	ConnectTimeout time.Duration
	CommandTimeout time.Duration
	MaxRetries     int
}

// NewRootCommand builds the `cdpctl` command and its subcommands.
func NewRootCommand() *cobra.Command {
	o := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "cdpctl",
		Short:         "Drive a headless Chrome instance over the DevTools protocol",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.Host, "host", "localhost", "browser debug host to attach to")
	flags.IntVar(&o.DebugPort, "debug-port", 0, "browser debug port eval/shot attach to")
	flags.StringVar(&o.ServerHost, "server-host", "localhost", "host a launched browser's debug server binds to")
	flags.IntVar(&o.ServerPort, "server-port", 0, "port a launched browser's debug server binds to (0: auto)")
	flags.StringVar(&o.UserDataDir, "user-data-dir", "", "browser profile directory (default: auto-provisioned temp dir)")
	flags.StringVar(&o.ChromeBinary, "chrome-binary", "", "path to the Chrome/Chromium executable (default: auto-discovered)")
	flags.BoolVar(&o.Verbose, "verbose", false, "log at debug level to stderr (default: no log output)")
	flags.StringVar(&o.InitScript, "init-script", "", "JavaScript source evaluated on every new document")
	flags.StringVar(&o.InitFile, "init-file", "", "path to a file holding --init-script source")
	flags.BoolVar(&o.EnableDOM, "dom", false, "enable the DOM domain on connect")
	flags.BoolVar(&o.EnableNetwork, "network", false, "enable the Network domain on connect")
	flags.BoolVar(&o.EnableConsole, "console", false, "enable the Console domain on connect")
	flags.IntVar(&o.MaxChildren, "max-children", 32, "maximum concurrent browser instances")
	flags.DurationVar(&o.ConnectTimeout, "connect-timeout", 5*time.Second, "WebSocket connect timeout")
	flags.DurationVar(&o.CommandTimeout, "command-timeout", 30*time.Second, "default per-command timeout")
	flags.IntVar(&o.MaxRetries, "max-retries", 5, "transport reconnect attempt budget")

	cmd.AddCommand(newLaunchCommand(o))
	cmd.AddCommand(newEvalCommand(o))
	cmd.AddCommand(newShotCommand(o))

	return cmd
}

// Config resolves o (plus any --init-file contents) into a validated
// cdpconfig.Config, defaulting every field cdpcmd doesn't expose.
func (o *GlobalOptions) Config() (cdpconfig.Config, error) {
	cfg := cdpconfig.Defaults()
	cfg.Host = o.Host
	cfg.Port = o.DebugPort
	cfg.UserDataDir = o.UserDataDir
	cfg.BinaryPath = o.ChromeBinary
	cfg.Verbose = o.Verbose
	cfg.EnableDOM = o.EnableDOM
	cfg.EnableNetwork = o.EnableNetwork
	cfg.EnableConsole = o.EnableConsole
	if o.MaxChildren > 0 {
		cfg.MaxInstances = o.MaxChildren
	}
	if o.ConnectTimeout > 0 {
		cfg.ConnectTimeout = o.ConnectTimeout
	}
	if o.CommandTimeout > 0 {
		cfg.CommandTimeout = o.CommandTimeout
	}
	if o.MaxRetries > 0 {
		cfg.MaxRetries = o.MaxRetries
	}

	script, err := o.initScript()
	if err != nil {
		return cdpconfig.Config{}, err
	}
	cfg.InitScript = script

	return cfg, cfg.Validate()
}

// ServerConfig is like Config but binds Host/Port to --server-host and
// --server-port, the address a newly launched instance's debug server
// listens on, as opposed to --host/--debug-port which name an
// already-running browser eval/shot attach to.
func (o *GlobalOptions) ServerConfig() (cdpconfig.Config, error) {
	cfg, err := o.Config()
	if err != nil {
		return cdpconfig.Config{}, err
	}
	cfg.Host = o.ServerHost
	cfg.Port = o.ServerPort
	return cfg, cfg.Validate()
}

func (o *GlobalOptions) initScript() (string, error) {
	if o.InitFile == "" {
		return o.InitScript, nil
	}
	b, err := os.ReadFile(o.InitFile)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Logger builds the ambient cdplog.Logger for o: discard unless
// --verbose raises it to a slog text logger on stderr.
func (o *GlobalOptions) Logger() cdplog.Logger {
	if !o.Verbose {
		return cdplog.Discard()
	}
	return cdplog.New(os.Stderr, slog.LevelDebug)
}
