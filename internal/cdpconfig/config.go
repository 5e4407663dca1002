// Package cdpconfig holds the immutable Configuration and the process-wide
// Runtime Context that every other component of the CDP client runtime is
// constructed from.
package cdpconfig

import (
	"fmt"
	"os"
	"time"
)

// Config is the immutable configuration for a CDP client runtime. Once
// passed to New, its fields must not be mutated; construct a new Config to
// change policy.
type Config struct {
	// Host and debug port of the browser this runtime talks to. Port 0
	// tells the Process Registry to auto-assign a free port when it
	// launches a managed instance.
	Host string
	Port int

	// UserDataDir, if set, overrides the registry's auto-provisioned
	// temp directory. BinaryPath, if set, skips executable discovery.
	UserDataDir string
	BinaryPath  string

	// Verbose records the host's --verbose choice: cdpctl logs at Debug
	// level to stderr when it is set and discards log output otherwise.
	Verbose bool

	// InitScript is evaluated via Page.addScriptToEvaluateOnNewDocument
	// immediately after the page target attaches, if non-empty.
	InitScript string

	// Per-domain event subscription flags, consulted by the Client right
	// after it attaches to a page target: each set flag sends that
	// domain's enable command.
	EnableDOM     bool
	EnableNetwork bool
	EnableConsole bool

	// MaxConnections bounds the command bus's in-flight command table;
	// Submit rejects with cdperr.QueueFull past this.
	MaxConnections int

	// Timeouts.
	ConnectTimeout time.Duration
	CommandTimeout time.Duration

	// MaxRetries is the reconnect-attempt ceiling of the Client's
	// connection state, which a wsconn.Reconnector consults. The Process
	// Registry does not read it: it never restarts a crashed instance or
	// retries a failed launch.
	MaxRetries int

	// Browser launch policy, consumed by the Process Registry.
	Headless       bool
	NoSandbox      bool
	DisableGPU     bool
	DisableDevShm  bool
	Incognito      bool
	ProxyServer    string
	UserAgent      string
	MemoryLimitMB  int
	WindowWidth    int
	WindowHeight   int
	MaxInstances   int
	AutoRestart    bool
}

// Defaults returns a Config with sensible out-of-the-box values: base
// debug port auto-assigned, 5s/30s timeouts, 5 retries, a 1024x768
// window, and a 32-instance ceiling.
func Defaults() Config {
	return Config{
		Host:           "localhost",
		Port:           0,
		MaxConnections: 100,
		ConnectTimeout: 5 * time.Second,
		CommandTimeout: 30 * time.Second,
		MaxRetries:     5,
		WindowWidth:    1024,
		WindowHeight:   768,
		MemoryLimitMB:  512,
		MaxInstances:   32,
		AutoRestart:    false,
	}
}

// Validate checks the invariants a Config must satisfy before it can be
// used to launch a browser instance: port range, window dimensions,
// memory limit, timeout bounds, and that a user-supplied profile path (if
// any) is actually a directory.
func (c Config) Validate() error {
	if c.Port != 0 && c.Port < 1024 {
		return fmt.Errorf("port must be 0 (auto) or >= 1024, got %d", c.Port)
	}
	if c.WindowWidth < 100 || c.WindowWidth > 4096 {
		return fmt.Errorf("window width must be in 100..4096, got %d", c.WindowWidth)
	}
	if c.WindowHeight < 100 || c.WindowHeight > 4096 {
		return fmt.Errorf("window height must be in 100..4096, got %d", c.WindowHeight)
	}
	if c.MemoryLimitMB < 64 || c.MemoryLimitMB > 8192 {
		return fmt.Errorf("memory limit must be in 64..8192 MB, got %d", c.MemoryLimitMB)
	}
	if c.ConnectTimeout < 5*time.Second || c.ConnectTimeout > 300*time.Second {
		return fmt.Errorf("connect timeout must be in 5..300s, got %s", c.ConnectTimeout)
	}
	if c.UserDataDir != "" {
		info, err := os.Stat(c.UserDataDir)
		if err != nil {
			return fmt.Errorf("user data dir %q: %w", c.UserDataDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("user data dir %q is not a directory", c.UserDataDir)
		}
	}
	if c.MaxInstances < 1 || c.MaxInstances > 32 {
		return fmt.Errorf("max instances must be in 1..32, got %d", c.MaxInstances)
	}
	return nil
}
