// Package registry launches, tracks, health-checks, and tears down local
// Chrome/Chromium processes on behalf of the CDP client.
package registry

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tgraves/cdpctl/internal/cdpconfig"
	"github.com/tgraves/cdpctl/internal/cdperr"
	"github.com/tgraves/cdpctl/internal/cdplog"
)

// DefaultMaxInstances bounds how many browser processes a single Registry
// will track concurrently.
const DefaultMaxInstances = 32

const minEphemeralPort = 9000

// Registry owns every Browser Instance launched by this process. Lock
// ordering: the registry mutex is always acquired before any individual
// Instance's mutex, never the other way around.
type Registry struct {
	mu        sync.Mutex
	instances map[int64]*Instance
	nextID    int64
	maxCount  int
	log       cdplog.Logger
}

// New constructs an empty Registry. maxCount <= 0 falls back to
// DefaultMaxInstances.
func New(maxCount int, log cdplog.Logger) *Registry {
	if maxCount <= 0 {
		maxCount = DefaultMaxInstances
	}
	if log == nil {
		log = cdplog.Discard()
	}
	return &Registry{
		instances: make(map[int64]*Instance),
		maxCount:  maxCount,
		log:       log,
	}
}

// Launch starts a new Chrome/Chromium process per cfg and registers it.
// It enforces the instance-count ceiling, resolves a binary path via
// FindChromeExecutable when cfg.BinaryPath is empty, picks a free debug
// port distinct from every other tracked instance, and provisions a
// profile directory (creating and owning a temp one when cfg.UserDataDir
// is unset).
func (r *Registry) Launch(ctx context.Context, cfg cdpconfig.Config) (*Instance, error) {
	r.mu.Lock()
	if len(r.instances) >= r.maxCount {
		r.mu.Unlock()
		return nil, cdperr.New(cdperr.InstanceLimitReached,
			fmt.Errorf("registry already tracks %d instances (limit %d)", len(r.instances), r.maxCount))
	}
	port, err := r.pickPortLocked(cfg.Port)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	id := r.nextID + 1
	r.nextID = id
	r.mu.Unlock()

	binPath := cfg.BinaryPath
	if binPath == "" {
		binPath, err = FindChromeExecutable()
		if err != nil {
			return nil, cdperr.New(cdperr.LaunchFailed, fmt.Errorf("no chrome/chromium executable found: %w", err))
		}
	}

	profileDir := cfg.UserDataDir
	ownedTempDir := false
	if profileDir == "" {
		profileDir = filepath.Join(os.TempDir(), "cdpctl-"+uuid.NewString())
		ownedTempDir = true
	}
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return nil, cdperr.New(cdperr.LaunchFailed, fmt.Errorf("failed to create profile dir: %w", err))
	}

	args := buildArgs(cfg, port, profileDir)
	cmd := exec.CommandContext(context.Background(), binPath, args...)

	if err := cmd.Start(); err != nil {
		if ownedTempDir {
			os.RemoveAll(profileDir)
		}
		return nil, cdperr.New(cdperr.LaunchFailed, fmt.Errorf("failed to start browser process: %w", err))
	}

	inst := &Instance{
		InstanceID:   id,
		PID:          cmd.Process.Pid,
		DebugPort:    port,
		ProfilePath:  profileDir,
		OwnedTempDir: ownedTempDir,
		Config:       cfg,
		status:       StatusStarting,
		StartedAt:    time.Now(),
		AutoRestart:  cfg.AutoRestart,
	}

	r.mu.Lock()
	r.instances[id] = inst
	r.mu.Unlock()

	r.log.Info("launched browser instance", "instance_id", id, "pid", inst.PID, "port", port)

	go r.reap(cmd, inst)

	if err := r.waitForReady(ctx, inst, cfg.ConnectTimeout); err != nil {
		return inst, err
	}
	inst.setStatus(StatusRunning)
	return inst, nil
}

// reap waits for the underlying process to exit and updates the
// instance's bookkeeping accordingly; it never force-removes a profile
// directory the caller supplied.
func (r *Registry) reap(cmd *exec.Cmd, inst *Instance) {
	err := cmd.Wait()
	inst.StoppedAt = time.Now()
	if inst.Status() == StatusStopping {
		inst.setStatus(StatusStopped)
	} else {
		inst.setStatus(StatusCrashed)
		inst.recordError(err)
		r.log.Warn("browser instance exited unexpectedly", "instance_id", inst.InstanceID, "error", err)
	}
}

// waitForReady polls the instance's /json/version endpoint until it
// responds or timeout elapses.
func (r *Registry) waitForReady(ctx context.Context, inst *Instance, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/json/version", inst.DebugPort)
	client := &http.Client{Timeout: 500 * time.Millisecond}

	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err == nil {
			if resp, err := client.Do(req); err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return nil
				}
			}
		}
		select {
		case <-ctx.Done():
			return cdperr.New(cdperr.LaunchFailed, ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
	}
	return cdperr.New(cdperr.LaunchFailed, fmt.Errorf("instance %d did not become ready within %s", inst.InstanceID, timeout))
}

// pickPortLocked returns preferred if it is nonzero and unused by any
// tracked instance, otherwise scans upward from minEphemeralPort for the
// first unused port. Callers must hold r.mu.
func (r *Registry) pickPortLocked(preferred int) (int, error) {
	used := make(map[int]bool, len(r.instances))
	for _, inst := range r.instances {
		used[inst.DebugPort] = true
	}
	if preferred != 0 {
		if used[preferred] {
			return 0, cdperr.New(cdperr.PortConflict, fmt.Errorf("port %d already in use by a tracked instance", preferred))
		}
		return preferred, nil
	}
	for p := minEphemeralPort; p < minEphemeralPort+4096; p++ {
		if !used[p] {
			return p, nil
		}
	}
	return 0, cdperr.New(cdperr.PortConflict, fmt.Errorf("no free debug port found"))
}

// List returns a snapshot slice of every currently tracked instance.
func (r *Registry) List() []*Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Instance, 0, len(r.instances))
	for _, inst := range r.instances {
		out = append(out, inst)
	}
	return out
}

// FindByPID returns the tracked instance with the given OS process id, if any.
func (r *Registry) FindByPID(pid int) (*Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range r.instances {
		if inst.PID == pid {
			return inst, true
		}
	}
	return nil, false
}

// FindByPort returns the tracked instance bound to the given debug port, if any.
func (r *Registry) FindByPort(port int) (*Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range r.instances {
		if inst.DebugPort == port {
			return inst, true
		}
	}
	return nil, false
}

// CheckHealth probes an instance's process liveness and HTTP endpoint,
// incrementing its failure counter on any problem and resetting it on
// success.
func (r *Registry) CheckHealth(ctx context.Context, inst *Instance) error {
	if !processAlive(inst.PID) {
		inst.incrementHealthFailures()
		return cdperr.New(cdperr.Connect, fmt.Errorf("instance %d: process %d is not alive", inst.InstanceID, inst.PID))
	}
	url := fmt.Sprintf("http://localhost:%d/json/version", inst.DebugPort)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		inst.incrementHealthFailures()
		return cdperr.New(cdperr.Connect, err)
	}
	client := &http.Client{Timeout: time.Second}
	resp, err := client.Do(req)
	if err != nil {
		inst.incrementHealthFailures()
		return cdperr.New(cdperr.Connect, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		inst.incrementHealthFailures()
		return cdperr.New(cdperr.Connect, fmt.Errorf("instance %d: unexpected status %s", inst.InstanceID, resp.Status))
	}
	inst.resetHealthFailures()
	return nil
}

// Kill stops a tracked instance: it sends a graceful termination signal,
// polls briefly for exit, then forces termination if the process
// survives. Temp directories the registry itself created are removed;
// caller-supplied UserDataDir paths are left untouched.
func (r *Registry) Kill(ctx context.Context, instanceID int64, gracePeriod time.Duration) error {
	r.mu.Lock()
	inst, ok := r.instances[instanceID]
	r.mu.Unlock()
	if !ok {
		return cdperr.New(cdperr.KillFailed, fmt.Errorf("no tracked instance %d", instanceID))
	}

	inst.setStatus(StatusStopping)
	if gracePeriod <= 0 {
		gracePeriod = 3 * time.Second
	}

	if err := terminateGracefully(inst.PID); err != nil && processAlive(inst.PID) {
		r.log.Warn("graceful termination failed", "instance_id", instanceID, "error", err)
	}

	deadline := time.Now().Add(gracePeriod)
	for time.Now().Before(deadline) {
		if !processAlive(inst.PID) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if processAlive(inst.PID) {
		if err := killForcefully(inst.PID); err != nil {
			return cdperr.New(cdperr.KillFailed, fmt.Errorf("instance %d: %w", instanceID, err))
		}
	}

	if inst.OwnedTempDir {
		if err := os.RemoveAll(inst.ProfilePath); err != nil {
			r.log.Warn("failed to clean up temp profile dir", "instance_id", instanceID, "path", inst.ProfilePath, "error", err)
			return cdperr.New(cdperr.CleanupFailed, err)
		}
	}

	r.mu.Lock()
	delete(r.instances, instanceID)
	r.mu.Unlock()
	return nil
}

// EmergencyCleanup forcibly kills and removes every tracked instance,
// best-effort: it continues past individual failures and returns the
// last error encountered, if any.
func (r *Registry) EmergencyCleanup(ctx context.Context) error {
	var lastErr error
	for _, inst := range r.List() {
		if err := r.Kill(ctx, inst.InstanceID, 0); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
