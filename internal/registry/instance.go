package registry

import (
	"sync"
	"time"

	"github.com/tgraves/cdpctl/internal/cdpconfig"
)

// Status is a browser instance's lifecycle state.
type Status string

const (
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusStopping Status = "stopping"
	StatusStopped  Status = "stopped"
	StatusCrashed  Status = "crashed"
)

// Instance is one launched, tracked Chrome/Chromium process.
type Instance struct {
	mu sync.Mutex

	InstanceID   int64
	PID          int
	DebugPort    int
	ProfilePath  string
	OwnedTempDir bool // true if the registry created ProfilePath and must clean it up
	Config       cdpconfig.Config

	status Status

	StartedAt time.Time
	StoppedAt time.Time

	HealthFailureCount int
	RestartCount       int
	AutoRestart        bool
	LastError          error
}

// Status returns the instance's current lifecycle state.
func (i *Instance) Status() Status {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.status
}

func (i *Instance) setStatus(s Status) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.status = s
}

func (i *Instance) recordError(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.LastError = err
}

func (i *Instance) incrementHealthFailures() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.HealthFailureCount++
	return i.HealthFailureCount
}

func (i *Instance) resetHealthFailures() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.HealthFailureCount = 0
}
