package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"testing"
	"time"

	"github.com/tgraves/cdpctl/internal/cdpconfig"
)

func TestBuildArgsIncludesDebugPortAndProfileDir(t *testing.T) {
	cfg := cdpconfig.Defaults()
	cfg.Headless = true
	args := buildArgs(cfg, 9123, "/tmp/profile-a")

	want := map[string]bool{
		"--remote-debugging-port=9123":  false,
		"--user-data-dir=/tmp/profile-a": false,
		"--headless=new":                false,
	}
	for _, a := range args {
		if _, ok := want[a]; ok {
			want[a] = true
		}
	}
	for flag, found := range want {
		if !found {
			t.Errorf("buildArgs() missing expected flag %q in %v", flag, args)
		}
	}
	if args[len(args)-1] != "about:blank" {
		t.Errorf("buildArgs() last element = %q, want about:blank", args[len(args)-1])
	}
}

func TestBuildArgsDeterministicOrder(t *testing.T) {
	cfg := cdpconfig.Defaults()
	a1 := buildArgs(cfg, 1000, "/tmp/x")
	a2 := buildArgs(cfg, 1000, "/tmp/x")
	if len(a1) != len(a2) {
		t.Fatalf("buildArgs() length mismatch: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("buildArgs() not deterministic at index %d: %q vs %q", i, a1[i], a2[i])
		}
	}
}

func TestPickPortLockedRejectsDuplicatePreferred(t *testing.T) {
	r := New(4, nil)
	r.instances[1] = &Instance{InstanceID: 1, DebugPort: 9222}

	if _, err := r.pickPortLocked(9222); err == nil {
		t.Error("pickPortLocked(9222) = nil error, want port-conflict error")
	}
	got, err := r.pickPortLocked(9333)
	if err != nil || got != 9333 {
		t.Errorf("pickPortLocked(9333) = (%d, %v), want (9333, nil)", got, err)
	}
}

func TestPickPortLockedScansForFreePort(t *testing.T) {
	r := New(4, nil)
	r.instances[1] = &Instance{InstanceID: 1, DebugPort: minEphemeralPort}
	r.instances[2] = &Instance{InstanceID: 2, DebugPort: minEphemeralPort + 1}

	got, err := r.pickPortLocked(0)
	if err != nil {
		t.Fatalf("pickPortLocked(0); unexpected error: %v", err)
	}
	if got != minEphemeralPort+2 {
		t.Errorf("pickPortLocked(0) = %d, want %d", got, minEphemeralPort+2)
	}
}

func TestLaunchRejectsOverCapacity(t *testing.T) {
	r := New(1, nil)
	r.instances[1] = &Instance{InstanceID: 1, DebugPort: 9222}

	_, err := r.Launch(context.Background(), cdpconfig.Defaults())
	if err == nil {
		t.Error("Launch() over capacity = nil error, want instance-limit error")
	}
}

func TestFindByPIDAndPort(t *testing.T) {
	r := New(4, nil)
	inst := &Instance{InstanceID: 1, PID: 4242, DebugPort: 9222}
	r.instances[1] = inst

	if got, ok := r.FindByPID(4242); !ok || got != inst {
		t.Errorf("FindByPID(4242) = (%v, %v), want (%v, true)", got, ok, inst)
	}
	if got, ok := r.FindByPort(9222); !ok || got != inst {
		t.Errorf("FindByPort(9222) = (%v, %v), want (%v, true)", got, ok, inst)
	}
	if _, ok := r.FindByPID(1); ok {
		t.Error("FindByPID(1) = true, want false")
	}
}

func TestWaitForReadyPolls(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Browser":"Chrome/1"}`))
	}))
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatal(err)
	}

	r := New(4, nil)
	inst := &Instance{InstanceID: 1, DebugPort: port}
	if err := r.waitForReady(context.Background(), inst, time.Second); err != nil {
		t.Errorf("waitForReady(); unexpected error: %v", err)
	}
}

func TestWaitForReadyTimesOut(t *testing.T) {
	r := New(4, nil)
	inst := &Instance{InstanceID: 1, DebugPort: 1} // nothing listens on port 1
	err := r.waitForReady(context.Background(), inst, 100*time.Millisecond)
	if err == nil {
		t.Error("waitForReady() against closed port = nil error, want timeout error")
	}
}

// TestKillTerminatesRealProcess launches a genuine long-lived OS process
// (not a browser) via the re-exec helper-process pattern used throughout
// the standard library's os/exec tests, to exercise the graceful-then-
// forced kill path without depending on Chrome being installed.
func TestKillTerminatesRealProcess(t *testing.T) {
	if os.Getenv("CDPCTL_WANT_HELPER_PROCESS") == "1" {
		time.Sleep(10 * time.Second)
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=TestKillTerminatesRealProcess")
	cmd.Env = append(os.Environ(), "CDPCTL_WANT_HELPER_PROCESS=1")
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start helper process: %v", err)
	}

	r := New(4, nil)
	inst := &Instance{InstanceID: 1, PID: cmd.Process.Pid, DebugPort: 9222, status: StatusRunning}
	r.instances[1] = inst

	go cmd.Wait() // reap to avoid a zombie once killed

	if err := r.Kill(context.Background(), 1, 200*time.Millisecond); err != nil {
		t.Errorf("Kill(); unexpected error: %v", err)
	}
	if processAlive(cmd.Process.Pid) {
		t.Error("process still alive after Kill()")
	}
	if _, ok := r.FindByPID(cmd.Process.Pid); ok {
		t.Error("instance still tracked after Kill()")
	}
}
