package registry

import (
	"fmt"
	"os"
	"sort"

	"github.com/tgraves/cdpctl/internal/cdpconfig"
)

// defaultBrowserFlags is largely based on the results of other related
// projects:
//
// • https://source.chromium.org/chromium/chromium/src/+/master:chrome/test/chromedriver/chrome_launcher.cc?q=k.*Switches
//
// • https://github.com/puppeteer/puppeteer/blob/main/src/node/Launcher.ts
//
// • https://github.com/chromedp/chromedp/blob/master/allocate.go
//
// • https://github.com/GoogleChrome/chrome-launcher/blob/master/src/flags.ts
var defaultBrowserFlags = map[string]any{
	"disable-background-networking":                     true,
	"disable-background-timer-throttling":               true,
	"disable-backgrounding-occluded-windows":            true,
	"disable-breakpad":                                  true,
	"disable-client-side-phishing-detection":            true,
	"disable-component-extensions-with-background-pages": true,
	"disable-default-apps":                              true,
	"disable-extensions":                                true,
	"disable-features":                                  "Translate",
	"disable-hang-monitor":                               true,
	"disable-ipc-flooding-protection":                   true,
	"disable-popup-blocking":                             true,
	"disable-prompt-on-repost":                           true,
	"disable-renderer-backgrounding":                     true,
	"disable-sync":                                       true,
	"enable-automation":                                  true,
	"force-color-profile":                                "srgb",
	"metrics-recording-only":                             true,
	"mute-audio":                                         true,
	"no-default-browser-check":                           true,
	"no-first-run":                                       true,
	"password-store":                                     "basic",
	"use-mock-keychain":                                  true,
}

// buildArgs translates a Config into the browser's command-line argument
// slice, folding in the Process Registry's own flags on top of the
// defaults above. Deterministic key ordering (sorted) keeps argv stable
// across launches, which matters for the Process Registry's health and
// relaunch logging.
func buildArgs(cfg cdpconfig.Config, debugPort int, userDataDir string) []string {
	flags := make(map[string]any, len(defaultBrowserFlags)+12)
	for k, v := range defaultBrowserFlags {
		flags[k] = v
	}

	if os.Getuid() == 0 || cfg.NoSandbox {
		flags["no-sandbox"] = true
	}
	if cfg.Headless {
		flags["headless"] = "new"
	}
	if cfg.DisableGPU {
		flags["disable-gpu"] = true
	}
	if cfg.DisableDevShm {
		flags["disable-dev-shm-usage"] = true
	}
	if cfg.Incognito {
		flags["incognito"] = true
	}
	if cfg.ProxyServer != "" {
		flags["proxy-server"] = cfg.ProxyServer
	}
	if cfg.UserAgent != "" {
		flags["user-agent"] = cfg.UserAgent
	}
	if cfg.WindowWidth > 0 && cfg.WindowHeight > 0 {
		flags["window-size"] = fmt.Sprintf("%d,%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	flags["remote-debugging-port"] = debugPort
	flags["user-data-dir"] = userDataDir

	var keys []string
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		flag := "--" + k
		switch v := flags[k].(type) {
		case bool:
			if v {
				args = append(args, flag)
			}
		default:
			args = append(args, fmt.Sprintf("%s=%v", flag, v))
		}
	}
	args = append(args, "about:blank")
	return args
}
