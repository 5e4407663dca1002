package registry

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// candidateExecutables lists well-known Chrome/Chromium binary locations
// and PATH entries to probe, in order, when a Config doesn't pin an
// explicit BinaryPath. Compare with:
// https://github.com/karma-runner/karma-chrome-launcher/blob/master/index.js
// https://github.com/GoogleChrome/chrome-launcher/blob/master/src/chrome-finder.ts
func candidateExecutables() []string {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		return []string{
			filepath.Join(localAppData, `Google\Chrome\Application\chrome.exe`),
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
			filepath.Join(localAppData, `Chromium\Application\chrome.exe`),
			"chrome.exe",
		}
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"google-chrome",
			"chromium",
		}
	default:
		return []string{
			"google-chrome-stable",
			"google-chrome",
			"chromium-browser",
			"chromium",
		}
	}
}

// FindChromeExecutable locates a Chrome or Chromium binary on the host,
// trying each of candidateExecutables in order (absolute paths are checked
// on disk, bare names are looked up on PATH) and returning the first one
// that resolves.
func FindChromeExecutable() (string, error) {
	for _, candidate := range candidateExecutables() {
		if filepath.IsAbs(candidate) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
			continue
		}
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}
