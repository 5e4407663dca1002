package cdpcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigAppliesAttachAddress(t *testing.T) {
	o := &GlobalOptions{Host: "example.internal", DebugPort: 9333, MaxChildren: 4}
	cfg, err := o.Config()
	require.NoError(t, err)
	assert.Equal(t, "example.internal", cfg.Host)
	assert.Equal(t, 9333, cfg.Port)
	assert.Equal(t, 4, cfg.MaxInstances)
}

func TestServerConfigUsesServerAddressInsteadOfAttachAddress(t *testing.T) {
	o := &GlobalOptions{
		Host:       "attach-host",
		DebugPort:  9222,
		ServerHost: "0.0.0.0",
		ServerPort: 9444,
	}
	cfg, err := o.ServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9444, cfg.Port)
}

func TestConfigReadsInitScriptFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "init.js")
	require.NoError(t, os.WriteFile(path, []byte("window.__marker = true;"), 0o644))

	o := &GlobalOptions{InitFile: path}
	cfg, err := o.Config()
	require.NoError(t, err)
	assert.Equal(t, "window.__marker = true;", cfg.InitScript)
}

func TestConfigPrefersInlineInitScriptWhenNoFileGiven(t *testing.T) {
	o := &GlobalOptions{InitScript: "1 + 1"}
	cfg, err := o.Config()
	require.NoError(t, err)
	assert.Equal(t, "1 + 1", cfg.InitScript)
}

func TestLoggerDiscardsByDefault(t *testing.T) {
	o := &GlobalOptions{}
	logger := o.Logger()
	require.NotNil(t, logger)
	logger.Info("should not panic")
}
