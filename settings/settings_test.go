package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()
	svc, err := New(dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), svc.DataDir())
	assert.Equal(t, "info", svc.LogLevel())
	assert.Equal(t, "json", svc.LogFormat())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "data_dir = \"/srv/flows\"\nlog_level = \"debug\"\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	svc, err := New(dir)
	assert.NoError(t, err)
	assert.Equal(t, "/srv/flows", svc.DataDir())
	assert.Equal(t, "debug", svc.LogLevel())
	// Omitted fields keep defaults
	assert.Equal(t, "json", svc.LogFormat())
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, "/mnt/elsewhere")

	svc, err := New(dir)
	assert.NoError(t, err)
	assert.Equal(t, "/mnt/elsewhere", svc.DataDir())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc, err := New(dir)
	assert.NoError(t, err)

	svc.SetDataDir("/tmp/other")
	assert.NoError(t, svc.Save())

	reloaded, err := New(dir)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/other", reloaded.DataDir())
}

func TestStaticProvider(t *testing.T) {
	p := Static{Dir: "/data"}
	assert.Equal(t, "/data", p.DataDir())
}
