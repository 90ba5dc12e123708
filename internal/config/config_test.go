package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disp-alpha-tools/internal/vmf"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"output": "out.vmf", "workers": 3, "seed": 99, "preview_scale": 2}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Output: "out.vmf", Workers: 3, Seed: 99, PreviewScale: 2}, cfg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"workers": "many"}`)
	_, err = Load(bad)
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveFlagsOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Output: "file.vmf", Workers: 2, Seed: 5, TemplateDir: "from-file"}
	cfg.Resolve(Flags{Output: "flag.vmf", Workers: 6, TemplateDir: dir})

	assert.Equal(t, "flag.vmf", cfg.Output)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, uint64(5), cfg.Seed)
	assert.Equal(t, dir, cfg.TemplateDir)
}

func TestResolveDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	var cfg Config
	cfg.Resolve(Flags{})
	assert.Equal(t, 8, cfg.PreviewScale)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.NotZero(t, cfg.Seed)
	assert.Empty(t, cfg.TemplateDir)

	tmpl, err := cfg.Templates()
	require.NoError(t, err)
	assert.Equal(t, vmf.DefaultTemplates(), tmpl)
}

func TestResolveDetectsTemplatesInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, vmf.HeaderFile), "H")
	writeFile(t, filepath.Join(sub, vmf.SolidFile), "S")
	writeFile(t, filepath.Join(sub, vmf.FooterFile), "F")
	t.Chdir(dir)

	var cfg Config
	cfg.Resolve(Flags{})
	require.NotEmpty(t, cfg.TemplateDir)
	assert.Equal(t, "templates", filepath.Base(cfg.TemplateDir))

	tmpl, err := cfg.Templates()
	require.NoError(t, err)
	assert.Equal(t, vmf.Templates{Header: "H", Solid: "S", Footer: "F"}, tmpl)
}
