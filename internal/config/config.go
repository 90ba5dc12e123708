package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"disp-alpha-tools/internal/vmf"
)

// Config holds output paths and conversion settings.
type Config struct {
	// Paths
	TemplateDir string `json:"template_dir"`
	Output      string `json:"output"`
	Preview     string `json:"preview"`
	Manifest    string `json:"manifest"`

	// Conversion settings
	PreviewScale int    `json:"preview_scale"`
	Workers      int    `json:"workers"`
	Seed         uint64 `json:"seed"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TemplateDir  string
	Output       string
	Preview      string
	Manifest     string
	PreviewScale int
	Workers      int
	Seed         uint64
}

// Resolve applies flags over the file values and fills in defaults.
// An empty TemplateDir after Resolve means the built-in templates are used.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.TemplateDir != "" {
		c.TemplateDir = flags.TemplateDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.PreviewScale > 0 {
		c.PreviewScale = flags.PreviewScale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.TemplateDir == "" {
		c.TemplateDir = detectTemplateDir()
	}

	if c.PreviewScale <= 0 {
		c.PreviewScale = 8
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
}

// Templates loads the configured boilerplate, or the built-in set when no
// template directory is configured.
func (c *Config) Templates() (vmf.Templates, error) {
	if c.TemplateDir == "" {
		return vmf.DefaultTemplates(), nil
	}
	return vmf.LoadTemplates(c.TemplateDir)
}

func hasTemplates(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, vmf.HeaderFile))
	return err == nil
}

func detectTemplateDir() string {
	// Try next to the executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Join(dir, "templates")} {
			if hasTemplates(base) {
				return base
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	for _, base := range []string{cwd, filepath.Join(cwd, "templates")} {
		if hasTemplates(base) {
			return base
		}
	}

	return ""
}
