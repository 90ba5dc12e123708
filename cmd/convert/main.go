package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"disp-alpha-tools/internal/batch"
	"disp-alpha-tools/internal/config"
	"disp-alpha-tools/internal/logging"
	"disp-alpha-tools/internal/preview"
	"disp-alpha-tools/internal/sample"
	"disp-alpha-tools/internal/session"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output .vmf path (default: image name with .vmf)")
	templateDir := flag.String("templates", "", "Directory holding boilerplate_*.txt (default: auto-detect, else built-in)")
	previewPath := flag.String("preview", "", "Write a grayscale preview (.png or .webp)")
	previewScale := flag.Int("scale", 0, "Preview enlargement factor (default: 8)")
	manifestPath := flag.String("manifest", "", "Write per-solid weight statistics as JSON")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Uint64("seed", 0, "Seed for solid tint colors (default: time based)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] image\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		TemplateDir:  *templateDir,
		Output:       *output,
		Preview:      *previewPath,
		Manifest:     *manifestPath,
		PreviewScale: *previewScale,
		Workers:      *workers,
		Seed:         *seed,
	})
	if cfg.Output == "" {
		cfg.Output = strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".vmf"
	}

	templates, err := cfg.Templates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading templates: %v\n", err)
		os.Exit(1)
	}

	img, err := sample.Load(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(session.Options{
		Templates: templates,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
	})
	dims, err := sess.LoadImage(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Image: %s (%dx%d)\n", imagePath, img.Width(), img.Height())
	fmt.Printf("xRequired: %d\n", dims.X)
	fmt.Printf("yRequired: %d\n", dims.Y)

	start := time.Now()
	conv, err := sess.Convert()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(cfg.Output, []byte(conv.Document), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing map: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Solids: %d, written to %s in %s\n", dims.Count(), cfg.Output, time.Since(start).Round(time.Millisecond))

	if cfg.Preview != "" {
		gray := preview.Gray(img, dims)
		if err := preview.Save(cfg.Preview, preview.Upscale(gray, cfg.PreviewScale)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview: %v\n", err)
		} else {
			fmt.Printf("Preview: %s\n", cfg.Preview)
		}
	}

	if cfg.Manifest != "" {
		m := conv.Manifest(img.Width(), img.Height())
		if err := batch.WriteManifest(cfg.Manifest, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", cfg.Manifest)
		}
	}
}
