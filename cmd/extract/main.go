package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"disp-alpha-tools/internal/extract"
	"disp-alpha-tools/internal/logging"
	"disp-alpha-tools/internal/preview"
	"disp-alpha-tools/internal/session"
)

func main() {
	jsonPath := flag.String("json", "", "Write the extracted records as JSON")
	imagePath := flag.String("image", "", "Rebuild the painted image (.png or .webp)")
	scale := flag.Int("scale", 1, "Image enlargement factor")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] map.vmf\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(session.Options{})
	sess.LoadDocument(string(data))
	records, err := sess.Extract()
	if errors.Is(err, extract.ErrMalformedDocument) {
		fmt.Printf("%s: no displacements found\n", path)
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Displacements: %d\n", len(records))
	for i, r := range records {
		fmt.Printf("  [%d] x=%d y=%d rows=%d\n", i, r.X, r.Y, len(r.Rows))
		for j, row := range r.Rows {
			fmt.Printf("    row%d: %s\n", j, strings.TrimSpace(row))
		}
	}

	if *jsonPath != "" {
		out, err := json.MarshalIndent(records, "", "  ")
		if err == nil {
			err = os.WriteFile(*jsonPath, out, 0644)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: json write failed: %v\n", err)
		} else {
			fmt.Printf("JSON: %s\n", *jsonPath)
		}
	}

	if *imagePath != "" {
		img, err := preview.FromRecords(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rebuilding image: %v\n", err)
			os.Exit(1)
		}
		if err := preview.Save(*imagePath, preview.Upscale(img, *scale)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Image: %s (%dx%d)\n", *imagePath, img.Bounds().Dx(), img.Bounds().Dy())
	}
}
