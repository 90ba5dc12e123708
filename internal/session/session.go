// Package session holds the currently loaded source and runs conversions
// against it.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"disp-alpha-tools/internal/batch"
	"disp-alpha-tools/internal/brush"
	"disp-alpha-tools/internal/extract"
	"disp-alpha-tools/internal/grid"
	"disp-alpha-tools/internal/logging"
	"disp-alpha-tools/internal/sample"
	"disp-alpha-tools/internal/vmf"
)

// ErrNoSourceLoaded is returned when an operation needs a source of a kind
// that has not been loaded.
var ErrNoSourceLoaded = errors.New("no source loaded")

// Source is either an ImageSource or a DocumentSource.
type Source interface {
	kind() string
}

// ImageSource is a decoded image waiting to be converted.
type ImageSource struct {
	Sample sample.Sample
	Dims   grid.Dimensions
}

// DocumentSource is the text of a loaded map document.
type DocumentSource struct {
	Text string
}

func (ImageSource) kind() string    { return "image" }
func (DocumentSource) kind() string { return "document" }

// Options configure a Session.
type Options struct {
	Templates vmf.Templates
	Workers   int
	Seed      uint64
}

// Session is the caller-owned state of the tool: the loaded source plus the
// settings conversions run with. It is not safe for concurrent use.
type Session struct {
	src       Source
	templates vmf.Templates
	workers   int
	rng       *rand.Rand
}

// New creates a session with nothing loaded.
func New(opt Options) *Session {
	return &Session{
		templates: opt.Templates,
		workers:   opt.Workers,
		rng:       rand.New(rand.NewPCG(opt.Seed, opt.Seed^0x9e3779b97f4a7c15)),
	}
}

// Source returns the loaded source, or nil.
func (s *Session) Source() Source {
	return s.src
}

// LoadImage makes img the current source.
func (s *Session) LoadImage(img sample.Sample) (grid.Dimensions, error) {
	dims, err := grid.Compute(img.Width(), img.Height())
	if err != nil {
		return grid.Dimensions{}, err
	}
	s.src = ImageSource{Sample: img, Dims: dims}
	logging.Logger().Debug("session: image loaded",
		"width", img.Width(), "height", img.Height(),
		"x_required", dims.X, "y_required", dims.Y)
	return dims, nil
}

// LoadDocument makes the document text the current source.
func (s *Session) LoadDocument(text string) {
	s.src = DocumentSource{Text: text}
	logging.Logger().Debug("session: document loaded", "bytes", len(text))
}

// Conversion is the output of converting an image.
type Conversion struct {
	Dims     grid.Dimensions
	Results  []batch.Result
	Document string
}

// Manifest summarizes the conversion.
func (c *Conversion) Manifest(width, height int) batch.Manifest {
	return batch.BuildManifest(width, height, c.Dims, c.Results)
}

// Convert turns the loaded image into a map document.
func (s *Session) Convert() (*Conversion, error) {
	img, ok := s.src.(ImageSource)
	if !ok {
		return nil, fmt.Errorf("session: convert: %s: %w", describe(s.src), ErrNoSourceLoaded)
	}
	if err := s.templates.Validate(); err != nil {
		return nil, err
	}

	// Tints are drawn up front so they follow cell order for any worker count.
	results := batch.Run(batch.Config{
		Sample:  img.Sample,
		Dims:    img.Dims,
		Tints:   brush.RandomTints(s.rng, img.Dims.Count()),
		Workers: s.workers,
	})

	doc, err := vmf.Assemble(s.templates, img.Dims, func(n int, _ grid.Cell) vmf.Fields {
		r := results[n]
		f := vmf.Fields{
			ID:     r.Solid.ID,
			Color:  r.Solid.Tint.String(),
			Alphas: r.Alphas.Text(),
		}
		for i, p := range r.Solid.Planes {
			f.Planes[i] = p.String()
		}
		return f
	})
	if err != nil {
		return nil, err
	}

	return &Conversion{Dims: img.Dims, Results: results, Document: doc}, nil
}

// Extract pulls the displacement records out of the loaded document. A
// document without displacements yields no records and an error wrapping
// extract.ErrMalformedDocument.
func (s *Session) Extract() ([]extract.Record, error) {
	doc, ok := s.src.(DocumentSource)
	if !ok {
		return nil, fmt.Errorf("session: extract: %s: %w", describe(s.src), ErrNoSourceLoaded)
	}
	return extract.Extract(doc.Text)
}

func describe(src Source) string {
	if src == nil {
		return "nothing loaded"
	}
	return src.kind() + " loaded"
}
