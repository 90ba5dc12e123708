package vmf

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Placeholders substituted into the solid template.
const (
	PlaceholderID       = "$ID"
	PlaceholderColor    = "$COLOR"
	PlaceholderStartPos = "$START_POS"
	PlaceholderAlphas   = "$ALPHAS"
)

// Boilerplate file names, shared by the embedded set and LoadTemplates.
const (
	HeaderFile = "boilerplate_start.txt"
	SolidFile  = "boilerplate_solid.txt"
	FooterFile = "boilerplate_end.txt"
)

// ErrMissingTemplate is returned when a template lacks a required placeholder.
var ErrMissingTemplate = errors.New("missing template placeholder")

//go:embed boilerplate/*.txt
var boilerplate embed.FS

// Templates are the three text blocks a document is built from.
// Solid must contain every placeholder returned by Placeholders.
type Templates struct {
	Header string
	Solid  string
	Footer string
}

// PlanePlaceholder returns the placeholder of side plane i, counting from 1.
func PlanePlaceholder(i int) string {
	return fmt.Sprintf("$PLANE_%d", i)
}

// Placeholders lists the placeholders of the solid template.
func Placeholders() []string {
	ph := []string{PlaceholderID, PlaceholderColor, PlaceholderStartPos}
	for i := 1; i <= 6; i++ {
		ph = append(ph, PlanePlaceholder(i))
	}
	return append(ph, PlaceholderAlphas)
}

// Validate reports every placeholder missing from the solid template.
func (t Templates) Validate() error {
	var missing []string
	for _, ph := range Placeholders() {
		if !strings.Contains(t.Solid, ph) {
			missing = append(missing, ph)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("vmf: solid template lacks %s: %w", strings.Join(missing, ", "), ErrMissingTemplate)
	}
	return nil
}

// DefaultTemplates returns the built-in boilerplate: a worldspawn with power-3
// displacements painted on side 1 of each solid.
func DefaultTemplates() Templates {
	read := func(name string) string {
		data, err := boilerplate.ReadFile("boilerplate/" + name)
		if err != nil {
			panic(err)
		}
		return string(data)
	}
	return Templates{
		Header: read(HeaderFile),
		Solid:  read(SolidFile),
		Footer: read(FooterFile),
	}
}

// LoadTemplates reads the three boilerplate files from dir.
func LoadTemplates(dir string) (Templates, error) {
	var t Templates
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{HeaderFile, &t.Header},
		{SolidFile, &t.Solid},
		{FooterFile, &t.Footer},
	} {
		path := filepath.Join(dir, f.name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Templates{}, fmt.Errorf("vmf: read %s: %w", path, err)
		}
		*f.dst = string(data)
	}
	return t, nil
}
