// Package extract recovers displacement paint data from VMF documents.
package extract

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"disp-alpha-tools/internal/alpha"
	"disp-alpha-tools/internal/logging"
)

// ErrMalformedDocument reports a document without any displacement side.
// It is diagnostic only; Extract still returns a usable (empty) result.
var ErrMalformedDocument = errors.New("no displacement sides found")

// DisplacementSide is the side id carrying the painted displacement.
const DisplacementSide = "1"

// Extraction rules.
var (
	// sideStart matches the opening of a side block.
	sideStart = regexp.MustCompile(`\bside\s*\{`)
	// sideID matches the id field that opens a side block.
	sideID = regexp.MustCompile(`\A\s*"id"\s*"(\d+)"`)
	// alphasBlock captures the body of an alphas block.
	alphasBlock = regexp.MustCompile(`alphas\s*\{([a-z0-9"\s]*)\}`)
	// rowField captures the value of one "rowN" field.
	rowField = regexp.MustCompile(`"row\d+"\s*"([\d\s]+)"`)
	// planeField captures the three points of a plane field.
	planeField = regexp.MustCompile(`"plane"\s*"\(([^()]+)\)\s*\(([^()]+)\)\s*\(([^()]+)\)"`)
)

// Record is one displacement found in a document.
type Record struct {
	X    int      `json:"x"`    // smallest X of the side plane
	Y    int      `json:"y"`    // smallest Y of the side plane
	Rows []string `json:"rows"` // raw alpha rows, row0 first
}

// Grid parses the rows into paint weights.
func (r Record) Grid() (alpha.Grid, error) {
	return alpha.ParseRows(r.Rows)
}

// Extract returns every displacement side of doc in document order. Side
// blocks are bounded by the next side token. Sides without a parsable plane
// are skipped. When nothing is found the result is empty and the error is
// ErrMalformedDocument.
func Extract(doc string) ([]Record, error) {
	var records []Record
	skipped := 0
	for _, block := range sideBlocks(doc) {
		m := sideID.FindStringSubmatch(block)
		if m == nil || m[1] != DisplacementSide {
			continue
		}
		rec, ok := parseSide(block)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	logging.Logger().Debug("extract: scanned document",
		"records", len(records), "skipped", skipped)

	if len(records) == 0 {
		return nil, fmt.Errorf("extract: %w", ErrMalformedDocument)
	}
	return records, nil
}

// sideBlocks splits doc into side bodies, each running from just after
// "side {" up to the next side opening or the end of the document.
func sideBlocks(doc string) []string {
	locs := sideStart.FindAllStringIndex(doc, -1)
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(doc)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, doc[loc[1]:end])
	}
	return blocks
}

func parseSide(block string) (Record, bool) {
	plane := planeField.FindStringSubmatch(block)
	if plane == nil {
		return Record{}, false
	}
	minX, minY := math.MaxInt, math.MaxInt
	for _, pt := range plane[1:] {
		x, y, ok := parsePoint(pt)
		if !ok {
			return Record{}, false
		}
		minX = min(minX, x)
		minY = min(minY, y)
	}

	rec := Record{X: minX, Y: minY, Rows: []string{}}
	if a := alphasBlock.FindStringSubmatch(block); a != nil {
		for _, row := range rowField.FindAllStringSubmatch(a[1], -1) {
			rec.Rows = append(rec.Rows, row[1])
		}
	}
	return rec, true
}

// parsePoint reads the X and Y of an "x y z" triple. Decimal coordinates are
// rounded to the nearest unit.
func parsePoint(s string) (x, y int, ok bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, false
	}
	var v [2]int
	for i := range v {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, 0, false
		}
		v[i] = int(math.Round(f))
	}
	return v[0], v[1], true
}
