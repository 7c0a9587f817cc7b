// Package trajectory reads the coordinate sequences fed to lbp.
//
// The input format is CSV with two numeric columns, x and y, one point per
// record. A single non-numeric header row is allowed as the first record,
// and lines starting with '#' are comments.
//
//	# walk of sample 17
//	x,y
//	0,0
//	1.5,-0.25
package trajectory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadRecord indicates a CSV record that is not a pair of numbers.
var ErrBadRecord = errors.New("trajectory: bad record")

// ReadCSV parses points from r. The returned slices always have equal length.
func ReadCSV(r io.Reader) (xs, ys []float64, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: %d fields, want 2", ErrBadRecord, line, len(rec))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if first {
				continue // header
			}
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadRecord, line, rec)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string) (xs, ys []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("trajectory: %w", err)
	}
	defer f.Close()

	xs, ys, err = ReadCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return xs, ys, nil
}
