package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Sentinel errors returned by Read and FromCSV.
var (
	// ErrInvalidRange indicates a column range with From < 0 or To < From.
	ErrInvalidRange = errors.New("dataset: column range must satisfy 0 ≤ From ≤ To")

	// ErrShortRow indicates a row with fewer columns than the range needs.
	ErrShortRow = errors.New("dataset: row has fewer columns than the selected range")

	// ErrBadValue indicates a selected cell that does not parse as a float.
	ErrBadValue = errors.New("dataset: cell is not a valid float")
)

// Options configures a load.
//
// From, To     – inclusive column range to extract as features.
// SkipHeader   – drop the first row unparsed.
// SkipInvalid  – drop rows with short or non-numeric cells instead of
//                failing; the parse error is returned otherwise.
type Options struct {
	From        int
	To          int
	SkipHeader  bool
	SkipInvalid bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithColumns selects the inclusive feature column range.
func WithColumns(from, to int) Option {
	return func(o *Options) { o.From, o.To = from, to }
}

// WithSkipHeader drops the first row.
func WithSkipHeader() Option {
	return func(o *Options) { o.SkipHeader = true }
}

// WithSkipInvalid drops unparsable rows instead of failing the load.
func WithSkipInvalid() Option {
	return func(o *Options) { o.SkipInvalid = true }
}

// DefaultOptions returns Options with the given setters applied.
func DefaultOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// FromCSV loads the selected columns of a CSV file as a feature matrix.
func FromCSV(path string, opts Options) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f), opts)
}

// Read loads the selected columns of CSV text as a feature matrix.
//
// Contracts: 0 ≤ From ≤ To; every kept row yields To−From+1 floats.
func Read(r io.Reader, opts Options) ([][]float64, error) {
	if opts.From < 0 || opts.To < opts.From {
		return nil, ErrInvalidRange
	}

	var (
		cr    = csv.NewReader(r)
		width = opts.To - opts.From + 1
		data  [][]float64
		first = true
	)
	// Ragged sources are handled here, not by the csv package.
	cr.FieldsPerRecord = -1

	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}

		if first && opts.SkipHeader {
			first = false

			continue
		}
		first = false

		row, err := parseRow(record, opts.From, opts.To, width)
		if err != nil {
			if opts.SkipInvalid {
				continue
			}

			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		data = append(data, row)
	}

	return data, nil
}

// parseRow extracts the [from,to] cells of one record as floats.
func parseRow(record []string, from, to, width int) ([]float64, error) {
	if len(record) <= to {
		return nil, ErrShortRow
	}

	row := make([]float64, 0, width)
	for j := from; j <= to; j++ {
		v, err := strconv.ParseFloat(record[j], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d value %q", ErrBadValue, j, record[j])
		}
		row = append(row, v)
	}

	return row, nil
}
