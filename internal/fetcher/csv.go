package fetcher

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// CSVOptions configures the CSV grid reader.
type CSVOptions struct {
	Delimiter  rune // default ','
	Comment    rune // comment character (0 = none)
	LazyQuotes bool
}

// ReadCSVGrid reads an entire CSV stream into a cell grid. Ragged rows
// are allowed; sheet exports routinely vary in width.
func ReadCSVGrid(r io.Reader, opts CSVOptions) ([][]string, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1

	var grid [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return grid, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}
		grid = append(grid, record)
	}
}

// ReadCSVFile reads a local CSV snapshot into a cell grid.
func ReadCSVFile(path string, opts CSVOptions) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "csv: open file")
	}
	defer f.Close() //nolint:errcheck

	return ReadCSVGrid(f, opts)
}
