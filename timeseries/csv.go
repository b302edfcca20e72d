package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

var (
	ErrNoHeader          = errors.New("csv input has no header row")
	ErrTimeColumnMissing = errors.New("time column not found in header")
)

// CSVOptions holds options for CSV loading and saving.
type CSVOptions struct {
	TimeColumn string // header name of the timestamp column
	TimeFormat string // timestamp layout, default time.RFC3339
	Delimiter  rune   // field delimiter, default ','
}

func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		TimeColumn: "time",
		TimeFormat: time.RFC3339,
		Delimiter:  ',',
	}
}

// LoadCSV loads a Series from a CSV file. The file must carry a header row;
// every column other than the timestamp column is read as a feature
// dimension.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a Series from an io.Reader, see LoadCSV.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	timeCol := -1
	for i, name := range header {
		if name == opts.TimeColumn {
			timeCol = i
			break
		}
	}
	if timeCol < 0 {
		return nil, fmt.Errorf("column %q, %w", opts.TimeColumn, ErrTimeColumnMissing)
	}

	var (
		t    []time.Time
		rows [][]float64
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		ts, err := time.Parse(opts.TimeFormat, record[timeCol])
		if err != nil {
			return nil, err
		}

		row := make([]float64, 0, len(record)-1)
		for i, field := range record {
			if i == timeCol {
				continue
			}
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			row = append(row, val)
		}
		t = append(t, ts)
		rows = append(rows, row)
	}

	return New(t, rows)
}

// WriteCSV writes a Series to an io.Writer with a generated header row. The
// timestamp column uses the configured name and layout, feature columns are
// named c0, c1, and so on.
func WriteCSV(w io.Writer, s *Series, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter

	header := make([]string, 0, s.NumCols()+1)
	header = append(header, opts.TimeColumn)
	for i := 0; i < s.NumCols(); i++ {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := 0; i < s.Len(); i++ {
		record := make([]string, 0, s.NumCols()+1)
		record = append(record, s.t[i].Format(opts.TimeFormat))
		for j := 0; j < s.NumCols(); j++ {
			record = append(record, strconv.FormatFloat(s.vals.At(i, j), 'f', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
