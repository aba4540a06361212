package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

type csvReader struct{}

func (csvReader) CanRead(path string) bool {
	name := strings.ToLower(path)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvReader) Read(ctx context.Context, path string, opt Options) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()
	return readDelimited(ctx, f, path, opt.Delimiter)
}

func readDelimited(ctx context.Context, src io.Reader, path string, delim rune) (*RawTable, error) {
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, sourceErr(path, "empty file: no header row")
		}
		return nil, sourceErr(path, "read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	out := &RawTable{Header: header}
	for line := 1; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, sourceErr(path, "read row %d: %w", line, err)
		}
		out.Rows = append(out.Rows, rec)
	}
	return out, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
