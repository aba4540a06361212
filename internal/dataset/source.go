package dataset

import (
	"context"
	"os"
)

// RawTable is a parsed source before cleaning: a header and rows of raw cells.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Reader parses one kind of tabular file.
type Reader interface {
	CanRead(path string) bool
	Read(ctx context.Context, path string, opt Options) (*RawTable, error)
}

var readers []Reader

// Register adds a Reader to the registry consulted by Load.
func Register(r Reader) {
	readers = append(readers, r)
}

func readSource(ctx context.Context, path string, opt Options) (*RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	for _, r := range readers {
		if r.CanRead(path) {
			return r.Read(ctx, path, opt)
		}
	}
	// Unknown extensions are read as delimited text.
	return csvReader{}.Read(ctx, path, opt)
}

func init() {
	Register(csvReader{})
	Register(xlsxReader{})
}
