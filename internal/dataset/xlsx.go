package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxReader struct{}

func (xlsxReader) CanRead(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xlsx")
}

// Read extracts rows from the selected sheet. With no sheet name and SheetIndex <= 0
// it reads the first sheet; SheetIndex is 1-based.
func (xlsxReader) Read(ctx context.Context, path string, opt Options) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, sourceErr(path, "open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	sheet, err := pickSheet(sheets, opt.SheetName, opt.SheetIndex)
	if err != nil {
		return nil, &SourceError{Path: path, Err: fmt.Errorf("%w in workbook %s", err, filepath.Base(path))}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, sourceErr(path, "read sheet %s: %w", sheet, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &RawTable{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if out.Header == nil {
			out.Header = row
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	if len(out.Header) == 0 {
		return nil, sourceErr(path, "sheet %s has no header row", sheet)
	}
	return out, nil
}

func pickSheet(sheets []string, name string, index int) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("no sheets")
	}
	if name != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, name) {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet '%s' not found (available sheets: %s)", name, strings.Join(sheets, ", "))
	}
	if index <= 0 {
		index = 1
	}
	if index > len(sheets) {
		return "", fmt.Errorf("sheet index %d out of range (%d sheets)", index, len(sheets))
	}
	return sheets[index-1], nil
}
