package dataset

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options controls how a source file is read.
type Options struct {
	// Delimiter for CSV. If 0, chosen by extension (tab for .tsv, comma otherwise).
	Delimiter rune
	// SheetName selects an XLSX sheet by name; SheetIndex (1-based) is used otherwise.
	SheetName  string
	SheetIndex int
	// Logger receives load diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options that read the first sheet or a comma-separated file.
func DefaultOptions() Options {
	return Options{SheetIndex: 1}
}

// ParseDelimiter maps a user-facing delimiter spelling to a rune. Empty means auto.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ',' | ';' | '|' | 'tab')", s)
	}
}

// Load reads the tabular file at path and returns its cleaned table.
func Load(ctx context.Context, path string, opt Options) (*Table, error) {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	raw, err := readSource(ctx, path, opt)
	if err != nil {
		return nil, err
	}
	log.Debug("source read",
		zap.String("path", path),
		zap.Int("columns", len(raw.Header)),
		zap.Int("rows", len(raw.Rows)),
		zap.Duration("elapsed", time.Since(start)))

	t, err := Clean(filepath.Base(path), raw.Header, raw.Rows)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded",
		zap.String("table_id", t.ID),
		zap.String("source", t.Source),
		zap.Int("rows_read", t.RawRows),
		zap.Int("rows_kept", t.Len()),
		zap.Int("rows_dropped", t.Dropped),
		zap.Int("columns_kept", len(t.Columns)),
		zap.Int("countries", len(t.countries)))
	for _, w := range t.Warnings {
		log.Warn(w, zap.String("table_id", t.ID))
	}
	return t, nil
}

// Clean applies the cleaning pass to a parsed header and rows: column renaming,
// exclusion of administrative columns, the total_cup_points > 0 filter, and sentinel
// replacement of absent cells. The required columns are resolved to typed fields.
func Clean(source string, header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, sourceErr(source, "no header row")
	}
	names := make([]string, len(header))
	first := make(map[string]int, len(header))
	for i, h := range header {
		names[i] = NormalizeColumnName(headerName(h, i))
		if _, ok := first[names[i]]; !ok {
			first[names[i]] = i
		}
	}

	required := append([]string{ColTotalCupPoints, ColVariety, ColCountry}, categoryNames()...)
	var missing []string
	for _, name := range required {
		if _, ok := first[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	var kept []int
	t := &Table{ID: uuid.NewString(), Source: source}
	for i, n := range names {
		if IsExcluded(n) {
			continue
		}
		kept = append(kept, i)
		t.Columns = append(t.Columns, n)
	}

	scoreIdx := first[ColTotalCupPoints]
	varietyIdx := first[ColVariety]
	countryIdx := first[ColCountry]
	var catIdx [numCategories]int
	for i, c := range categories {
		catIdx[i] = first[string(c)]
	}

	var nonNumeric int
	t.Records = make([]Record, 0, len(rows))
	for _, row := range rows {
		t.RawRows++
		score, ok := parseNumber(cell(row, scoreIdx))
		if !ok {
			if !isAbsent(cell(row, scoreIdx)) {
				nonNumeric++
			}
			t.Dropped++
			continue
		}
		if !(score > 0) {
			t.Dropped++
			continue
		}
		rec := Record{
			TotalCupPoints: score,
			Variety:        cleanCell(cell(row, varietyIdx)),
			Country:        cleanCell(cell(row, countryIdx)),
			Cells:          make([]string, len(kept)),
		}
		for j, idx := range kept {
			rec.Cells[j] = cleanCell(cell(row, idx))
		}
		for i, idx := range catIdx {
			v, ok := parseNumber(cell(row, idx))
			if !ok {
				v = math.NaN()
			}
			rec.scores[i] = v
		}
		t.Records = append(t.Records, rec)
	}
	if nonNumeric > 0 {
		t.Warnings = append(t.Warnings, fmt.Sprintf("dropped %d rows with non-numeric %s", nonNumeric, ColTotalCupPoints))
	}
	t.finalize()
	return t, nil
}

func categoryNames() []string {
	out := make([]string, numCategories)
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// cell returns row[i], treating short rows as absent trailing cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func cleanCell(v string) string {
	if isAbsent(v) {
		return Sentinel
	}
	return v
}

func parseNumber(v string) (float64, bool) {
	if isAbsent(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
