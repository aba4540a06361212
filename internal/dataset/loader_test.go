package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var coffeeHeader = []string{
	"", "Species", "Owner", "Country.of.Origin", "Farm.Name", "Lot.Number", "Mill",
	"ICO.Number", "Altitude", "Region", "Producer", "Variety", "Processing.Method",
	"Aroma", "Flavor", "Aftertaste", "Acidity", "Body", "Balance", "Uniformity",
	"Clean.Cup", "Sweetness", "Cupper.Points", "Total.Cup.Points", "Moisture",
	"Grading.Date", "Owner.1", "Expiration", "Certification.Body",
	"Certification.Address", "Certification.Contact", "unit_of_measurement",
	"altitude_low_meters", "altitude_high_meters", "altitude_mean_meters",
}

func coffeeRow(idx, country, variety, score string, sub ...string) []string {
	scores := []string{"8.0", "8.1", "7.9", "8.2", "8.0", "7.8", "10", "10", "10"}
	copy(scores, sub)
	row := []string{idx, "Arabica", "owner", country, "farm", "lot", "mill", "ico", "1200", "region", "producer", variety, "Washed / Wet"}
	row = append(row, scores...)
	row = append(row, "8.5", score, "0.11", "2015-04-04", "Owner", "2016-04-03", "body", "addr", "contact", "m", "1200", "1300", "1250")
	return row
}

func writeCSV(t *testing.T, name string, header []string, rows [][]string, sep string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(strings.Join(header, sep))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, sep))
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadDropsNonPositiveScores(t *testing.T) {
	path := writeCSV(t, "arabica.csv", coffeeHeader, [][]string{
		coffeeRow("1", "Colombia", "Bourbon", "84.5"),
		coffeeRow("2", "Brazil", "Typica", "0"),
	}, ",")
	tbl, err := Load(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("records = %d, want 1", tbl.Len())
	}
	rec := tbl.Records[0]
	if rec.TotalCupPoints != 84.5 || rec.Variety != "Bourbon" || rec.Country != "Colombia" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if v, ok := rec.Score(Aroma); !ok || v != 8.0 {
		t.Fatalf("aroma = %v, %v", v, ok)
	}
	if tbl.RawRows != 2 || tbl.Dropped != 1 {
		t.Fatalf("raw=%d dropped=%d", tbl.RawRows, tbl.Dropped)
	}
	if tbl.Source != "arabica.csv" || tbl.ID == "" {
		t.Fatalf("source=%q id=%q", tbl.Source, tbl.ID)
	}
}

func TestCleanInvariants(t *testing.T) {
	rows := [][]string{
		coffeeRow("1", "Ethiopia", "", "90.58"),
		coffeeRow("2", "", "Other", "89.92", "", "NaN"),
		coffeeRow("3", "Guatemala", "Bourbon", "-1"),
		coffeeRow("4", "Mexico", "Typica", ""),
		coffeeRow("5", "Mexico", "Typica", "n/a"),
		coffeeRow("6", "Mexico", "Typica", "abc"),
		{"7", "Arabica"},
	}
	tbl, err := Clean("fixture.csv", coffeeHeader, rows)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("records = %d, want 2", tbl.Len())
	}
	for _, c := range tbl.Columns {
		if IsExcluded(c) {
			t.Fatalf("excluded column %q kept", c)
		}
		if NormalizeColumnName(c) != c {
			t.Fatalf("column %q not normalized", c)
		}
	}
	for i, rec := range tbl.Records {
		if rec.TotalCupPoints <= 0 {
			t.Fatalf("record %d has score %v", i, rec.TotalCupPoints)
		}
		if len(rec.Cells) != len(tbl.Columns) {
			t.Fatalf("record %d has %d cells for %d columns", i, len(rec.Cells), len(tbl.Columns))
		}
		for j, c := range rec.Cells {
			if isAbsent(c) {
				t.Fatalf("record %d column %s holds absent value %q", i, tbl.Columns[j], c)
			}
		}
	}
	if tbl.Records[0].Variety != Sentinel {
		t.Fatalf("blank variety = %q, want %q", tbl.Records[0].Variety, Sentinel)
	}
	second := tbl.Records[1]
	if second.Country != Sentinel {
		t.Fatalf("blank country = %q, want %q", second.Country, Sentinel)
	}
	if _, ok := second.Score(Aroma); ok {
		t.Fatalf("blank aroma should be missing")
	}
	if _, ok := second.Score(Flavor); ok {
		t.Fatalf("NaN flavor should be missing")
	}
	aroma := second.Cells[tbl.ColumnIndex("aroma")]
	if aroma != Sentinel {
		t.Fatalf("aroma cell = %q, want sentinel", aroma)
	}
	if len(tbl.Warnings) != 1 || !strings.Contains(tbl.Warnings[0], "non-numeric total_cup_points") {
		t.Fatalf("warnings = %#v", tbl.Warnings)
	}
	want := []string{"Ethiopia", Sentinel}
	got := tbl.Countries()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("countries = %v, want %v", got, want)
	}
}

func TestCleanKeepsDescriptiveColumns(t *testing.T) {
	tbl, err := Clean("fixture.csv", coffeeHeader, [][]string{coffeeRow("1", "Kenya", "SL28", "87")})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	for _, want := range []string{"species", "farm_name", "region", "processing_method", "cupper_points", "moisture", "total_cup_points"} {
		if tbl.ColumnIndex(want) < 0 {
			t.Errorf("column %q missing from %v", want, tbl.Columns)
		}
	}
	if tbl.ColumnIndex("unnamed:_0") >= 0 || tbl.ColumnIndex("owner") >= 0 {
		t.Fatalf("excluded columns kept: %v", tbl.Columns)
	}
	if tbl.Columns[0] != "species" {
		t.Fatalf("column order not preserved: %v", tbl.Columns)
	}
}

func TestCleanMissingRequiredColumn(t *testing.T) {
	header := []string{"Total.Cup.Points", "Variety", "Aroma"}
	_, err := Clean("bad.csv", header, nil)
	if !errors.Is(err, ErrMissingRequiredColumn) {
		t.Fatalf("err = %v, want missing required column", err)
	}
	var mc *MissingColumnError
	if !errors.As(err, &mc) {
		t.Fatalf("err is %T", err)
	}
	if mc.Columns[0] != ColCountry {
		t.Fatalf("first missing = %q", mc.Columns[0])
	}
	if !strings.Contains(err.Error(), "sweetness") {
		t.Fatalf("error should name every missing column: %v", err)
	}
}

func TestLoadSourceUnreadable(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("err = %v, want source unreadable", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(context.Background(), empty, DefaultOptions())
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("empty file err = %v", err)
	}

	notXLSX := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(notXLSX, []byte("not a workbook"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(context.Background(), notXLSX, DefaultOptions())
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("broken xlsx err = %v", err)
	}
}

func TestLoadTSVAndExplicitDelimiter(t *testing.T) {
	rows := [][]string{coffeeRow("1", "Colombia", "Caturra", "83")}
	tsv := writeCSV(t, "arabica.tsv", coffeeHeader, rows, "\t")
	tbl, err := Load(context.Background(), tsv, DefaultOptions())
	if err != nil {
		t.Fatalf("Load tsv: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("tsv records = %d", tbl.Len())
	}

	semi := writeCSV(t, "arabica.txt", coffeeHeader, rows, ";")
	opt := DefaultOptions()
	opt.Delimiter = ';'
	tbl, err = Load(context.Background(), semi, opt)
	if err != nil {
		t.Fatalf("Load semicolon: %v", err)
	}
	if tbl.Records[0].Variety != "Caturra" {
		t.Fatalf("variety = %q", tbl.Records[0].Variety)
	}
}

func TestLoadXLSXSheetSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arabica.xlsx")
	f := excelize.NewFile()
	if _, err := f.NewSheet("Scores"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	header := make([]interface{}, len(coffeeHeader))
	for i, h := range coffeeHeader {
		header[i] = h
	}
	if err := f.SetSheetRow("Scores", "A1", &header); err != nil {
		t.Fatalf("set header: %v", err)
	}
	for i, r := range [][]string{
		coffeeRow("1", "Colombia", "Bourbon", "84.5"),
		coffeeRow("2", "Brazil", "Typica", "0"),
	} {
		vals := make([]interface{}, len(r))
		for j, v := range r {
			vals[j] = v
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Scores", cellRef, &vals); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	_ = f.Close()

	opt := DefaultOptions()
	opt.SheetName = "scores"
	tbl, err := Load(context.Background(), path, opt)
	if err != nil {
		t.Fatalf("Load by name: %v", err)
	}
	if tbl.Len() != 1 || tbl.Records[0].Country != "Colombia" {
		t.Fatalf("unexpected table: %+v", tbl.Records)
	}

	opt = DefaultOptions()
	opt.SheetIndex = 2
	if _, err := Load(context.Background(), path, opt); err != nil {
		t.Fatalf("Load by index: %v", err)
	}

	// The default first sheet is empty.
	if _, err := Load(context.Background(), path, DefaultOptions()); !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("empty sheet err = %v", err)
	}

	opt = DefaultOptions()
	opt.SheetName = "Nope"
	_, err = Load(context.Background(), path, opt)
	if !errors.Is(err, ErrSourceUnreadable) || !strings.Contains(err.Error(), "Scores") {
		t.Fatalf("missing sheet err = %v", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	for in, want := range map[string]rune{"": 0, ",": ',', "tab": '\t', ";": ';', "pipe": '|'} {
		got, err := ParseDelimiter(in)
		if err != nil || got != want {
			t.Fatalf("ParseDelimiter(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseDelimiter("#"); err == nil {
		t.Fatalf("expected error for '#'")
	}
}

func TestScoreRange(t *testing.T) {
	tbl, err := Clean("x.csv", coffeeHeader, [][]string{
		coffeeRow("1", "Colombia", "Bourbon", "84.5"),
		coffeeRow("2", "Brazil", "Typica", "80.25"),
	})
	if err != nil {
		t.Fatal(err)
	}
	lo, hi, ok := tbl.ScoreRange()
	if !ok || lo != 80.25 || hi != 84.5 {
		t.Fatalf("range = %v..%v (%v)", lo, hi, ok)
	}
	empty, err := Clean("x.csv", coffeeHeader, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := empty.ScoreRange(); ok {
		t.Fatalf("empty table should have no range")
	}
	if !tbl.HasCountry("Brazil") || tbl.HasCountry("Peru") {
		t.Fatalf("HasCountry mismatch: %v", tbl.Countries())
	}
}
