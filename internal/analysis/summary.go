package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/beanview/internal/dataset"
)

// Options controls the dataset summary.
type Options struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// TopValues caps the most frequent values listed per categorical column.
	TopValues int
}

// DefaultOptions returns reasonable defaults for the summary.
func DefaultOptions() Options {
	return Options{SampleRows: 5, TopValues: 8}
}

// Report is a markdown-friendly profile of a cleaned table.
type Report struct {
	Name     string
	TableID  string
	RawRows  int
	Rows     int
	Dropped  int
	Cols     []ColumnSummary
	Samples  [][]string
	Warnings []string
}

// ColumnSummary captures inferred kind and statistics per column.
type ColumnSummary struct {
	Name string
	Kind string // numeric|categorical|text
	// Unknown counts cells holding the sentinel.
	Unknown int
	Unique  int
	// Numeric stats over parsable cells
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
	// Categorical top values
	TopValues    []CategoryCount
	ExampleTexts []string
}

type CategoryCount struct {
	Value string
	Count int
}

// Summarize profiles every column of t.
func Summarize(t *dataset.Table, opt Options) *Report {
	if opt.SampleRows < 0 {
		opt.SampleRows = 0
	}
	if opt.TopValues <= 0 {
		opt.TopValues = DefaultOptions().TopValues
	}
	rep := &Report{
		Name:     t.Source,
		TableID:  t.ID,
		RawRows:  t.RawRows,
		Rows:     t.Len(),
		Dropped:  t.Dropped,
		Warnings: append([]string(nil), t.Warnings...),
	}
	for i := 0; i < len(t.Records) && i < opt.SampleRows; i++ {
		rep.Samples = append(rep.Samples, t.Records[i].Cells)
	}
	rep.Cols = make([]ColumnSummary, 0, len(t.Columns))
	for j, name := range t.Columns {
		rep.Cols = append(rep.Cols, summarizeColumn(t, j, name, opt))
	}
	return rep
}

func summarizeColumn(t *dataset.Table, j int, name string, opt Options) ColumnSummary {
	s := ColumnSummary{Name: name}
	var nums []float64
	var txtCnt int
	cats := map[string]int{}
	for i := range t.Records {
		v := t.Records[i].Cells[j]
		if v == dataset.Sentinel {
			s.Unknown++
			continue
		}
		if x, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			nums = append(nums, x)
		} else {
			txtCnt++
			if len(s.ExampleTexts) < 3 {
				s.ExampleTexts = append(s.ExampleTexts, v)
			}
		}
		if len(cats) <= 10000 && len(v) <= 64 { // guard memory; short tokens are categories
			cats[v]++
		}
	}
	s.Unique = len(cats)

	switch {
	case len(nums) > 0 && len(nums) >= txtCnt:
		s.Kind = "numeric"
		s.ExampleTexts = nil
		s.Min, _ = stats.Min(nums)
		s.Max, _ = stats.Max(nums)
		s.Mean, _ = stats.Mean(nums)
		s.Median, _ = stats.Median(nums)
		if len(nums) > 1 {
			s.Std, _ = stats.StandardDeviationSample(nums)
		}
	case len(cats) > 0:
		s.Kind = "categorical"
		s.ExampleTexts = nil
		tops := make([]CategoryCount, 0, len(cats))
		for k, v := range cats {
			tops = append(tops, CategoryCount{Value: k, Count: v})
		}
		sort.Slice(tops, func(i, j int) bool {
			if tops[i].Count == tops[j].Count {
				return tops[i].Value < tops[j].Value
			}
			return tops[i].Count > tops[j].Count
		})
		if len(tops) > opt.TopValues {
			tops = tops[:opt.TopValues]
		}
		s.TopValues = tops
	default:
		s.Kind = "text"
	}
	return s
}

// Markdown renders a compact report suitable for terminals or standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	if r.TableID != "" {
		b.WriteString(fmt.Sprintf("Table: %s\n", r.TableID))
	}
	if r.Dropped > 0 {
		b.WriteString(fmt.Sprintf("Rows: %d (read %d, dropped %d)\n", r.Rows, r.RawRows, r.Dropped))
	} else {
		b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	}
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		unkPct := 0.0
		if r.Rows > 0 {
			unkPct = float64(c.Unknown) * 100.0 / float64(r.Rows)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (unknown %.1f%%)", c.Name, c.Kind, unkPct))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Median, c.Std))
		case "categorical":
			if len(c.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
				if c.Unique > len(c.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
				}
			}
		case "text":
			if len(c.ExampleTexts) > 0 {
				b.WriteString(" — e.g., ")
				for i, ex := range c.ExampleTexts {
					if i > 0 {
						b.WriteString(" | ")
					}
					b.WriteString(safeVal(ex))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD AND SAMPLE ROWS]\n")
		b.WriteString("| ")
		for i, c := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(c.Name)
		}
		b.WriteString(" |\n| ")
		for i := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Cols {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
