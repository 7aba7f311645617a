package textstat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// ColumnKind classifies the inferred type of a CSV column.
type ColumnKind string

const (
	// NumericColumn means every non-empty cell parses as a float.
	NumericColumn ColumnKind = "numeric"
	// TextColumn is everything else.
	TextColumn ColumnKind = "text"
)

// ColumnSummary holds the per-column statistics of a CSV file.
type ColumnSummary struct {
	Name    string
	Kind    ColumnKind
	Count   int // non-empty cells
	Missing int // empty cells

	// Numeric columns only.
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64

	// Text columns only.
	Unique  int
	Top     string // most frequent value
	TopFreq int
}

// Summary holds the outcome of a CSV analysis.
type Summary struct {
	Rows    int
	Cols    int
	Headers []string
	Columns []ColumnSummary
}

// AnalyzeCSV reads comma-delimited data with a header row and computes a
// per-column summary: type inference (numeric vs text), non-empty and missing
// counts, and descriptive statistics for numeric columns.
func AnalyzeCSV(r io.Reader) (*Summary, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("csv input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv records: %w", err)
	}

	summary := &Summary{
		Rows:    len(records),
		Cols:    len(headers),
		Headers: headers,
		Columns: make([]ColumnSummary, 0, len(headers)),
	}

	for col, name := range headers {
		values := make([]string, 0, len(records))
		missing := 0
		for _, record := range records {
			cell := strings.TrimSpace(record[col])
			if cell == "" {
				missing++
				continue
			}
			values = append(values, cell)
		}

		cs := ColumnSummary{
			Name:    name,
			Count:   len(values),
			Missing: missing,
		}

		if numbers, ok := parseNumeric(values); ok {
			cs.Kind = NumericColumn
			if err := fillNumericStats(&cs, numbers); err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
		} else {
			cs.Kind = TextColumn
			fillTextStats(&cs, values)
		}

		summary.Columns = append(summary.Columns, cs)
	}

	return summary, nil
}

// parseNumeric reports whether every value parses as a float, returning the
// parsed slice when it does. A column with no non-empty cells is text.
func parseNumeric(values []string) ([]float64, bool) {
	if len(values) == 0 {
		return nil, false
	}
	numbers := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, f)
	}
	return numbers, true
}

func fillNumericStats(cs *ColumnSummary, numbers []float64) error {
	var err error
	if cs.Mean, err = stats.Mean(numbers); err != nil {
		return err
	}
	if cs.Min, err = stats.Min(numbers); err != nil {
		return err
	}
	if cs.Max, err = stats.Max(numbers); err != nil {
		return err
	}
	// Population standard deviation, zero for single-value columns.
	if cs.StdDev, err = stats.StandardDeviation(numbers); err != nil {
		return err
	}
	return nil
}

func fillTextStats(cs *ColumnSummary, values []string) {
	freq := make(map[string]int, len(values))
	for _, v := range values {
		freq[v]++
	}
	cs.Unique = len(freq)
	for v, n := range freq {
		if n > cs.TopFreq || (n == cs.TopFreq && v < cs.Top) {
			cs.Top = v
			cs.TopFreq = n
		}
	}
}

// Format renders the summary as a human-readable report.
func (s *Summary) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Size: %d x %d (rows x columns)\n", s.Rows, s.Cols)
	fmt.Fprintf(&sb, "Column Headers: %s\n", strings.Join(s.Headers, ", "))
	sb.WriteString("Column Summary:\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&sb, "  %s (%s): count=%d missing=%d", c.Name, c.Kind, c.Count, c.Missing)
		switch c.Kind {
		case NumericColumn:
			fmt.Fprintf(&sb, " mean=%.4g min=%.4g max=%.4g stddev=%.4g", c.Mean, c.Min, c.Max, c.StdDev)
		case TextColumn:
			fmt.Fprintf(&sb, " unique=%d top=%q freq=%d", c.Unique, c.Top, c.TopFreq)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
