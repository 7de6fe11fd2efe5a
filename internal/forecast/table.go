package forecast

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Statement column headers.
const (
	ColumnReference   = "Reference Code"
	ColumnDateTime    = "Date Time"
	ColumnDescription = "Description"
	ColumnDebit       = "Dr."
	ColumnCredit      = "Cr."
	ColumnChannel     = "Channel"
	ColumnCategory    = "Category"
)

var requiredColumns = []string{ColumnDateTime, ColumnDebit, ColumnCredit, ColumnCategory}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// Record is one categorized transaction as consumed by the aggregator.
type Record struct {
	Date        time.Time
	Reference   string
	Description string
	Debit       float64
	Credit      float64
	Channel     string
	Category    string
}

// Categorizer labels a statement row from its description. It stands in for
// the upstream classifier when a statement arrives without categories.
type Categorizer interface {
	Categorize(description string) string
}

type tableOptions struct {
	categorizer Categorizer
}

// TableOption configures ParseTable, ReadCSV and ReadXLSX.
type TableOption func(*tableOptions)

// WithCategorizer makes the Category column optional. Blank category cells
// are filled by c from the row description.
func WithCategorizer(c Categorizer) TableOption {
	return func(o *tableOptions) {
		o.categorizer = c
	}
}

func buildTableOptions(opts []TableOption) tableOptions {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o tableOptions) required() []string {
	if o.categorizer == nil {
		return requiredColumns
	}
	return requiredColumns[:3]
}

// ParseTable maps a header row and data rows onto records. Header names are
// trimmed before matching. Rows with a blank date, debit, credit or category
// cell are skipped; cells that are present but unparseable are schema errors.
func ParseTable(header []string, rows [][]string, opts ...TableOption) ([]Record, error) {
	o := buildTableOptions(opts)

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, col := range o.required() {
		if _, ok := index[col]; !ok {
			return nil, newColumnError(col, "column is missing")
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows))
	for n, row := range rows {
		rawDate := cell(row, ColumnDateTime)
		rawDebit := cell(row, ColumnDebit)
		rawCredit := cell(row, ColumnCredit)
		category := cell(row, ColumnCategory)
		if category == "" && o.categorizer != nil {
			category = o.categorizer.Categorize(cell(row, ColumnDescription))
		}
		if rawDate == "" || rawDebit == "" || rawCredit == "" || category == "" {
			continue
		}

		date, err := ParseDate(rawDate)
		if err != nil {
			return nil, &SchemaError{Field: ColumnDateTime, Row: n, Reason: err.Error()}
		}

		debit, err := parseAmount(rawDebit)
		if err != nil {
			return nil, &SchemaError{Field: ColumnDebit, Row: n, Reason: err.Error()}
		}

		credit, err := parseAmount(rawCredit)
		if err != nil {
			return nil, &SchemaError{Field: ColumnCredit, Row: n, Reason: err.Error()}
		}

		records = append(records, Record{
			Date:        date,
			Reference:   cell(row, ColumnReference),
			Description: cell(row, ColumnDescription),
			Debit:       debit,
			Credit:      credit,
			Channel:     cell(row, ColumnChannel),
			Category:    category,
		})
	}

	return records, nil
}

// ReadCSV parses a comma separated statement whose first row is the header.
func ReadCSV(r io.Reader, opts ...TableOption) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, newColumnError(ColumnDateTime, "table is empty")
	}

	return ParseTable(rows[0], rows[1:], opts...)
}

// WriteCSV writes records as a statement table that ReadCSV accepts.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)

	header := []string{ColumnReference, ColumnDateTime, ColumnDescription, ColumnDebit, ColumnCredit, ColumnChannel, ColumnCategory}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Reference,
			r.Date.Format("2006-01-02 15:04:05"),
			r.Description,
			strconv.FormatFloat(r.Debit, 'f', 2, 64),
			strconv.FormatFloat(r.Credit, 'f', 2, 64),
			r.Channel,
			r.Category,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadXLSX parses the first sheet of a bank statement workbook. Statements
// carry a preamble above the table, so the header is the first row that names
// every required column.
func ReadXLSX(r io.Reader, opts ...TableOption) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newColumnError(ColumnDateTime, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	required := buildTableOptions(opts).required()
	for i, row := range rows {
		if isHeaderRow(row, required) {
			return ParseTable(row, rows[i+1:], opts...)
		}
	}

	return nil, newColumnError(ColumnDateTime, "no header row found")
}

func isHeaderRow(row []string, required []string) bool {
	seen := make(map[string]bool, len(row))
	for _, name := range row {
		seen[strings.TrimSpace(name)] = true
	}
	for _, col := range required {
		if !seen[col] {
			return false
		}
	}
	return true
}

// ParseDate reads a statement date in any of the accepted layouts.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}

func parseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	if cleaned == "-" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("unrecognised amount %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount %q is negative", raw)
	}
	return v, nil
}

// ReadStatement picks the reader from the file extension: .xlsx and .xlsm
// are workbooks, anything else is parsed as CSV.
func ReadStatement(filename string, r io.Reader, opts ...TableOption) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r, opts...)
	default:
		return ReadCSV(r, opts...)
	}
}
