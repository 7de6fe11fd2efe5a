package forecast

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// MonthlyMatrix holds monthly debit totals per category. Months are UTC month
// ends in ascending order with no gaps; a month without activity is a row of
// zeros. Every retained category has at least one non-zero month.
type MonthlyMatrix struct {
	Months     []time.Time
	Categories []string
	Values     map[string][]float64
	Total      []float64
	// Percent holds the "<category> %" columns: 100 * value / Total, or 0
	// where Total is 0.
	Percent map[string][]float64
}

// MonthEnd returns the last calendar day of t's month at midnight UTC.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// NextMonthEnd returns the month end following t's month.
func NextMonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+2, 0, 0, 0, 0, 0, time.UTC)
}

// Aggregate sums debits per (month, category) and derives the Total and
// percentage columns. The result does not depend on the order of records.
func Aggregate(records []Record) (*MonthlyMatrix, error) {
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	sums := make(map[time.Time]map[string]float64)
	var first, last time.Time

	for i, r := range records {
		if r.Date.IsZero() {
			return nil, &SchemaError{Field: ColumnDateTime, Row: i, Reason: "date is missing"}
		}
		category := strings.TrimSpace(r.Category)
		if category == "" {
			return nil, &SchemaError{Field: ColumnCategory, Row: i, Reason: "category is empty"}
		}
		if math.IsNaN(r.Debit) || math.IsInf(r.Debit, 0) || r.Debit < 0 {
			return nil, &SchemaError{Field: ColumnDebit, Row: i, Reason: fmt.Sprintf("debit %v is not a non-negative amount", r.Debit)}
		}
		if math.IsNaN(r.Credit) || math.IsInf(r.Credit, 0) || r.Credit < 0 {
			return nil, &SchemaError{Field: ColumnCredit, Row: i, Reason: fmt.Sprintf("credit %v is not a non-negative amount", r.Credit)}
		}

		month := MonthEnd(r.Date)
		if first.IsZero() || month.Before(first) {
			first = month
		}
		if month.After(last) {
			last = month
		}

		bucket, ok := sums[month]
		if !ok {
			bucket = make(map[string]float64)
			sums[month] = bucket
		}
		bucket[category] += r.Debit
	}

	m := &MonthlyMatrix{
		Values:  make(map[string][]float64),
		Percent: make(map[string][]float64),
	}
	for month := first; !month.After(last); month = NextMonthEnd(month) {
		m.Months = append(m.Months, month)
	}

	columnSums := make(map[string]float64)
	for _, bucket := range sums {
		for category, v := range bucket {
			columnSums[category] += v
		}
	}
	for category, sum := range columnSums {
		if sum == 0 {
			continue
		}
		m.Categories = append(m.Categories, category)
	}
	sort.Strings(m.Categories)

	if len(m.Categories) == 0 {
		return nil, fmt.Errorf("%w: every category has zero debits", ErrNoRows)
	}

	for _, category := range m.Categories {
		column := make([]float64, len(m.Months))
		for i, month := range m.Months {
			column[i] = sums[month][category]
		}
		m.Values[category] = column
	}

	m.Recompute()
	return m, nil
}

// Recompute rebuilds Total and Percent from the category columns.
func (m *MonthlyMatrix) Recompute() {
	m.Total = make([]float64, len(m.Months))
	for _, category := range m.Categories {
		for i, v := range m.Values[category] {
			m.Total[i] += v
		}
	}

	m.Percent = make(map[string][]float64, len(m.Categories))
	for _, category := range m.Categories {
		column := make([]float64, len(m.Months))
		for i, v := range m.Values[category] {
			if m.Total[i] != 0 {
				column[i] = v / m.Total[i] * 100
			}
		}
		m.Percent[category] = column
	}
}

// Drop removes a category column and recomputes the derived columns.
func (m *MonthlyMatrix) Drop(category string) {
	if _, ok := m.Values[category]; !ok {
		return
	}
	delete(m.Values, category)
	kept := m.Categories[:0]
	for _, c := range m.Categories {
		if c != category {
			kept = append(kept, c)
		}
	}
	m.Categories = kept
	m.Recompute()
}

// Rows returns the number of months in the matrix.
func (m *MonthlyMatrix) Rows() int {
	return len(m.Months)
}

// Series returns a copy of one category's monthly values.
func (m *MonthlyMatrix) Series(category string) []float64 {
	values := m.Values[category]
	out := make([]float64, len(values))
	copy(out, values)
	return out
}

// LastMonth returns the final month end, or the zero time for an empty matrix.
func (m *MonthlyMatrix) LastMonth() time.Time {
	if len(m.Months) == 0 {
		return time.Time{}
	}
	return m.Months[len(m.Months)-1]
}
