package forecast

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func sampleRecords() []Record {
	return []Record{
		{Date: day(2024, 1, 3), Debit: 300, Category: "Dining & Food"},
		{Date: day(2024, 1, 20), Debit: 200, Category: "Dining & Food"},
		{Date: day(2024, 1, 25), Debit: 500, Category: "Travel"},
		{Date: day(2024, 1, 28), Debit: 0, Credit: 90000, Category: "Income"},
		// February has no activity
		{Date: day(2024, 3, 2), Debit: 800, Category: "Travel"},
		{Date: day(2024, 3, 9), Debit: 200, Category: " Dining & Food "},
	}
}

func TestAggregate(t *testing.T) {
	m, err := Aggregate(sampleRecords())
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), m.Months[0])
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), m.Months[1])
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), m.LastMonth())

	// credit-only categories are dropped
	assert.Equal(t, []string{"Dining & Food", "Travel"}, m.Categories)

	assert.Equal(t, []float64{500, 0, 200}, m.Values["Dining & Food"])
	assert.Equal(t, []float64{500, 0, 800}, m.Values["Travel"])
	assert.Equal(t, []float64{1000, 0, 1000}, m.Total)

	assert.Equal(t, []float64{50, 0, 20}, m.Percent["Dining & Food"])
	assert.Equal(t, []float64{50, 0, 80}, m.Percent["Travel"])
}

func TestAggregate_OrderIndependent(t *testing.T) {
	expected, err := Aggregate(sampleRecords())
	require.NoError(t, err)

	records := sampleRecords()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		rng.Shuffle(len(records), func(a, b int) { records[a], records[b] = records[b], records[a] })
		got, err := Aggregate(records)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
}

func TestAggregate_Errors(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		_, err := Aggregate(nil)
		assert.ErrorIs(t, err, ErrNoRows)
	})

	t.Run("only credits", func(t *testing.T) {
		_, err := Aggregate([]Record{{Date: day(2024, 1, 1), Credit: 10, Category: "Income"}})
		assert.ErrorIs(t, err, ErrNoRows)
	})

	tests := []struct {
		name   string
		record Record
		field  string
	}{
		{"missing date", Record{Debit: 10, Category: "Travel"}, ColumnDateTime},
		{"blank category", Record{Date: day(2024, 1, 1), Debit: 10, Category: "  "}, ColumnCategory},
		{"negative debit", Record{Date: day(2024, 1, 1), Debit: -1, Category: "Travel"}, ColumnDebit},
		{"nan credit", Record{Date: day(2024, 1, 1), Debit: 10, Credit: math.NaN(), Category: "Travel"}, ColumnCredit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate([]Record{tt.record})

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.field, schemaErr.Field)
			assert.Equal(t, 0, schemaErr.Row)
		})
	}
}

func TestMonthlyMatrix_Drop(t *testing.T) {
	m, err := Aggregate(sampleRecords())
	require.NoError(t, err)

	m.Drop("Travel")
	m.Drop("Unknown")

	assert.Equal(t, []string{"Dining & Food"}, m.Categories)
	assert.Equal(t, []float64{500, 0, 200}, m.Total)
	assert.Equal(t, []float64{100, 0, 100}, m.Percent["Dining & Food"])
	_, ok := m.Percent["Travel"]
	assert.False(t, ok)
}

func TestMonthlyMatrix_SeriesIsCopy(t *testing.T) {
	m, err := Aggregate(sampleRecords())
	require.NoError(t, err)

	s := m.Series("Travel")
	s[0] = -1
	assert.Equal(t, 500.0, m.Values["Travel"][0])
}

func TestMonthHelpers(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), MonthEnd(day(2024, 2, 10)))
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), NextMonthEnd(day(2024, 12, 31)))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), NextMonthEnd(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, (&MonthlyMatrix{}).LastMonth().IsZero())
}
