package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinityrpm/fleet-office/internal/ingest"
)

func TestParseRecords_headerDefinesColumns(t *testing.T) {
	csv := "reservation_id,trip_status,trip_price\n" +
		"12345,Completed,$100.00\n" +
		"12346,Cancelled,$50.00\n"

	records, err := ingest.ParseRecords(csv)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "12345", records[0].Get("reservation_id"))
	assert.Equal(t, "$100.00", records[0].Get("trip_price"))
	assert.Equal(t, "Cancelled", records[1].Get("trip_status"))
}

func TestParseRecords_quotedFieldsAndCommas(t *testing.T) {
	csv := "reservation_id,vehicle\n" +
		`12345,"Trinity RPM's Jeep (OR #097NVA)"` + "\n"

	records, err := ingest.ParseRecords(csv)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Trinity RPM's Jeep (OR #097NVA)", records[0].Get("vehicle"))
}

func TestParseRecords_missingColumnReadsEmpty(t *testing.T) {
	csv := "reservation_id\n12345\n"

	records, err := ingest.ParseRecords(csv)

	require.NoError(t, err)
	assert.Equal(t, "", records[0].Get("late_fee"))
}

func TestParseRecords_malformedRowAbortsWholeParse(t *testing.T) {
	// Second data row has a field count that does not match the header —
	// no partial result may be returned.
	csv := "reservation_id,trip_status\n" +
		"12345,Completed\n" +
		"12346,Completed,extra\n"

	records, err := ingest.ParseRecords(csv)

	require.Error(t, err)
	assert.Nil(t, records)
}

func TestParseRecords_emptyInput(t *testing.T) {
	records, err := ingest.ParseRecords("")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRecords_headerOnly(t *testing.T) {
	records, err := ingest.ParseRecords("reservation_id,trip_status\n")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLicensePlate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"standard description", "Trinity RPM's Jeep (OR #097NVA)", "OR #097NVA"},
		{"first group wins", "Tesla (temp) Model 3 (ABC123)", "temp"},
		{"no parenthesized group", "Jeep Grand Cherokee L 2022", ""},
		{"empty description", "", ""},
		{"empty parentheses", "Jeep ()", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ingest.LicensePlate(tt.in))
		})
	}
}
