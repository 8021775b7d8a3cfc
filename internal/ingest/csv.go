package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// Export columns read by name during ingestion. The remaining financial
// columns are addressed through the groups in the finance package.
const (
	colReservationID = "reservation_id"
	colTripStatus    = "trip_status"
	colVehicle       = "vehicle"
	colVehicleName   = "vehicle_name"
	colTripStart     = "trip_start"
	colTripEnd       = "trip_end"
	colDistance      = "distance_traveled"
	colTripDays      = "trip_days"
)

// statusCompleted is the trip_status value of a finished rental. Rows in
// any other status (in progress, cancelled) are silently skipped.
const statusCompleted = "Completed"

// ParseRecords parses raw CSV text into column-keyed records. The first
// row is the header and defines the column names; every subsequent row
// must have the same number of fields. Malformed CSV fails the whole
// parse — there is no partial result.
func ParseRecords(csvContent string) ([]domain.ImportRecord, error) {
	reader := csv.NewReader(strings.NewReader(csvContent))

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []domain.ImportRecord
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := make(domain.ImportRecord, len(header))
		for i, column := range header {
			rec[column] = row[i]
		}
		records = append(records, rec)
	}

	return records, nil
}

// plateRE captures the first parenthesized group of a vehicle description.
var plateRE = regexp.MustCompile(`\((.*?)\)`)

// LicensePlate extracts the license plate from a composite vehicle
// description, e.g. "Trinity RPM's Jeep (OR #097NVA)" → "OR #097NVA".
// A description with no parenthesized group yields "", which later fails
// vehicle resolution for that row.
func LicensePlate(description string) string {
	m := plateRE.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return m[1]
}
