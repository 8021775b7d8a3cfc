// Package ingest implements the CSV import pipeline: parsing a platform
// trip export, deduplicating against stored reservation ids, reconciling
// vehicles by license plate, deriving the financial fields, and persisting
// new trips in one batch.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trinityrpm/fleet-office/internal/domain"
	"github.com/trinityrpm/fleet-office/internal/finance"
	"github.com/trinityrpm/fleet-office/internal/repo"
)

// Service orchestrates one ingestion call end to end. It runs everything
// sequentially — the only concurrency guard is the database's unique
// constraints, which is acceptable for a single administrator uploading
// exports one at a time.
type Service struct {
	trips    repo.TripRepo
	vehicles repo.VehicleRepo
	log      *slog.Logger
}

// NewService constructs an ingest Service backed by the provided repos.
func NewService(trips repo.TripRepo, vehicles repo.VehicleRepo, log *slog.Logger) *Service {
	return &Service{trips: trips, vehicles: vehicles, log: log}
}

// Import ingests one CSV export. On success it reports the number of newly
// inserted trips; re-uploading the same export is a zero-record success.
//
// Any failure — parse, vehicle creation, batch insert — aborts the whole
// call and is returned as domain.ErrIngestFailed. The underlying cause is
// logged here and never surfaced to the caller. Vehicles created before
// the failure are not rolled back; trips are all-or-nothing.
func (s *Service) Import(ctx context.Context, csvContent, fileName string) (domain.ImportResult, error) {
	result, err := s.runImport(ctx, csvContent)
	if err != nil {
		s.log.ErrorContext(ctx, "csv import failed",
			"file_name", fileName,
			"error", err,
		)
		return domain.ImportResult{}, fmt.Errorf("ingest.Service.Import: %w", domain.ErrIngestFailed)
	}

	s.log.InfoContext(ctx, "csv import finished",
		"file_name", fileName,
		"records_processed", result.RecordsProcessed,
	)
	return result, nil
}

func (s *Service) runImport(ctx context.Context, csvContent string) (domain.ImportResult, error) {
	records, err := ParseRecords(csvContent)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("parse csv: %w", err)
	}

	existing, err := s.trips.ExternalIDs(ctx)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("load trip ids: %w", err)
	}

	// Keep only completed trips not yet imported. Reservation ids repeated
	// within the same upload are re-sent rows; the first one wins.
	var newRecords []domain.ImportRecord
	seen := make(map[string]struct{})
	for _, rec := range records {
		id := rec.Get(colReservationID)
		if rec.Get(colTripStatus) != statusCompleted {
			continue
		}
		if _, ok := existing[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		newRecords = append(newRecords, rec)
	}

	if len(newRecords) == 0 {
		return domain.ImportResult{
			RecordsProcessed: 0,
			Message:          "No new records to process",
		}, nil
	}

	mapping, err := s.reconcileVehicles(ctx, newRecords)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("reconcile vehicles: %w", err)
	}

	trips := make([]domain.Trip, 0, len(newRecords))
	for _, rec := range newRecords {
		trip, err := assembleTrip(rec, mapping)
		if err != nil {
			return domain.ImportResult{}, err
		}
		trips = append(trips, trip)
	}

	count, err := s.trips.CreateBatch(ctx, trips)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("insert trips: %w", err)
	}

	return domain.ImportResult{RecordsProcessed: int(count)}, nil
}

// assembleTrip maps one export row to a full Trip, resolving its vehicle
// and computing the derived financial fields.
func assembleTrip(rec domain.ImportRecord, vehicles map[string]uuid.UUID) (domain.Trip, error) {
	plate := LicensePlate(rec.Get(colVehicle))
	vehicleID, ok := vehicles[plate]
	if !ok {
		return domain.Trip{}, fmt.Errorf("vehicle not found for license plate: %q", plate)
	}

	start, err := parseExportTime(rec.Get(colTripStart))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("trip %s: trip_start: %w", rec.Get(colReservationID), err)
	}
	end, err := parseExportTime(rec.Get(colTripEnd))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("trip %s: trip_end: %w", rec.Get(colReservationID), err)
	}

	d := finance.Derive(rec)

	return domain.Trip{
		TripID:           rec.Get(colReservationID),
		VehicleID:        vehicleID,
		TripStart:        start,
		TripEnd:          end,
		DistanceTraveled: finance.Amount(rec.Get(colDistance)),
		TripDays:         int(finance.Amount(rec.Get(colTripDays))),
		TripPrice:        finance.Amount(rec.Get(finance.ColTripPrice)),
		TotalDiscount:    d.TotalDiscount,
		DeliveryFee:      finance.Amount(rec.Get(finance.ColDelivery)),
		ExcessDistance:   finance.Amount(rec.Get("excess_distance")),
		AdditionalUsage:  finance.Amount(rec.Get("additional_usage")),
		LateFee:          finance.Amount(rec.Get("late_fee")),
		GrossEarned:      d.GrossEarned,
		TuroFee:          d.TuroFee,
		OperationExpense: d.OperationExpense,
		NetEarned:        d.NetEarned,
	}, nil
}

// exportTimeLayouts are the timestamp formats observed in platform exports.
var exportTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
	"2006-01-02",
}

// parseExportTime parses an export timestamp, trying each known layout.
func parseExportTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range exportTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
