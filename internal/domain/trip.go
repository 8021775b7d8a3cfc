package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is one completed rental imported from a platform export.
// Trips are append-only: ingestion creates them and nothing in this
// system ever updates or deletes one (vehicle deletion cascades aside).
//
// TripID is the platform's reservation id and is unique — it is the
// dedup key that makes re-uploading the same export a no-op.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	TripID    string    `json:"trip_id"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	TripStart time.Time `json:"trip_start"`
	TripEnd   time.Time `json:"trip_end"`

	// Raw fields copied from the export.
	DistanceTraveled float64 `json:"distance_traveled"`
	TripDays         int     `json:"trip_days"`
	TripPrice        float64 `json:"trip_price"`
	TotalDiscount    float64 `json:"total_discount"`
	DeliveryFee      float64 `json:"delivery_fee"`
	ExcessDistance   float64 `json:"excess_distance"`
	AdditionalUsage  float64 `json:"additional_usage"`
	LateFee          float64 `json:"late_fee"`

	// Derived fields. GrossEarned = NetEarned + TuroFee + OperationExpense
	// holds by construction; it is never sourced from the export.
	GrossEarned      float64 `json:"gross_earned"`
	TuroFee          float64 `json:"turo_fee"`
	OperationExpense float64 `json:"operation_expense"`
	NetEarned        float64 `json:"net_earned"`

	CreatedAt time.Time `json:"created_at"`
}
