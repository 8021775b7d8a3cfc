// Package domain contains the core data types for the fleet back office.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (finance, ingest, repo, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a fleet vehicle listed on the car-sharing platform.
// The license plate is the natural key: import reconciliation matches raw
// export rows to vehicles by plate, never by make/model or platform name.
type Vehicle struct {
	ID           uuid.UUID  `json:"id"`
	LicensePlate string     `json:"license_plate"`
	MakeModel    string     `json:"make_model"`
	OwnerID      *uuid.UUID `json:"owner_id,omitempty"` // nil until a partner claims the vehicle
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
