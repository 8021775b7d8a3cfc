package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// candidateVehicle is a (plate, make/model) pair extracted from the upload.
type candidateVehicle struct {
	licensePlate string
	makeModel    string
}

// reconcileVehicles resolves every record's vehicle against storage and
// returns a complete plate→vehicle-id mapping for the batch.
//
// Two phases: first collect the distinct plates present in the upload
// (first occurrence wins, so the make/model captured comes from the first
// row mentioning a plate), then load all stored vehicles once and create
// any plate not yet stored. Each created vehicle is registered in the
// mapping immediately so later rows resolve against it.
//
// Creation is the pipeline's one non-atomic side effect: vehicles committed
// here survive even if the trip insert later fails. A vehicle whose plate
// changes (temporary → permanent) is not re-matched; the operational
// procedure is to delete the stale vehicle and re-run ingestion.
func (s *Service) reconcileVehicles(ctx context.Context, records []domain.ImportRecord) (map[string]uuid.UUID, error) {
	var candidates []candidateVehicle
	seen := make(map[string]struct{})
	for _, rec := range records {
		plate := LicensePlate(rec.Get(colVehicle))
		if plate == "" {
			continue
		}
		if _, ok := seen[plate]; ok {
			continue
		}
		seen[plate] = struct{}{}
		candidates = append(candidates, candidateVehicle{
			licensePlate: plate,
			makeModel:    rec.Get(colVehicleName),
		})
	}

	stored, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	mapping := make(map[string]uuid.UUID, len(stored))
	for _, v := range stored {
		mapping[v.LicensePlate] = v.ID
	}

	for _, c := range candidates {
		if _, ok := mapping[c.licensePlate]; ok {
			continue
		}
		created, err := s.vehicles.Create(ctx, c.licensePlate, c.makeModel)
		if err != nil {
			return nil, fmt.Errorf("create vehicle %q: %w", c.licensePlate, err)
		}
		mapping[c.licensePlate] = created.ID
	}

	return mapping, nil
}
