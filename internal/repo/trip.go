package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// TripRepo defines the persistence operations the import pipeline needs for
// trips. Trips are append-only, so there is no update or delete here.
type TripRepo interface {
	// ExternalIDs returns the set of reservation ids already stored, used to
	// drop re-uploaded rows before any persistence happens.
	ExternalIDs(ctx context.Context) (map[string]struct{}, error)

	// CreateBatch inserts all trips in one bulk operation and returns the
	// number of rows written. All-or-nothing: a constraint violation on any
	// row fails the whole batch.
	CreateBatch(ctx context.Context, trips []domain.Trip) (int64, error)
}

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx or a pgxmock pool.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// ExternalIDs returns every stored reservation id as a set.
func (r *pgTripRepo) ExternalIDs(ctx context.Context) (map[string]struct{}, error) {
	const q = `SELECT trip_id FROM trips`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ExternalIDs: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ExternalIDs: scan: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ExternalIDs: rows: %w", err)
	}

	return ids, nil
}

// tripCopyColumns lists the columns written by CreateBatch, in the order
// copyRow emits values. id and created_at are left to their DB defaults.
var tripCopyColumns = []string{
	"trip_id", "vehicle_id", "trip_start", "trip_end",
	"distance_traveled", "trip_days", "trip_price", "total_discount",
	"delivery_fee", "excess_distance", "additional_usage", "late_fee",
	"gross_earned", "turo_fee", "operation_expense", "net_earned",
}

// CreateBatch bulk-inserts trips via the Postgres COPY protocol.
func (r *pgTripRepo) CreateBatch(ctx context.Context, trips []domain.Trip) (int64, error) {
	if len(trips) == 0 {
		return 0, nil
	}

	count, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"trips"},
		tripCopyColumns,
		pgx.CopyFromSlice(len(trips), func(i int) ([]any, error) {
			return copyRow(trips[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.CreateBatch: %w", err)
	}
	return count, nil
}

// copyRow flattens a trip into COPY values matching tripCopyColumns.
func copyRow(t domain.Trip) []any {
	return []any{
		t.TripID, t.VehicleID, t.TripStart, t.TripEnd,
		t.DistanceTraveled, t.TripDays, t.TripPrice, t.TotalDiscount,
		t.DeliveryFee, t.ExcessDistance, t.AdditionalUsage, t.LateFee,
		t.GrossEarned, t.TuroFee, t.OperationExpense, t.NetEarned,
	}
}
