package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinityrpm/fleet-office/internal/domain"
	"github.com/trinityrpm/fleet-office/internal/repo"
	"github.com/trinityrpm/fleet-office/testutil"
)

// newTestTx opens a transaction against the test database and rolls it back
// when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; skips otherwise.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

func TestVehicleRepo_CreateAndList_Integration(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	r := repo.NewVehicleRepo(tx)

	created, err := r.Create(ctx, "OR #097NVA", "Jeep Grand Cherokee L 2022")
	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, created.ID, "ID should be DB-generated UUID")
	assert.Nil(t, created.OwnerID)
	assert.False(t, created.CreatedAt.IsZero(), "CreatedAt should be set by DB")

	vehicles, err := r.List(ctx)
	require.NoError(t, err)

	var plates []string
	for _, v := range vehicles {
		plates = append(plates, v.LicensePlate)
	}
	assert.Contains(t, plates, "OR #097NVA")
}

func TestTripRepo_CreateBatchAndExternalIDs_Integration(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	vehicles := repo.NewVehicleRepo(tx)
	trips := repo.NewTripRepo(tx)

	vehicle, err := vehicles.Create(ctx, "WA TMP12", "Tesla Model 3 2023")
	require.NoError(t, err)

	t1 := tripFixture("r-int-1")
	t1.VehicleID = vehicle.ID
	t2 := tripFixture("r-int-2")
	t2.VehicleID = vehicle.ID

	count, err := trips.CreateBatch(ctx, []domain.Trip{t1, t2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	ids, err := trips.ExternalIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "r-int-1")
	assert.Contains(t, ids, "r-int-2")
}
