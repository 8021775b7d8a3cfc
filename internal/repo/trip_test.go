package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinityrpm/fleet-office/internal/domain"
	"github.com/trinityrpm/fleet-office/internal/repo"
)

// tripColumns matches tripCopyColumns in trip.go.
var tripColumns = []string{
	"trip_id", "vehicle_id", "trip_start", "trip_end",
	"distance_traveled", "trip_days", "trip_price", "total_discount",
	"delivery_fee", "excess_distance", "additional_usage", "late_fee",
	"gross_earned", "turo_fee", "operation_expense", "net_earned",
}

func tripFixture(tripID string) domain.Trip {
	return domain.Trip{
		TripID:           tripID,
		VehicleID:        uuid.New(),
		TripStart:        time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC),
		TripEnd:          time.Date(2023, 6, 4, 10, 0, 0, 0, time.UTC),
		DistanceTraveled: 120,
		TripDays:         3,
		TripPrice:        100,
		DeliveryFee:      10,
		TuroFee:          110.0 / 9.0,
		OperationExpense: 20,
		NetEarned:        90,
		GrossEarned:      90 + 110.0/9.0 + 20,
	}
}

func TestTripRepo_ExternalIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT trip_id FROM trips").
		WillReturnRows(pgxmock.NewRows([]string{"trip_id"}).
			AddRow("r-1").
			AddRow("r-2"))

	r := repo.NewTripRepo(mock)
	ids, err := r.ExternalIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"r-1": {}, "r-2": {}}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_ExternalIDs_EmptyTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT trip_id FROM trips").
		WillReturnRows(pgxmock.NewRows([]string{"trip_id"}))

	r := repo.NewTripRepo(mock)
	ids, err := r.ExternalIDs(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_CreateBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"trips"}, tripColumns).WillReturnResult(2)

	r := repo.NewTripRepo(mock)
	count, err := r.CreateBatch(context.Background(), []domain.Trip{
		tripFixture("r-1"),
		tripFixture("r-2"),
	})

	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepo_CreateBatch_EmptySliceSkipsDB(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// No CopyFrom expectation: an empty batch must not reach the database.
	r := repo.NewTripRepo(mock)
	count, err := r.CreateBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
