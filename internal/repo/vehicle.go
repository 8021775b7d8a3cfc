// Package repo contains all database access logic for the fleet back office.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly lets integration
// tests pass a transaction that is rolled back after each test, and lets unit
// tests pass a pgxmock pool.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// VehicleRepo defines the persistence operations the import pipeline needs
// for vehicles. The ingest service depends on this interface, not the
// concrete Postgres implementation, so it can be unit-tested with a mock.
type VehicleRepo interface {
	// List returns every stored vehicle. The reconciler loads the full set
	// once per ingestion call to build its plate→id mapping.
	List(ctx context.Context) ([]domain.Vehicle, error)

	// Create inserts a new vehicle and returns the persisted record with its
	// DB-generated id. The license_plate unique constraint is the only guard
	// against two concurrent ingestions racing on the same new plate.
	Create(ctx context.Context, licensePlate, makeModel string) (domain.Vehicle, error)
}

type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

// List returns all vehicles ordered by make_model.
func (r *pgVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `
		SELECT id, license_plate, make_model, owner_id, created_at, updated_at
		FROM vehicles
		ORDER BY make_model ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.List: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: rows: %w", err)
	}

	return vehicles, nil
}

// Create inserts a new vehicle row and returns the full persisted record.
func (r *pgVehicleRepo) Create(ctx context.Context, licensePlate, makeModel string) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (license_plate, make_model)
		VALUES (@license_plate, @make_model)
		RETURNING id, license_plate, make_model, owner_id, created_at, updated_at`

	args := pgx.NamedArgs{
		"license_plate": licensePlate,
		"make_model":    makeModel,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanVehicle maps a single database row into a domain.Vehicle.
// It handles the UUID and nullable owner_id conversions.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v       domain.Vehicle
		id      pgtype.UUID
		ownerID pgtype.UUID
	)

	err := s.Scan(&id, &v.LicensePlate, &v.MakeModel, &ownerID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	if ownerID.Valid {
		owner := uuid.UUID(ownerID.Bytes)
		v.OwnerID = &owner
	}

	return v, nil
}
