// Package handler implements the HTTP handlers for the fleet back office API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, imports.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// ImportServicer defines the ingestion operation the import handler depends
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or ingest pipeline.
type ImportServicer interface {
	Import(ctx context.Context, csvContent, fileName string) (domain.ImportResult, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	imports ImportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(imports ImportServicer) *Server {
	return &Server{imports: imports}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}
