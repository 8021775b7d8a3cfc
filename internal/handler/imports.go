package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// CreateImportRequest is the body of POST /api/imports: the raw CSV text of
// a platform trip export plus a file-name label used only for logging.
type CreateImportRequest struct {
	CSVContent string `json:"csvContent"`
	FileName   string `json:"fileName"`
}

// CreateImportResponse is the success body of POST /api/imports.
type CreateImportResponse struct {
	Success          bool   `json:"success"`
	RecordsProcessed int    `json:"recordsProcessed"`
	Message          string `json:"message,omitempty"`
}

// CreateImport handles POST /api/imports.
// It ingests one CSV export and reports how many trips were inserted.
// Pipeline failures surface as a single generic 500; partial results are
// never reported.
func (s *Server) CreateImport(w http.ResponseWriter, r *http.Request) {
	var req CreateImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body must be JSON with csvContent and fileName")
		return
	}
	if strings.TrimSpace(req.CSVContent) == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "csvContent is required")
		return
	}

	result, err := s.imports.Import(r.Context(), req.CSVContent, req.FileName)
	if err != nil {
		if errors.Is(err, domain.ErrIngestFailed) {
			writeError(w, http.StatusInternalServerError, "ingest_failed", domain.ErrIngestFailed.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, CreateImportResponse{
		Success:          true,
		RecordsProcessed: result.RecordsProcessed,
		Message:          result.Message,
	})
}
