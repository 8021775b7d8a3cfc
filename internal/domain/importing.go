package domain

// ImportRecord is one raw row of a platform CSV export, keyed by column
// name. It is deliberately schemaless: the export's column set is not
// contractually fixed, so fields are validated lazily — a missing column
// simply reads as the empty string and normalizes to zero.
type ImportRecord map[string]string

// Get returns the value of the named column, or "" when absent.
func (r ImportRecord) Get(column string) string {
	return r[column]
}

// ImportResult is the success payload of one ingestion call.
type ImportResult struct {
	// RecordsProcessed is the number of trips newly inserted by this call.
	RecordsProcessed int `json:"recordsProcessed"`
	// Message carries an explanatory note for edge outcomes, such as an
	// upload in which every row was already imported. Empty otherwise.
	Message string `json:"message,omitempty"`
}
