package models

// Metadata describes a consolidated extraction run.
type Metadata struct {
	// LastUpdated is the RFC 3339 time the report was built.
	LastUpdated string `json:"last_updated"`
	// TotalFilesProcessed is the number of workbooks attempted.
	TotalFilesProcessed int `json:"total_files_processed"`
	// TotalEntries is len(Cutoffs).
	TotalEntries int `json:"total_entries"`
}

// Report is the top-level output document.
type Report struct {
	Metadata Metadata `json:"metadata"`
	Cutoffs  []Record `json:"cutoffs"`
}
