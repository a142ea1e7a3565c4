package domain

import "time"

// ExportRecord describes one report written to disk.
type ExportRecord struct {
	ID        string
	Filename  string
	Format    ReportFormat
	Bytes     int
	CreatedAt time.Time
}
