// src/services/interfaces.go
package services

import (
	"context"
	"errors"
	"io"

	"github.com/username/brokertax/src/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

// UploadResult is returned after a successful import.
type UploadResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	SectionCount int      `json:"sectionCount"`
	SectionNames []string `json:"sectionNames"`
	FileName     string   `json:"fileName"`
	SessionID    string   `json:"sessionId"`
}

// ReportSummary describes the report currently held by a session.
type ReportSummary struct {
	SectionCount    int      `json:"sectionCount"`
	SectionNames    []string `json:"sectionNames"`
	TotalDataRows   int      `json:"totalDataRows"`
	CurrentFileName *string  `json:"currentFileName"`
}

// Define common service errors
var (
	ErrParsingFailed    = errors.New("csv parsing failed")
	ErrProcessingFailed = errors.New("file processing failed")
	ErrNoReport         = errors.New("no report uploaded for session")
)

// TaxExtractor computes tax data for one report and year.
type TaxExtractor interface {
	ExtractTaxData(report *models.Report, taxYear int) models.TaxRelevantData
}

// ReportService owns the last imported report of every session.
type ReportService interface {
	NewSessionID() string
	Import(ctx context.Context, sessionID, fileName string, r io.Reader) (*UploadResult, error)
	HasReport(sessionID string) bool
	Report(sessionID string) (*models.Report, error)
	CurrentFileName(sessionID string) string
	Clear(ctx context.Context, sessionID string)
	Summary(sessionID string) ReportSummary
	TaxData(ctx context.Context, sessionID string, taxYear int) (*models.TaxRelevantData, error)
}
