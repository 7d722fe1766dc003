// src/services/report_service.go
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/parsers"
)

const (
	ckTaxData              = "res_tax_data_content_%s_year_%d"
	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
	MessageFileUploaded    = "Datei erfolgreich hochgeladen"
)

type reportServiceImpl struct {
	sessions        *SessionStore
	taxExtractor    TaxExtractor
	interpreters    []parsers.Interpreter
	resultCache     *cache.Cache
	defaultFileName string
}

// NewReportService wires the session store, the tax extractor and the result
// cache. With no interpreters the parsers' defaults are used.
func NewReportService(
	sessions *SessionStore,
	taxExtractor TaxExtractor,
	interpreters []parsers.Interpreter,
	resultCache *cache.Cache,
	defaultFileName string,
) ReportService {
	return &reportServiceImpl{
		sessions:        sessions,
		taxExtractor:    taxExtractor,
		interpreters:    interpreters,
		resultCache:     resultCache,
		defaultFileName: defaultFileName,
	}
}

func (s *reportServiceImpl) NewSessionID() string {
	return uuid.NewString()
}

// Import parses r and, on success, replaces the session's report. A failed
// import leaves the previous report in place.
func (s *reportServiceImpl) Import(ctx context.Context, sessionID, fileName string, r io.Reader) (*UploadResult, error) {
	log := logger.FromContext(ctx)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", ErrProcessingFailed)
	}

	hasher := sha256.New()
	report, err := parsers.Import(io.TeeReader(r, hasher), s.interpreters...)
	if err != nil {
		var perr *parsers.ParseError
		if errors.As(err, &perr) {
			log.Warn("Failed to parse uploaded file", "fileName", fileName, "line", perr.Line, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrParsingFailed, err)
		}
		log.Error("Failed to read uploaded file", "fileName", fileName, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrProcessingFailed, err)
	}
	contentHash := hex.EncodeToString(hasher.Sum(nil))

	s.sessions.update(sessionID, func(sess *session) {
		sess.replace(report, fileName, contentHash)
	})

	keys := report.Keys()
	log.Info("File uploaded successfully", "fileName", fileName, "sections", len(keys), "rows", report.TotalRows())
	return &UploadResult{
		Success:      true,
		Message:      MessageFileUploaded,
		SectionCount: len(keys),
		SectionNames: keys,
		FileName:     fileName,
		SessionID:    sessionID,
	}, nil
}

func (s *reportServiceImpl) current(sessionID string) (sessionSnapshot, bool) {
	sess, ok := s.sessions.get(sessionID)
	if !ok {
		return sessionSnapshot{}, false
	}
	snap := sess.snapshot()
	return snap, snap.report != nil
}

func (s *reportServiceImpl) HasReport(sessionID string) bool {
	_, ok := s.current(sessionID)
	return ok
}

// Report returns the session's report. The report is shared and must be
// treated as read-only.
func (s *reportServiceImpl) Report(sessionID string) (*models.Report, error) {
	snap, ok := s.current(sessionID)
	if !ok {
		return nil, ErrNoReport
	}
	return snap.report, nil
}

func (s *reportServiceImpl) CurrentFileName(sessionID string) string {
	if snap, ok := s.current(sessionID); ok && snap.fileName != "" {
		return snap.fileName
	}
	return s.defaultFileName
}

func (s *reportServiceImpl) Clear(ctx context.Context, sessionID string) {
	s.sessions.delete(sessionID)
	logger.FromContext(ctx).Info("Uploaded file cleared, reset to default", "defaultFileName", s.defaultFileName)
}

func (s *reportServiceImpl) Summary(sessionID string) ReportSummary {
	snap, ok := s.current(sessionID)
	if !ok {
		return ReportSummary{SectionNames: []string{}}
	}
	fileName := snap.fileName
	keys := snap.report.Keys()
	return ReportSummary{
		SectionCount:    len(keys),
		SectionNames:    keys,
		TotalDataRows:   snap.report.TotalRows(),
		CurrentFileName: &fileName,
	}
}

// TaxData returns the tax data of the session's report for taxYear. Results
// are cached by file content and year because extraction is deterministic.
func (s *reportServiceImpl) TaxData(ctx context.Context, sessionID string, taxYear int) (*models.TaxRelevantData, error) {
	snap, ok := s.current(sessionID)
	if !ok {
		return nil, ErrNoReport
	}

	cacheKey := fmt.Sprintf(ckTaxData, snap.contentHash, taxYear)
	if cached, found := s.resultCache.Get(cacheKey); found {
		logger.FromContext(ctx).Debug("Tax data served from cache", "taxYear", taxYear)
		return cached.(*models.TaxRelevantData), nil
	}

	data := s.taxExtractor.ExtractTaxData(snap.report, taxYear)
	s.resultCache.Set(cacheKey, &data, cache.DefaultExpiration)
	return &data, nil
}
