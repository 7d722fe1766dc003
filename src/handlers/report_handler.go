// src/handlers/report_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/username/brokertax/src/config"
	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/security/validation"
	"github.com/username/brokertax/src/services"
	"github.com/username/brokertax/src/utils"
)

const (
	MessageParsingError    = "Fehler beim Parsen der Datei"
	MessageProcessingError = "Fehler beim Verarbeiten der Datei: "
	MessageSectionNotFound = "Abschnitt nicht gefunden"

	// multipartOverhead is the room left for boundaries and part headers on
	// top of the configured file size limit.
	multipartOverhead = 1 << 20
)

type ReportHandler struct {
	reportService services.ReportService
	cfg           *config.AppConfig
}

func NewReportHandler(service services.ReportService, cfg *config.AppConfig) *ReportHandler {
	return &ReportHandler{
		reportService: service,
		cfg:           cfg,
	}
}

// RegisterRoutes mounts every report and tax data endpoint on r.
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Use(SessionMiddleware)

	r.Post("/upload", h.HandleUpload)
	r.Get("/current-file", h.HandleGetCurrentFile)
	r.Get("/has-uploaded-file", h.HandleHasUploadedFile)
	r.Delete("/uploaded-file", h.HandleClearUploadedFile)

	r.Get("/sections", h.HandleGetSections)
	r.Get("/sections/{sectionName}", h.HandleGetSection)
	r.Get("/sections/{sectionName}/data", h.HandleGetSectionData)
	r.Get("/summary", h.HandleGetSummary)

	r.Route("/tax-data", func(r chi.Router) {
		r.Get("/", h.HandleGetTaxData)
		r.Get("/capital-gains", h.HandleGetCapitalGains)
		r.Get("/dividends", h.HandleGetDividends)
		r.Get("/summary", h.HandleGetTaxSummary)
		r.Get("/foreign-taxes", h.HandleGetForeignTaxes)
		r.Get("/open-lots", h.HandleGetOpenLots)
	})
}

func (h *ReportHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	maxSize := h.cfg.MaxUploadSizeBytes

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctxLogger.Warn("Upload rejected: request too large", "limit", maxSize)
			utils.SendJSONError(w, validation.MessageFileTooLarge, http.StatusBadRequest)
			return
		}
		ctxLogger.Warn("Failed to parse multipart form", "error", err)
		utils.SendJSONError(w, validation.MessageFileEmpty, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		ctxLogger.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, validation.MessageFileEmpty, http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileName := validation.SanitizeText(filepath.Base(fileHeader.Filename))
	ctxLogger.Info("Received file upload request", "fileName", fileName, "size", fileHeader.Size)

	if fileHeader.Size == 0 {
		utils.SendJSONError(w, validation.MessageFileEmpty, http.StatusBadRequest)
		return
	}
	if fileHeader.Size > maxSize {
		ctxLogger.Warn("Uploaded file too large", "fileSize", fileHeader.Size, "limit", maxSize)
		utils.SendJSONError(w, validation.MessageFileTooLarge, http.StatusBadRequest)
		return
	}
	if err := validation.ValidateFileName(fileHeader.Filename); err != nil {
		utils.SendJSONError(w, validation.Message(err), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateClientContentType(fileHeader.Header.Get("Content-Type")); err != nil {
		utils.SendJSONError(w, validation.Message(err), http.StatusBadRequest)
		return
	}
	detected, err := validation.ValidateFileContent(file)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidFile) {
			utils.SendJSONError(w, validation.Message(err), http.StatusBadRequest)
			return
		}
		ctxLogger.Error("Failed to inspect uploaded file", "error", err)
		utils.SendJSONError(w, MessageProcessingError+err.Error(), http.StatusInternalServerError)
		return
	}
	ctxLogger.Debug("File content validated", "detectedType", detected)

	sessionID, ok := GetSessionIDFromContext(r.Context())
	if !ok {
		sessionID = h.reportService.NewSessionID()
		ctxLogger.Info("Starting new session", "sessionID", sessionID)
	}

	result, err := h.reportService.Import(r.Context(), sessionID, fileName, file)
	if err != nil {
		if errors.Is(err, services.ErrParsingFailed) {
			utils.SendJSONError(w, MessageParsingError, http.StatusBadRequest)
			return
		}
		utils.SendJSONError(w, MessageProcessingError+err.Error(), http.StatusInternalServerError)
		return
	}

	h.setSession(w, r, sessionID)
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *ReportHandler) setSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	w.Header().Set(SessionHeader, sessionID)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionOf returns the request's session id, or "" when there is none. The
// service treats "" as a session without a report.
func sessionOf(r *http.Request) string {
	id, _ := GetSessionIDFromContext(r.Context())
	return id
}

func (h *ReportHandler) HandleGetCurrentFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, h.reportService.CurrentFileName(sessionOf(r)))
}

func (h *ReportHandler) HandleHasUploadedFile(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.reportService.HasReport(sessionOf(r)))
}

func (h *ReportHandler) HandleClearUploadedFile(w http.ResponseWriter, r *http.Request) {
	if id := sessionOf(r); id != "" {
		h.reportService.Clear(r.Context(), id)
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ReportHandler) HandleGetSections(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Report(sessionOf(r))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.WriteJSON(w, http.StatusOK, report.Sections)
}

func (h *ReportHandler) HandleGetSection(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookupSection(r)
	if !ok {
		utils.SendJSONError(w, MessageSectionNotFound, http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, section)
}

func (h *ReportHandler) HandleGetSectionData(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookupSection(r)
	if !ok {
		utils.SendJSONError(w, MessageSectionNotFound, http.StatusNotFound)
		return
	}
	rows := section.Rows
	if rows == nil {
		rows = []models.Row{}
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// lookupSection resolves the {sectionName} path value, which must be a
// normalized key, against the session's report.
func (h *ReportHandler) lookupSection(r *http.Request) (*models.SectionData, bool) {
	key := chi.URLParam(r, "sectionName")
	if err := validation.ValidateSectionKey(key); err != nil {
		logger.FromContext(r.Context()).Debug("Invalid section key requested", "error", err)
		return nil, false
	}
	report, err := h.reportService.Report(sessionOf(r))
	if err != nil {
		return nil, false
	}
	return report.Section(key)
}

func (h *ReportHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.reportService.Summary(sessionOf(r)))
}
