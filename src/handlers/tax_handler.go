// src/handlers/tax_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/security/validation"
	"github.com/username/brokertax/src/services"
	"github.com/username/brokertax/src/utils"
)

func (h *ReportHandler) HandleGetTaxData(w http.ResponseWriter, r *http.Request) {
	h.serveTaxData(w, r, "taxData", func(d models.TaxRelevantData) interface{} { return d })
}

func (h *ReportHandler) HandleGetCapitalGains(w http.ResponseWriter, r *http.Request) {
	h.serveTaxData(w, r, "capitalGains", func(d models.TaxRelevantData) interface{} { return d.CapitalGains })
}

func (h *ReportHandler) HandleGetDividends(w http.ResponseWriter, r *http.Request) {
	h.serveTaxData(w, r, "dividends", func(d models.TaxRelevantData) interface{} { return d.Dividends })
}

func (h *ReportHandler) HandleGetTaxSummary(w http.ResponseWriter, r *http.Request) {
	h.serveTaxData(w, r, "summary", func(d models.TaxRelevantData) interface{} { return d.Summary })
}

func (h *ReportHandler) HandleGetForeignTaxes(w http.ResponseWriter, r *http.Request) {
	h.serveTaxData(w, r, "foreignTaxes", func(d models.TaxRelevantData) interface{} { return d.ForeignTaxes })
}

func (h *ReportHandler) HandleGetOpenLots(w http.ResponseWriter, r *http.Request) {
	h.serveTaxData(w, r, "openLots", func(d models.TaxRelevantData) interface{} { return d.OpenLots })
}

// serveTaxData answers 204 when the session has no report. The projected
// payload is served with an ETag and honours If-None-Match.
func (h *ReportHandler) serveTaxData(w http.ResponseWriter, r *http.Request, part string, project func(models.TaxRelevantData) interface{}) {
	ctxLogger := logger.FromContext(r.Context())

	taxYear, err := validation.ValidateTaxYear(r.URL.Query().Get("taxYear"), h.cfg.DefaultTaxYear)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.reportService.TaxData(r.Context(), sessionOf(r), taxYear)
	if err != nil {
		if errors.Is(err, services.ErrNoReport) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		ctxLogger.Error("Error extracting tax data", "part", part, "taxYear", taxYear, "error", err)
		utils.SendJSONError(w, MessageProcessingError+err.Error(), http.StatusInternalServerError)
		return
	}

	payload := project(withEmptyCollections(*data))

	currentETag, etagErr := utils.GenerateETag(payload)
	w.Header().Set("Cache-Control", "no-cache, private")
	if etagErr == nil {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, cETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(cETag) == quotedETag {
				ctxLogger.Debug("ETag match for tax data", "part", part, "taxYear", taxYear)
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		ctxLogger.Error("Failed to generate ETag for tax data", "part", part, "error", etagErr)
	}

	utils.WriteJSON(w, http.StatusOK, payload)
}

// withEmptyCollections makes nil lists encode as [] instead of null. d is a
// copy so the cached value is left alone.
func withEmptyCollections(d models.TaxRelevantData) models.TaxRelevantData {
	if d.CapitalGains == nil {
		d.CapitalGains = []models.CapitalGain{}
	}
	if d.Dividends == nil {
		d.Dividends = []models.Dividend{}
	}
	if d.ForeignTaxes == nil {
		d.ForeignTaxes = []models.ForeignTax{}
	}
	if d.OpenLots == nil {
		d.OpenLots = []models.OpenLot{}
	}
	return d
}
