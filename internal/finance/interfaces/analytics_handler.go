package interfaces

import (
	"log"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
)

type AnalyticsServiceInterface interface {
	GetSummary(userID string) (*application.Summary, error)
	GetMonthlyReport(userID string) ([]application.MonthlyReportRow, error)
	GetCategoryReport(userID string) ([]application.CategoryReportRow, error)
}

type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewAnalyticsHandler(
	service AnalyticsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *AnalyticsHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &AnalyticsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetSummary(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

func (h *AnalyticsHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.GetMonthlyReport(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve monthly report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}

func (h *AnalyticsHandler) GetCategoryReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.GetCategoryReport(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve category report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}
