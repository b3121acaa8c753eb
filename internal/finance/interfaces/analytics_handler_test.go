package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetSummary_Success(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/api/analytics/summary", "")
	w := httptest.NewRecorder()

	mockService := &MockAnalyticsService{
		Summary: &application.Summary{
			TotalIncome:   decimal.NewFromInt(1000),
			TotalExpenses: decimal.NewFromInt(400),
			TotalDue:      decimal.NewFromInt(200),
			NetWorth:      decimal.NewFromInt(600),
			GoalAmount:    decimal.NewFromInt(5000),
		},
	}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)
	handler.GetSummary(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data map[string]string `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "1000", response.Data["totalIncome"])
	assert.Equal(t, "600", response.Data["netWorth"])
	assert.Equal(t, "5000", response.Data["goalAmount"])
}

func TestGetSummary_MissingSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	w := httptest.NewRecorder()

	handler := NewAnalyticsHandler(&MockAnalyticsService{}, respondJSON, respondError)
	handler.GetSummary(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestGetMonthlyReport_Success(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/api/analytics/monthly", "")
	w := httptest.NewRecorder()

	mockService := &MockAnalyticsService{
		Monthly: []application.MonthlyReportRow{
			{Year: 2025, Month: 7, MonthName: "Jul", Type: "income", TotalAmount: decimal.NewFromInt(1500)},
			{Year: 2025, Month: 7, MonthName: "Jul", Type: "expense", TotalAmount: decimal.NewFromInt(700)},
		},
	}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)
	handler.GetMonthlyReport(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data []application.MonthlyReportRow `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response.Data, 2)
	assert.Equal(t, "Jul", response.Data[0].MonthName)
}

func TestGetCategoryReport_ServiceError(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/api/analytics/categories", "")
	w := httptest.NewRecorder()

	mockService := &MockAnalyticsService{Err: errors.New("db down")}
	handler := NewAnalyticsHandler(mockService, respondJSON, respondError)
	handler.GetCategoryReport(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Failed to retrieve category report", response["message"])
}
