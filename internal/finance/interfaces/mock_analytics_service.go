package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
)

// MockAnalyticsService implements AnalyticsServiceInterface for handler tests.
type MockAnalyticsService struct {
	Summary    *application.Summary
	Monthly    []application.MonthlyReportRow
	Categories []application.CategoryReportRow
	Err        error
}

func (m *MockAnalyticsService) GetSummary(userID string) (*application.Summary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

func (m *MockAnalyticsService) GetMonthlyReport(userID string) ([]application.MonthlyReportRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Monthly, nil
}

func (m *MockAnalyticsService) GetCategoryReport(userID string) ([]application.CategoryReportRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}
