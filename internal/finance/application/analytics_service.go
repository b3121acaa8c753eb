package application

import (
	"sort"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

const monthlyReportWindowMonths = 6

// UserGoalService provides the savings goal of a user. A missing user record
// yields a zero goal, not an error.
type UserGoalService interface {
	GetGoalAmount(userID string) (decimal.Decimal, error)
}

type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalDue      decimal.Decimal `json:"totalDue"`
	NetWorth      decimal.Decimal `json:"netWorth"`
	GoalAmount    decimal.Decimal `json:"goalAmount"`
}

type MonthlyReportRow struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	MonthName   string          `json:"monthName"`
	Type        string          `json:"type"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type CategoryReportRow struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type AnalyticsService struct {
	repo        domain.TransactionRepository
	goalService UserGoalService
	now         func() time.Time
}

func NewAnalyticsService(repo domain.TransactionRepository, goalService UserGoalService) *AnalyticsService {
	return &AnalyticsService{
		repo:        repo,
		goalService: goalService,
		now:         time.Now,
	}
}

// GetSummary derives realized and projected totals from the user's
// transactions. Completed transactions count toward income/expenses, awaiting
// ones toward the due balance, failed ones toward nothing.
func (s *AnalyticsService) GetSummary(userID string) (*Summary, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	totalDue := decimal.Zero

	for _, transaction := range transactions {
		switch transaction.Status {
		case domain.StatusCompleted:
			if transaction.Type == domain.TypeIncome {
				totalIncome = totalIncome.Add(transaction.Amount)
			} else if transaction.Type == domain.TypeExpense {
				totalExpenses = totalExpenses.Add(transaction.Amount)
			}
		case domain.StatusAwaiting:
			if transaction.Type == domain.TypeIncome {
				totalDue = totalDue.Add(transaction.Amount)
			} else if transaction.Type == domain.TypeExpense {
				totalDue = totalDue.Sub(transaction.Amount)
			}
		}
	}

	goalAmount, err := s.goalService.GetGoalAmount(userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		TotalDue:      totalDue,
		NetWorth:      totalIncome.Sub(totalExpenses),
		GoalAmount:    goalAmount,
	}, nil
}

type monthlyGroupKey struct {
	year  int
	month time.Month
	kind  string
}

// GetMonthlyReport buckets completed income and expense transactions of the
// last six calendar months by (year, month, type). Rows are ordered ascending
// by year and month; within a month income precedes expense.
func (s *AnalyticsService) GetMonthlyReport(userID string) ([]MonthlyReportRow, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windowStart := calendarMonthsAgo(now, monthlyReportWindowMonths)

	groups := make(map[monthlyGroupKey]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Status != domain.StatusCompleted {
			continue
		}
		if !domain.IsValidTransactionType(transaction.Type) {
			continue
		}
		if transaction.Date.Before(windowStart) || transaction.Date.After(now) {
			continue
		}
		key := monthlyGroupKey{
			year:  transaction.Date.Year(),
			month: transaction.Date.Month(),
			kind:  transaction.Type,
		}
		groups[key] = groups[key].Add(transaction.Amount)
	}

	rows := make([]MonthlyReportRow, 0, len(groups))
	for key, total := range groups {
		rows = append(rows, MonthlyReportRow{
			Year:        key.year,
			Month:       int(key.month),
			MonthName:   key.month.String()[:3],
			Type:        key.kind,
			TotalAmount: total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Type == domain.TypeIncome && rows[j].Type == domain.TypeExpense
	})

	return rows, nil
}

// GetCategoryReport sums completed expenses per category, exactly as stored.
// Row order carries no meaning.
func (s *AnalyticsService) GetCategoryReport(userID string) ([]CategoryReportRow, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type != domain.TypeExpense || transaction.Status != domain.StatusCompleted {
			continue
		}
		groups[transaction.Category] = groups[transaction.Category].Add(transaction.Amount)
	}

	rows := make([]CategoryReportRow, 0, len(groups))
	for category, total := range groups {
		rows = append(rows, CategoryReportRow{Category: category, TotalAmount: total})
	}
	return rows, nil
}

// calendarMonthsAgo subtracts whole calendar months, keeping the day of month
// where the target month has it and clamping to the month's last day
// otherwise. time.Time.AddDate is unsuitable here because it normalizes
// overflowing days into the next month.
func calendarMonthsAgo(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - months
	for m < 1 {
		m += 12
		year--
	}
	targetMonth := time.Month(m)
	if last := daysInMonth(year, targetMonth); day > last {
		day = last
	}
	return time.Date(year, targetMonth, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
