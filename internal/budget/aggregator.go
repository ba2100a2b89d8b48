package budget

import (
	"math"
	"sort"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

// Period boundaries are half-open [start, end) in the timestamp's own
// location: calendar day, Sunday-start week, calendar month.

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func weekStart(t time.Time) time.Time {
	d := dayStart(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// DayBounds returns [00:00, 24:00) of t's calendar day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := dayStart(t)
	return start, start.AddDate(0, 0, 1)
}

// WeekBounds returns the Sunday-start week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	start := weekStart(t)
	return start, start.AddDate(0, 0, 7)
}

// MonthBounds returns the calendar month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := monthStart(t)
	return start, start.AddDate(0, 1, 0)
}

// StatusFor classifies percent-of-cap usage. Thresholds: danger above 90,
// warning above 70, healthy otherwise.
func StatusFor(percentUsed float64) string {
	switch {
	case percentUsed > 90:
		return models.BudgetStatusDanger
	case percentUsed > 70:
		return models.BudgetStatusWarning
	default:
		return models.BudgetStatusHealthy
	}
}

func summarize(period string, expenses []models.Expense, cap float64, start, end time.Time) models.PeriodSummary {
	var spent float64
	for _, e := range expenses {
		if within(e.SpentAt, start, end) {
			spent += e.Amount
		}
	}
	pct := round2(100 * spent / cap)
	return models.PeriodSummary{
		Period:      period,
		Spent:       round2(spent),
		Cap:         cap,
		Remaining:   round2(cap - spent),
		PercentUsed: pct,
		Status:      StatusFor(pct),
	}
}

// Daily sums expenses in now's calendar day against cfg.Daily.
func Daily(expenses []models.Expense, cfg models.BudgetConfig, now time.Time) models.PeriodSummary {
	start := dayStart(now)
	return summarize(models.PeriodDaily, expenses, cfg.Daily, start, start.AddDate(0, 0, 1))
}

// Weekly sums expenses in now's Sunday-start week against cfg.Weekly.
func Weekly(expenses []models.Expense, cfg models.BudgetConfig, now time.Time) models.PeriodSummary {
	start := weekStart(now)
	return summarize(models.PeriodWeekly, expenses, cfg.Weekly, start, start.AddDate(0, 0, 7))
}

// Monthly sums expenses in now's calendar month against cfg.Monthly.
func Monthly(expenses []models.Expense, cfg models.BudgetConfig, now time.Time) models.PeriodSummary {
	start := monthStart(now)
	return summarize(models.PeriodMonthly, expenses, cfg.Monthly, start, start.AddDate(0, 1, 0))
}

// Summaries recomputes all three period summaries from the full ledger
// snapshot. Recomputation is deliberate: no incremental state to drift.
func Summaries(expenses []models.Expense, cfg models.BudgetConfig, now time.Time) []models.PeriodSummary {
	return []models.PeriodSummary{
		Daily(expenses, cfg, now),
		Weekly(expenses, cfg, now),
		Monthly(expenses, cfg, now),
	}
}

func groupBy(expenses []models.Expense, key func(models.Expense) string) []models.GroupTotal {
	idx := make(map[string]int)
	out := make([]models.GroupTotal, 0)
	for _, e := range expenses {
		k := key(e)
		if k == "" {
			continue
		}
		i, ok := idx[k]
		if !ok {
			idx[k] = len(out)
			out = append(out, models.GroupTotal{Key: k})
			i = len(out) - 1
		}
		out[i].Amount += e.Amount
	}
	for i := range out {
		out[i].Amount = round2(out[i].Amount)
	}
	return out
}

// ByCategory sums amounts per expense category, in first-seen order.
func ByCategory(expenses []models.Expense) []models.GroupTotal {
	return groupBy(expenses, func(e models.Expense) string { return e.Category })
}

// ByCuisine sums amounts per cuisine label. Expenses without a cuisine are
// excluded rather than bucketed under a synthetic key.
func ByCuisine(expenses []models.Expense) []models.GroupTotal {
	return groupBy(expenses, func(e models.Expense) string { return e.Cuisine })
}

// ByMealType sums amounts per meal slot, in first-seen order.
func ByMealType(expenses []models.Expense) []models.GroupTotal {
	return groupBy(expenses, func(e models.Expense) string { return e.MealType })
}

// ByVendor sums amounts per restaurant/vendor name; unnamed spends excluded.
func ByVendor(expenses []models.Expense) []models.GroupTotal {
	return groupBy(expenses, func(e models.Expense) string { return e.Vendor })
}

// TopN orders breakdown entries by amount descending, stable on ties by
// first-seen order, and takes at most n.
func TopN(breakdown []models.GroupTotal, n int) []models.GroupTotal {
	if n <= 0 {
		return nil
	}
	out := make([]models.GroupTotal, len(breakdown))
	copy(out, breakdown)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
