package budget

import (
	"reflect"
	"testing"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

// 2026-08-12 is a Wednesday; its Sunday-start week runs Aug 9 to Aug 15.
var now = time.Date(2026, 8, 12, 13, 0, 0, 0, time.UTC)

func spend(amount float64, at time.Time) models.Expense {
	return models.Expense{Amount: amount, SpentAt: at}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, models.BudgetStatusHealthy},
		{50, models.BudgetStatusHealthy},
		{70, models.BudgetStatusHealthy},
		{70.1, models.BudgetStatusWarning},
		{75, models.BudgetStatusWarning},
		{90, models.BudgetStatusWarning},
		{90.1, models.BudgetStatusDanger},
		{95, models.BudgetStatusDanger},
		{120, models.BudgetStatusDanger},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.pct); got != tt.want {
			t.Errorf("StatusFor(%.1f) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestSummaryStatuses(t *testing.T) {
	cfg := models.BudgetConfig{Daily: 1000}
	tests := []struct {
		spent float64
		want  string
	}{
		{950, models.BudgetStatusDanger},
		{750, models.BudgetStatusWarning},
		{500, models.BudgetStatusHealthy},
	}
	for _, tt := range tests {
		s := Daily([]models.Expense{spend(tt.spent, now)}, cfg, now)
		if s.Status != tt.want {
			t.Errorf("spent %.0f of 1000: status %q, want %q", tt.spent, s.Status, tt.want)
		}
	}
}

func TestWeeklySumsTheSundayWeek(t *testing.T) {
	expenses := []models.Expense{
		spend(40, time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC)),    // Sunday 00:00, inclusive
		spend(35, time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC)),   // mid-week
		spend(25, time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)), // Saturday night
		spend(99, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)),   // next Sunday, excluded
		spend(99, time.Date(2026, 8, 8, 12, 0, 0, 0, time.UTC)),   // previous week, excluded
	}
	s := Weekly(expenses, models.BudgetConfig{Weekly: 400}, now)
	if s.Spent != 100 {
		t.Fatalf("Spent = %.2f, want 100.00", s.Spent)
	}
	if s.Remaining != 300 {
		t.Fatalf("Remaining = %.2f, want 300.00", s.Remaining)
	}
	if s.PercentUsed != 25 {
		t.Fatalf("PercentUsed = %.2f, want 25.00", s.PercentUsed)
	}
}

func TestDailyBoundsAreHalfOpen(t *testing.T) {
	expenses := []models.Expense{
		spend(10, time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)), // midnight, inclusive
		spend(20, time.Date(2026, 8, 12, 23, 59, 59, 0, time.UTC)),
		spend(99, time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)), // next midnight, excluded
	}
	s := Daily(expenses, models.BudgetConfig{Daily: 100}, now)
	if s.Spent != 30 {
		t.Fatalf("Spent = %.2f, want 30.00", s.Spent)
	}
}

func TestMonthlyOverspendGoesNegative(t *testing.T) {
	expenses := []models.Expense{
		spend(700, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)),
		spend(500, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)),
	}
	s := Monthly(expenses, models.BudgetConfig{Monthly: 1000}, now)
	if s.Spent != 1200 {
		t.Fatalf("Spent = %.2f, want 1200.00", s.Spent)
	}
	if s.Remaining != -200 {
		t.Fatalf("Remaining = %.2f, want -200.00", s.Remaining)
	}
	if s.Status != models.BudgetStatusDanger {
		t.Fatalf("Status = %q, want %q", s.Status, models.BudgetStatusDanger)
	}
}

func TestSummariesAreIdempotent(t *testing.T) {
	expenses := []models.Expense{
		spend(120.55, now),
		spend(80.45, now.AddDate(0, 0, -1)),
	}
	cfg := models.BudgetConfig{Daily: 500, Weekly: 3000, Monthly: 10000}
	first := Summaries(expenses, cfg, now)
	second := Summaries(expenses, cfg, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ across recomputation:\n%+v\n%+v", first, second)
	}
	if len(first) != 3 {
		t.Fatalf("got %d summaries, want 3", len(first))
	}
}

func TestGroupByFirstSeenOrder(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, Category: models.CategoryDelivery},
		{Amount: 50, Category: models.CategoryDineIn},
		{Amount: 30, Category: models.CategoryDelivery},
	}
	got := ByCategory(expenses)
	want := []models.GroupTotal{
		{Key: models.CategoryDelivery, Amount: 130},
		{Key: models.CategoryDineIn, Amount: 50},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ByCategory = %+v, want %+v", got, want)
	}
}

func TestByCuisineSkipsUnlabeled(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, Cuisine: "punjabi"},
		{Amount: 60},
		{Amount: 40, Cuisine: "south_indian"},
	}
	got := ByCuisine(expenses)
	want := []models.GroupTotal{
		{Key: "punjabi", Amount: 100},
		{Key: "south_indian", Amount: 40},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ByCuisine = %+v, want %+v", got, want)
	}
}

func TestTopN(t *testing.T) {
	breakdown := []models.GroupTotal{
		{Key: "a", Amount: 50},
		{Key: "b", Amount: 80},
		{Key: "c", Amount: 50},
		{Key: "d", Amount: 90},
	}
	got := TopN(breakdown, 3)
	// Ties between a and c keep first-seen order.
	want := []models.GroupTotal{
		{Key: "d", Amount: 90},
		{Key: "b", Amount: 80},
		{Key: "a", Amount: 50},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopN = %+v, want %+v", got, want)
	}
	if got := TopN(breakdown, 0); got != nil {
		t.Fatalf("TopN(0) = %+v, want nil", got)
	}
	// Input order untouched.
	if breakdown[0].Key != "a" {
		t.Fatalf("TopN mutated its input: %+v", breakdown)
	}
}
