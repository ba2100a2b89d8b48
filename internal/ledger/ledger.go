package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/lucsky/cuid"

	"github.com/bhukkad-app/bhukkad/internal/budget"
	"github.com/bhukkad-app/bhukkad/internal/eventlog"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

// Ledger is the in-memory expense list, newest first, with an id index for
// O(1) lookup. Mutations apply optimistically and enqueue a sync op; the
// dispatcher reconciles remote results back through ReconcileID/Replace.
// Mutated only from the owning goroutine.
type Ledger struct {
	userID  string
	queue   *models.SyncQueue
	events  *eventlog.Recorder
	records []models.Expense
	index   map[string]int
}

// NewLedger creates an empty ledger wired to the sync queue. events may be nil.
func NewLedger(userID string, queue *models.SyncQueue, events *eventlog.Recorder) *Ledger {
	return &Ledger{
		userID: userID,
		queue:  queue,
		events: events,
		index:  make(map[string]int),
	}
}

func (l *Ledger) reindex(from int) {
	for i := from; i < len(l.records); i++ {
		l.index[l.records[i].ID] = i
	}
}

// Add records the draft under a temporary client id, inserts it at the head
// of the list and enqueues the remote insert. The returned expense is the
// optimistic local record.
func (l *Ledger) Add(draft models.ExpenseDraft) models.Expense {
	spentAt := draft.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}
	split := draft.Split
	if split != nil && split.PartySize > 0 {
		s := *split
		s.Share = s.Total / float64(s.PartySize)
		split = &s
	}

	expense := models.Expense{
		ID:        cuid.New(),
		UserID:    l.userID,
		Amount:    draft.Amount,
		Category:  draft.Category,
		MealType:  draft.MealType,
		Cuisine:   draft.Cuisine,
		Vendor:    draft.Vendor,
		Note:      draft.Note,
		SpentAt:   spentAt,
		Split:     split,
		SyncState: models.ExpensePending,
	}

	l.records = append([]models.Expense{expense}, l.records...)
	l.reindex(0)

	l.queue.Enqueue(&models.SyncOp{
		Type:    models.SyncInsertExpense,
		LocalID: expense.ID,
		Data:    expense,
	})
	l.events.Record(eventlog.EventExpenseAdded, expense)

	return expense
}

// Update applies the patch to the local record and enqueues the remote
// partial update. Remote failures are surfaced by the dispatcher but never
// rolled back here.
func (l *Ledger) Update(id string, patch models.ExpensePatch) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("expense %s not found", id)
	}

	e := &l.records[i]
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.MealType != nil {
		e.MealType = *patch.MealType
	}
	if patch.Cuisine != nil {
		e.Cuisine = *patch.Cuisine
	}
	if patch.Vendor != nil {
		e.Vendor = *patch.Vendor
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	if patch.SpentAt != nil {
		e.SpentAt = *patch.SpentAt
	}

	l.queue.Enqueue(&models.SyncOp{
		Type:    models.SyncUpdateExpense,
		LocalID: id,
		Data:    patch,
	})
	l.events.Record(eventlog.EventExpenseUpdated, *e)

	return nil
}

// Delete removes the record locally and enqueues the remote delete. A remote
// failure leaves local state diverged, so the dispatcher answers it with a
// full refetch.
func (l *Ledger) Delete(id string) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("expense %s not found", id)
	}

	confirmed := l.records[i].SyncState == models.ExpenseConfirmed
	l.records = append(l.records[:i], l.records[i+1:]...)
	delete(l.index, id)
	l.reindex(i)

	// A still-pending record has no server row to delete.
	if confirmed {
		l.queue.Enqueue(&models.SyncOp{
			Type:    models.SyncDeleteExpense,
			LocalID: id,
		})
	}
	l.events.Record(eventlog.EventExpenseDeleted, id)

	return nil
}

// ReconcileID swaps the temporary client id for the server id in place,
// preserving list order. No-op when the record was deleted meanwhile.
func (l *Ledger) ReconcileID(tempID, serverID string) {
	i, ok := l.index[tempID]
	if !ok {
		return
	}
	delete(l.index, tempID)
	l.records[i].ID = serverID
	l.records[i].SyncState = models.ExpenseConfirmed
	l.index[serverID] = i
}

// Replace swaps the whole list for the remote snapshot, newest first.
func (l *Ledger) Replace(expenses []models.Expense) {
	l.records = make([]models.Expense, len(expenses))
	copy(l.records, expenses)
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].SpentAt.After(l.records[j].SpentAt)
	})
	l.index = make(map[string]int, len(l.records))
	l.reindex(0)
}

// Get returns the record by id.
func (l *Ledger) Get(id string) (models.Expense, bool) {
	i, ok := l.index[id]
	if !ok {
		return models.Expense{}, false
	}
	return l.records[i], true
}

// Snapshot returns a copy of the current list, newest first.
func (l *Ledger) Snapshot() []models.Expense {
	out := make([]models.Expense, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

func (l *Ledger) between(start, end time.Time) []models.Expense {
	var out []models.Expense
	for _, e := range l.records {
		if !e.SpentAt.Before(start) && e.SpentAt.Before(end) {
			out = append(out, e)
		}
	}
	return out
}

func total(expenses []models.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// Today returns the records in now's calendar day.
func (l *Ledger) Today(now time.Time) []models.Expense {
	start, end := budget.DayBounds(now)
	return l.between(start, end)
}

// ThisWeek returns the records in now's Sunday-start week.
func (l *Ledger) ThisWeek(now time.Time) []models.Expense {
	start, end := budget.WeekBounds(now)
	return l.between(start, end)
}

// ThisMonth returns the records in now's calendar month.
func (l *Ledger) ThisMonth(now time.Time) []models.Expense {
	start, end := budget.MonthBounds(now)
	return l.between(start, end)
}

// TodayTotal sums today's amounts.
func (l *Ledger) TodayTotal(now time.Time) float64 { return total(l.Today(now)) }

// WeekTotal sums this week's amounts.
func (l *Ledger) WeekTotal(now time.Time) float64 { return total(l.ThisWeek(now)) }

// MonthTotal sums this month's amounts.
func (l *Ledger) MonthTotal(now time.Time) float64 { return total(l.ThisMonth(now)) }

// Recent returns the n most recent records by timestamp.
func (l *Ledger) Recent(n int) []models.Expense {
	if n <= 0 {
		return nil
	}
	out := l.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SpentAt.After(out[j].SpentAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ByCategory groups the full ledger by category.
func (l *Ledger) ByCategory() []models.GroupTotal { return budget.ByCategory(l.records) }

// ByCuisine groups the full ledger by cuisine; unlabeled spends excluded.
func (l *Ledger) ByCuisine() []models.GroupTotal { return budget.ByCuisine(l.records) }

// ByMealType groups the full ledger by meal slot.
func (l *Ledger) ByMealType() []models.GroupTotal { return budget.ByMealType(l.records) }
