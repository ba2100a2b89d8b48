package ledger

import (
	"testing"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

var noon = time.Date(2026, 8, 12, 12, 0, 0, 0, time.UTC)

func newTestLedger() *Ledger {
	return NewLedger("u1", models.NewSyncQueue(), nil)
}

func TestAddIsOptimistic(t *testing.T) {
	l := newTestLedger()
	e := l.Add(models.ExpenseDraft{Amount: 250, Category: models.CategoryDelivery, MealType: models.MealSlotLunch, SpentAt: noon})

	if e.ID == "" {
		t.Fatal("expected a client-assigned id")
	}
	if e.SyncState != models.ExpensePending {
		t.Fatalf("SyncState = %q, want %q", e.SyncState, models.ExpensePending)
	}
	if got, ok := l.Get(e.ID); !ok || got.Amount != 250 {
		t.Fatalf("Get(%s) = %+v, %v", e.ID, got, ok)
	}
	if l.queue.Len() != 1 {
		t.Fatalf("queue len = %d, want 1", l.queue.Len())
	}
	op := l.queue.Peek()
	if op.Type != models.SyncInsertExpense || op.LocalID != e.ID {
		t.Fatalf("queued op = %+v", op)
	}
}

func TestAddComputesSplitShare(t *testing.T) {
	l := newTestLedger()
	e := l.Add(models.ExpenseDraft{
		Amount:  300,
		SpentAt: noon,
		Split:   &models.SplitBill{Total: 1200, PartySize: 4},
	})
	if e.Split == nil || e.Split.Share != 300 {
		t.Fatalf("Split = %+v, want share 300", e.Split)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	l := newTestLedger()
	first := l.Add(models.ExpenseDraft{Amount: 10, SpentAt: noon})
	second := l.Add(models.ExpenseDraft{Amount: 20, SpentAt: noon.Add(time.Hour)})

	snap := l.Snapshot()
	if len(snap) != 2 || snap[0].ID != second.ID || snap[1].ID != first.ID {
		t.Fatalf("snapshot order wrong: %+v", snap)
	}
}

func TestUpdateAppliesPatch(t *testing.T) {
	l := newTestLedger()
	e := l.Add(models.ExpenseDraft{Amount: 100, Category: models.CategoryDineIn, SpentAt: noon})

	amount := 150.0
	note := "tip included"
	if err := l.Update(e.ID, models.ExpensePatch{Amount: &amount, Note: &note}); err != nil {
		t.Fatal(err)
	}

	got, _ := l.Get(e.ID)
	if got.Amount != 150 || got.Note != "tip included" {
		t.Fatalf("patched record = %+v", got)
	}
	if got.Category != models.CategoryDineIn {
		t.Fatalf("untouched field changed: %q", got.Category)
	}
	if err := l.Update("missing", models.ExpensePatch{}); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestDeletePendingSkipsRemoteDelete(t *testing.T) {
	l := newTestLedger()
	e := l.Add(models.ExpenseDraft{Amount: 100, SpentAt: noon})
	l.queue.Dequeue() // drop the insert op

	if err := l.Delete(e.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := l.Get(e.ID); ok {
		t.Fatal("record still present after delete")
	}
	// Nothing was ever confirmed remotely, so no delete op.
	if l.queue.Len() != 0 {
		t.Fatalf("queue len = %d, want 0", l.queue.Len())
	}
}

func TestDeleteConfirmedEnqueuesRemoteDelete(t *testing.T) {
	l := newTestLedger()
	e := l.Add(models.ExpenseDraft{Amount: 100, SpentAt: noon})
	l.queue.Dequeue()
	l.ReconcileID(e.ID, "srv-1")

	if err := l.Delete("srv-1"); err != nil {
		t.Fatal(err)
	}
	op := l.queue.Dequeue()
	if op == nil || op.Type != models.SyncDeleteExpense || op.LocalID != "srv-1" {
		t.Fatalf("queued op = %+v", op)
	}
	if err := l.Delete("srv-1"); err == nil {
		t.Fatal("expected error deleting twice")
	}
}

func TestReconcileIDPreservesOrder(t *testing.T) {
	l := newTestLedger()
	a := l.Add(models.ExpenseDraft{Amount: 10, SpentAt: noon})
	b := l.Add(models.ExpenseDraft{Amount: 20, SpentAt: noon.Add(time.Hour)})

	l.ReconcileID(a.ID, "srv-a")

	snap := l.Snapshot()
	if snap[0].ID != b.ID || snap[1].ID != "srv-a" {
		t.Fatalf("order changed after reconcile: %+v", snap)
	}
	if snap[1].SyncState != models.ExpenseConfirmed {
		t.Fatalf("SyncState = %q, want %q", snap[1].SyncState, models.ExpenseConfirmed)
	}
	if _, ok := l.Get(a.ID); ok {
		t.Fatal("temp id still resolvable")
	}
	if _, ok := l.Get("srv-a"); !ok {
		t.Fatal("server id not resolvable")
	}

	// Reconciling a record deleted meanwhile is a no-op.
	l.ReconcileID("gone", "srv-x")
}

func TestPeriodTotals(t *testing.T) {
	l := newTestLedger()
	l.Add(models.ExpenseDraft{Amount: 120, SpentAt: noon})
	l.Add(models.ExpenseDraft{Amount: 80, SpentAt: noon.AddDate(0, 0, -2)}) // Monday, same week
	l.Add(models.ExpenseDraft{Amount: 60, SpentAt: noon.AddDate(0, 0, -7)}) // previous week, same month
	l.Add(models.ExpenseDraft{Amount: 40, SpentAt: noon.AddDate(0, -1, 0)}) // previous month

	if got := l.TodayTotal(noon); got != 120 {
		t.Errorf("TodayTotal = %.2f, want 120.00", got)
	}
	if got := l.WeekTotal(noon); got != 200 {
		t.Errorf("WeekTotal = %.2f, want 200.00", got)
	}
	if got := l.MonthTotal(noon); got != 260 {
		t.Errorf("MonthTotal = %.2f, want 260.00", got)
	}
}

func TestRecent(t *testing.T) {
	l := newTestLedger()
	l.Add(models.ExpenseDraft{Amount: 1, SpentAt: noon.Add(-2 * time.Hour)})
	newest := l.Add(models.ExpenseDraft{Amount: 2, SpentAt: noon})
	l.Add(models.ExpenseDraft{Amount: 3, SpentAt: noon.Add(-time.Hour)})

	got := l.Recent(2)
	if len(got) != 2 || got[0].ID != newest.ID {
		t.Fatalf("Recent(2) = %+v", got)
	}
}

func TestReplaceSortsNewestFirst(t *testing.T) {
	l := newTestLedger()
	l.Replace([]models.Expense{
		{ID: "old", Amount: 1, SpentAt: noon.Add(-time.Hour), SyncState: models.ExpenseConfirmed},
		{ID: "new", Amount: 2, SpentAt: noon, SyncState: models.ExpenseConfirmed},
	})
	snap := l.Snapshot()
	if snap[0].ID != "new" || snap[1].ID != "old" {
		t.Fatalf("replace order wrong: %+v", snap)
	}
	if _, ok := l.Get("old"); !ok {
		t.Fatal("index not rebuilt")
	}
}
