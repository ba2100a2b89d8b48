package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/ledger"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

type mockExpenseRepo struct {
	insertFn func(ctx context.Context, e *models.Expense) (string, error)
	updateFn func(ctx context.Context, id string, patch models.ExpensePatch) error
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, userID string) ([]models.Expense, error)

	listCalls int
}

func (m *mockExpenseRepo) Insert(ctx context.Context, e *models.Expense) (string, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, e)
	}
	return "srv-" + e.ID, nil
}

func (m *mockExpenseRepo) Update(ctx context.Context, id string, patch models.ExpensePatch) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockExpenseRepo) ListByUser(ctx context.Context, userID string) ([]models.Expense, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

type mockFavoriteRepo struct {
	upsertFn func(ctx context.Context, fav *models.FavoriteItem) error
	deleteFn func(ctx context.Context, userID, itemID string) error
}

func (m *mockFavoriteRepo) Upsert(ctx context.Context, fav *models.FavoriteItem) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, fav)
	}
	return nil
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, userID, itemID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, itemID)
	}
	return nil
}

func (m *mockFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	return nil, nil
}

func newTestDispatcher(repo *mockExpenseRepo) (*Dispatcher, *ledger.Ledger, *models.SyncQueue) {
	queue := models.NewSyncQueue()
	l := ledger.NewLedger("u1", queue, nil)
	d := &Dispatcher{
		UserID:   "u1",
		Queue:    queue,
		Expenses: repo,
		Ledger:   l,
	}
	return d, l, queue
}

var noon = time.Date(2026, 8, 12, 12, 0, 0, 0, time.UTC)

func TestDrainConfirmsInsert(t *testing.T) {
	repo := &mockExpenseRepo{}
	d, l, queue := newTestDispatcher(repo)

	e := l.Add(models.ExpenseDraft{Amount: 100, SpentAt: noon})
	warnings := d.Drain(context.Background())
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if !queue.IsEmpty() {
		t.Fatalf("queue not drained, %d left", queue.Len())
	}

	got, ok := l.Get("srv-" + e.ID)
	if !ok {
		t.Fatal("server id not reconciled into the ledger")
	}
	if got.SyncState != models.ExpenseConfirmed {
		t.Fatalf("SyncState = %q, want %q", got.SyncState, models.ExpenseConfirmed)
	}
}

func TestDrainInsertFailureKeepsOptimisticRecord(t *testing.T) {
	repo := &mockExpenseRepo{
		insertFn: func(ctx context.Context, e *models.Expense) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	d, l, _ := newTestDispatcher(repo)

	e := l.Add(models.ExpenseDraft{Amount: 100, SpentAt: noon})
	warnings := d.Drain(context.Background())
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}

	got, ok := l.Get(e.ID)
	if !ok {
		t.Fatal("optimistic record dropped on insert failure")
	}
	if got.SyncState != models.ExpensePending {
		t.Fatalf("SyncState = %q, want %q", got.SyncState, models.ExpensePending)
	}
}

func TestDrainDeleteFailureRefetchesOnce(t *testing.T) {
	remote := []models.Expense{
		{ID: "srv-1", UserID: "u1", Amount: 50, SpentAt: noon, SyncState: models.ExpenseConfirmed},
	}
	repo := &mockExpenseRepo{
		deleteFn: func(ctx context.Context, id string) error {
			return errors.New("row is gone")
		},
		listFn: func(ctx context.Context, userID string) ([]models.Expense, error) {
			return remote, nil
		},
	}
	d, l, queue := newTestDispatcher(repo)

	l.Replace(remote)
	if err := l.Delete("srv-1"); err != nil {
		t.Fatal(err)
	}

	warnings := d.Drain(context.Background())
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}
	if repo.listCalls != 1 {
		t.Fatalf("refetch count = %d, want exactly 1", repo.listCalls)
	}
	// The refetch restored the remote truth.
	if _, ok := l.Get("srv-1"); !ok {
		t.Fatal("ledger not resynced to the remote list")
	}
	if !queue.IsEmpty() {
		t.Fatalf("queue not drained, %d left", queue.Len())
	}
}

func TestDrainDeleteSuccessDoesNotRefetch(t *testing.T) {
	repo := &mockExpenseRepo{}
	d, l, _ := newTestDispatcher(repo)

	l.Replace([]models.Expense{
		{ID: "srv-1", UserID: "u1", Amount: 50, SpentAt: noon, SyncState: models.ExpenseConfirmed},
	})
	if err := l.Delete("srv-1"); err != nil {
		t.Fatal(err)
	}
	if warnings := d.Drain(context.Background()); len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if repo.listCalls != 0 {
		t.Fatalf("unexpected refetch, listCalls = %d", repo.listCalls)
	}
}

func TestDrainPreservesEnqueueOrder(t *testing.T) {
	var applied []string
	repo := &mockExpenseRepo{
		insertFn: func(ctx context.Context, e *models.Expense) (string, error) {
			applied = append(applied, "insert")
			return "srv-" + e.ID, nil
		},
	}
	d, _, queue := newTestDispatcher(repo)
	d.Favorites = &mockFavoriteRepo{
		upsertFn: func(ctx context.Context, fav *models.FavoriteItem) error {
			applied = append(applied, "favorite")
			return nil
		},
	}

	queue.Enqueue(&models.SyncOp{Type: models.SyncUpsertFavorite, LocalID: "f1", Data: models.FavoriteItem{ItemID: "f1"}})
	queue.Enqueue(&models.SyncOp{Type: models.SyncInsertExpense, LocalID: "e1", Data: models.Expense{ID: "e1"}})
	queue.Enqueue(&models.SyncOp{Type: models.SyncUpsertFavorite, LocalID: "f2", Data: models.FavoriteItem{ItemID: "f2"}})

	d.Drain(context.Background())
	want := []string{"favorite", "insert", "favorite"}
	if len(applied) != len(want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	for i := range want {
		if applied[i] != want[i] {
			t.Fatalf("applied = %v, want %v", applied, want)
		}
	}
}

func TestDrainWithoutRemoteDiscardsQueue(t *testing.T) {
	queue := models.NewSyncQueue()
	l := ledger.NewLedger("u1", queue, nil)
	d := &Dispatcher{UserID: "u1", Queue: queue, Ledger: l}

	l.Add(models.ExpenseDraft{Amount: 10, SpentAt: noon})
	if warnings := d.Drain(context.Background()); warnings != nil {
		t.Fatalf("warnings = %v, want nil", warnings)
	}
	if !queue.IsEmpty() {
		t.Fatalf("queue not discarded, %d left", queue.Len())
	}
}
