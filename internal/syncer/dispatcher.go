package syncer

import (
	"context"
	"fmt"
	"log"

	"github.com/bhukkad-app/bhukkad/internal/eventlog"
	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/bhukkad-app/bhukkad/internal/repositories"
)

// ExpenseState is the slice of the ledger the dispatcher reconciles into.
type ExpenseState interface {
	ReconcileID(tempID, serverID string)
	Replace(expenses []models.Expense)
}

// Dispatcher drains the sync queue against the remote store. Failures are
// non-fatal warnings; local state stays authoritative, except a failed delete
// which is answered by exactly one full refetch.
type Dispatcher struct {
	UserID    string
	Queue     *models.SyncQueue
	Expenses  repositories.ExpenseRepository
	Favorites repositories.FavoriteRepository
	Plans     repositories.MealPlanRepository
	Budgets   repositories.BudgetRepository
	Profiles  repositories.ProfileRepository
	Ledger    ExpenseState
	Events    *eventlog.Recorder
}

// Drain processes every pending op in enqueue order and returns the warnings
// collected along the way. With no expense repository configured the queue is
// discarded: there is no remote side to sync.
func (d *Dispatcher) Drain(ctx context.Context) []string {
	if d.Expenses == nil {
		d.Queue.DequeueBatch(d.Queue.Len())
		return nil
	}

	var warnings []string
	for {
		op := d.Queue.Dequeue()
		if op == nil {
			return warnings
		}
		if warn := d.apply(ctx, op); warn != "" {
			log.Printf("sync: %s", warn)
			d.Events.Record(eventlog.EventSyncFailed, map[string]string{
				"op":       op.Type,
				"local_id": op.LocalID,
				"reason":   warn,
			})
			warnings = append(warnings, warn)
		}
	}
}

func (d *Dispatcher) apply(ctx context.Context, op *models.SyncOp) string {
	switch op.Type {
	case models.SyncInsertExpense:
		expense, ok := op.Data.(models.Expense)
		if !ok {
			return fmt.Sprintf("insert %s: malformed op payload", op.LocalID)
		}
		serverID, err := d.Expenses.Insert(ctx, &expense)
		if err != nil {
			// Optimistic record stays; losing local data on a flaky
			// connection would be worse than temporary divergence.
			return fmt.Sprintf("expense %s not saved remotely: %v", op.LocalID, err)
		}
		d.Ledger.ReconcileID(op.LocalID, serverID)

	case models.SyncUpdateExpense:
		patch, ok := op.Data.(models.ExpensePatch)
		if !ok {
			return fmt.Sprintf("update %s: malformed op payload", op.LocalID)
		}
		if err := d.Expenses.Update(ctx, op.LocalID, patch); err != nil {
			return fmt.Sprintf("expense %s not updated remotely: %v", op.LocalID, err)
		}

	case models.SyncDeleteExpense:
		if err := d.Expenses.Delete(ctx, op.LocalID); err != nil {
			// Local and remote have diverged; refetch rather than guess.
			if ferr := d.refetch(ctx); ferr != nil {
				return fmt.Sprintf("expense %s not deleted remotely and refetch failed: %v", op.LocalID, ferr)
			}
			return fmt.Sprintf("expense %s not deleted remotely, ledger resynced: %v", op.LocalID, err)
		}

	case models.SyncUpsertFavorite:
		fav, ok := op.Data.(models.FavoriteItem)
		if !ok {
			return fmt.Sprintf("favorite %s: malformed op payload", op.LocalID)
		}
		if err := d.Favorites.Upsert(ctx, &fav); err != nil {
			return fmt.Sprintf("favorite %s not saved remotely: %v", op.LocalID, err)
		}

	case models.SyncDeleteFavorite:
		if err := d.Favorites.Delete(ctx, d.UserID, op.LocalID); err != nil {
			return fmt.Sprintf("favorite %s not removed remotely: %v", op.LocalID, err)
		}

	case models.SyncUpsertPlanEntry:
		entry, ok := op.Data.(models.MealPlanEntry)
		if !ok {
			return fmt.Sprintf("plan entry %s: malformed op payload", op.LocalID)
		}
		if err := d.Plans.Upsert(ctx, &entry); err != nil {
			return fmt.Sprintf("plan entry %s not saved remotely: %v", op.LocalID, err)
		}

	case models.SyncDeletePlanEntry:
		key, ok := op.Data.(models.PlanKey)
		if !ok {
			return fmt.Sprintf("plan entry %s: malformed op payload", op.LocalID)
		}
		if err := d.Plans.Delete(ctx, d.UserID, key.Date, key.Slot); err != nil {
			return fmt.Sprintf("plan entry %s not cleared remotely: %v", op.LocalID, err)
		}

	case models.SyncSaveBudget:
		cfg, ok := op.Data.(models.BudgetConfig)
		if !ok {
			return "budget config: malformed op payload"
		}
		if err := d.Budgets.Save(ctx, &cfg); err != nil {
			return fmt.Sprintf("budget config not saved remotely: %v", err)
		}

	case models.SyncSaveProfile:
		profile, ok := op.Data.(models.PreferenceProfile)
		if !ok {
			return "profile: malformed op payload"
		}
		if err := d.Profiles.Save(ctx, &profile); err != nil {
			return fmt.Sprintf("profile not saved remotely: %v", err)
		}

	default:
		return fmt.Sprintf("unknown sync op %q", op.Type)
	}
	return ""
}

// Refetch replaces the ledger with the full remote list.
func (d *Dispatcher) Refetch(ctx context.Context) error {
	return d.refetch(ctx)
}

func (d *Dispatcher) refetch(ctx context.Context) error {
	expenses, err := d.Expenses.ListByUser(ctx, d.UserID)
	if err != nil {
		return err
	}
	d.Ledger.Replace(expenses)
	return nil
}
