package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Insert stores the expense under a fresh server id and returns it. The
// client-side temporary id is not persisted.
func (r *ExpenseRepository) Insert(ctx context.Context, expense *models.Expense) (string, error) {
	serverID := uuid.NewString()

	var splitTotal *float64
	var splitParty *int
	var splitShare *float64
	if expense.Split != nil {
		splitTotal = &expense.Split.Total
		splitParty = &expense.Split.PartySize
		splitShare = &expense.Split.Share
	}

	query := `
        INSERT INTO expenses (
            id, user_id, amount, category, meal_type, cuisine, vendor,
            note, spent_at, split_total, split_party_size, split_share
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )
    `
	_, err := r.pool.Exec(ctx, query,
		serverID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.MealType,
		expense.Cuisine,
		expense.Vendor,
		expense.Note,
		expense.SpentAt,
		splitTotal,
		splitParty,
		splitShare,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert expense: %w", err)
	}
	return serverID, nil
}

// Update applies only the patched fields.
func (r *ExpenseRepository) Update(ctx context.Context, id string, patch models.ExpensePatch) error {
	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)

	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.MealType != nil {
		add("meal_type", *patch.MealType)
	}
	if patch.Cuisine != nil {
		add("cuisine", *patch.Cuisine)
	}
	if patch.Vendor != nil {
		add("vendor", *patch.Vendor)
	}
	if patch.Note != nil {
		add("note", *patch.Note)
	}
	if patch.SpentAt != nil {
		add("spent_at", *patch.SpentAt)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE expenses SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)
	_, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", id, err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s not found", id)
	}
	return nil
}

// ListByUser returns the user's expenses newest first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]models.Expense, error) {
	query := `
        SELECT
            id, user_id, amount, category, meal_type, cuisine, vendor,
            note, spent_at, split_total, split_party_size, split_share
        FROM expenses
        WHERE user_id = $1
        ORDER BY spent_at DESC
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var splitTotal *float64
		var splitParty *int
		var splitShare *float64
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Amount,
			&e.Category,
			&e.MealType,
			&e.Cuisine,
			&e.Vendor,
			&e.Note,
			&e.SpentAt,
			&splitTotal,
			&splitParty,
			&splitShare,
		)
		if err != nil {
			return nil, err
		}
		if splitTotal != nil && splitParty != nil && splitShare != nil {
			e.Split = &models.SplitBill{Total: *splitTotal, PartySize: *splitParty, Share: *splitShare}
		}
		e.SyncState = models.ExpenseConfirmed
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
