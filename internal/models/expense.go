package models

import "time"

// Expense sync states. A record starts pending with a client id,
// is confirmed once the remote insert assigns a server id.
const (
	ExpensePending   = "pending"
	ExpenseConfirmed = "confirmed"
)

// MaxNoteLength bounds the free-text note on an expense.
const MaxNoteLength = 280

// SplitBill records an evenly split shared bill; Share is the payer's part.
type SplitBill struct {
	Total     float64 `json:"total"`
	PartySize int     `json:"party_size"`
	Share     float64 `json:"share"`
}

// Expense is a single recorded food spend.
type Expense struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	MealType  string     `json:"meal_type"`
	Cuisine   string     `json:"cuisine,omitempty"`
	Vendor    string     `json:"vendor,omitempty"`
	Note      string     `json:"note,omitempty"`
	SpentAt   time.Time  `json:"spent_at"`
	Split     *SplitBill `json:"split,omitempty"`
	SyncState string     `json:"sync_state"`
}

// ExpenseDraft is the caller-supplied part of a new expense; the ledger
// assigns id, timestamps default to now when zero.
type ExpenseDraft struct {
	Amount   float64
	Category string
	MealType string
	Cuisine  string
	Vendor   string
	Note     string
	SpentAt  time.Time
	Split    *SplitBill
}

// ExpensePatch holds optional field updates; nil means leave unchanged.
type ExpensePatch struct {
	Amount   *float64
	Category *string
	MealType *string
	Cuisine  *string
	Vendor   *string
	Note     *string
	SpentAt  *time.Time
}
