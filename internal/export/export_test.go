package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{
			ID:       "e1",
			UserID:   "u1",
			Amount:   250.5,
			Category: models.CategoryDelivery,
			MealType: models.MealSlotDinner,
			Cuisine:  "punjabi",
			Vendor:   "Sharma Dhaba",
			Note:     "team dinner",
			SpentAt:  time.Date(2026, 8, 12, 20, 30, 0, 0, time.UTC),
			Split:    &models.SplitBill{Total: 1002, PartySize: 4, Share: 250.5},
		},
		{
			ID:       "e2",
			UserID:   "u1",
			Amount:   60,
			Category: models.CategoryStreetFood,
			MealType: models.MealSlotSnacks,
			SpentAt:  time.Date(2026, 8, 12, 17, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleExpenses()); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if rows[0][0] != "id" || rows[0][8] != "split_total" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][1] != "250.50" || rows[1][10] != "250.50" {
		t.Fatalf("split row = %v", rows[1])
	}
	// No split: the split columns stay empty.
	if rows[2][8] != "" || rows[2][9] != "" || rows[2][10] != "" {
		t.Fatalf("unsplit row = %v", rows[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleExpenses()); err != nil {
		t.Fatal(err)
	}

	var decoded []models.Expense
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[0].ID != "e1" || decoded[0].Split == nil {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded[1].Split != nil {
		t.Fatalf("unsplit expense decoded with split: %+v", decoded[1])
	}
}

func TestExporterWritesTimestampedFiles(t *testing.T) {
	x := &Exporter{Folder: t.TempDir()}
	now := time.Date(2026, 8, 12, 21, 4, 5, 0, time.UTC)

	path, err := x.Export(FormatCSV, sampleExpenses(), now)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "expenses_20260812_210405.csv") {
		t.Fatalf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	path, err = x.Export(FormatJSON, sampleExpenses(), now)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, ".json") {
		t.Fatalf("path = %s", path)
	}
}

func TestExporterRejectsUnknownFormat(t *testing.T) {
	x := &Exporter{Folder: t.TempDir()}
	if _, err := x.Export("xml", nil, time.Now()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
