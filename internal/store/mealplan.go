package store

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/eventlog"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

// ISODate is the date format keying meal-plan entries.
const ISODate = "2006-01-02"

// MealPlan maps (date, slot) to at most one planned item. Keys are
// caller-supplied, so remote sync is plain upsert/delete.
type MealPlan struct {
	userID  string
	queue   *models.SyncQueue
	events  *eventlog.Recorder
	entries map[models.PlanKey]models.MealPlanEntry
}

func NewMealPlan(userID string, queue *models.SyncQueue, events *eventlog.Recorder) *MealPlan {
	return &MealPlan{
		userID:  userID,
		queue:   queue,
		events:  events,
		entries: make(map[models.PlanKey]models.MealPlanEntry),
	}
}

// Set upserts the item into the (date, slot) cell.
func (p *MealPlan) Set(date, slot string, item *models.MenuItem) models.MealPlanEntry {
	entry := models.MealPlanEntry{
		UserID:   p.userID,
		Date:     date,
		Slot:     slot,
		ItemID:   item.ID,
		ItemName: item.Name,
		Region:   item.Region,
		PriceMax: item.PriceMax,
	}
	p.entries[models.PlanKey{Date: date, Slot: slot}] = entry

	p.queue.Enqueue(&models.SyncOp{
		Type:    models.SyncUpsertPlanEntry,
		LocalID: date + "/" + slot,
		Data:    entry,
	})
	p.events.Record(eventlog.EventPlanEntrySet, entry)

	return entry
}

// Clear empties the (date, slot) cell; clearing an empty cell is a no-op.
func (p *MealPlan) Clear(date, slot string) {
	key := models.PlanKey{Date: date, Slot: slot}
	if _, ok := p.entries[key]; !ok {
		return
	}
	delete(p.entries, key)

	p.queue.Enqueue(&models.SyncOp{
		Type:    models.SyncDeletePlanEntry,
		LocalID: date + "/" + slot,
		Data:    key,
	})
	p.events.Record(eventlog.EventPlanEntryCleared, key)
}

// Get returns the entry for a cell.
func (p *MealPlan) Get(date, slot string) (models.MealPlanEntry, bool) {
	e, ok := p.entries[models.PlanKey{Date: date, Slot: slot}]
	return e, ok
}

// Week returns date -> slot -> entry for the 7 days starting at start.
func (p *MealPlan) Week(start time.Time) map[string]map[string]models.MealPlanEntry {
	out := make(map[string]map[string]models.MealPlanEntry, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(ISODate)
		for _, slot := range models.PlannedSlots {
			if e, ok := p.entries[models.PlanKey{Date: date, Slot: slot}]; ok {
				if out[date] == nil {
					out[date] = make(map[string]models.MealPlanEntry, len(models.PlannedSlots))
				}
				out[date][slot] = e
			}
		}
	}
	return out
}

// AutoGenerate fills 7 consecutive days from start, one uniformly random
// catalog item per planned slot among the items tagged for that slot. Slots
// with no matching catalog item stay empty. Dietary and budget preferences
// are not consulted here.
func (p *MealPlan) AutoGenerate(catalog []*models.MenuItem, start time.Time, rng *rand.Rand) int {
	bySlot := make(map[string][]*models.MenuItem, len(models.PlannedSlots))
	for _, item := range catalog {
		for _, slot := range models.PlannedSlots {
			if item.HasSlot(slot) {
				bySlot[slot] = append(bySlot[slot], item)
			}
		}
	}

	filled := 0
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(ISODate)
		for _, slot := range models.PlannedSlots {
			candidates := bySlot[slot]
			if len(candidates) == 0 {
				continue
			}
			p.Set(date, slot, candidates[rng.Intn(len(candidates))])
			filled++
		}
	}
	return filled
}

// Entries returns every planned entry ordered by date then slot.
func (p *MealPlan) Entries() []models.MealPlanEntry {
	out := make([]models.MealPlanEntry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return slotRank(out[i].Slot) < slotRank(out[j].Slot)
	})
	return out
}

func slotRank(slot string) int {
	for i, s := range models.PlannedSlots {
		if s == slot {
			return i
		}
	}
	return len(models.PlannedSlots)
}

// Replace swaps local state for the remote snapshot.
func (p *MealPlan) Replace(entries []models.MealPlanEntry) {
	p.entries = make(map[models.PlanKey]models.MealPlanEntry, len(entries))
	for _, e := range entries {
		p.entries[models.PlanKey{Date: e.Date, Slot: e.Slot}] = e
	}
}
