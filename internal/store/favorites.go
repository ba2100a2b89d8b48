package store

import (
	"time"

	"github.com/bhukkad-app/bhukkad/internal/eventlog"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

// Favorites is the keyed collection of liked items. The key is the catalog
// item id, so no temporary-id reconciliation is needed; remote writes are
// mirrored as upsert/delete through the sync queue.
type Favorites struct {
	userID string
	queue  *models.SyncQueue
	events *eventlog.Recorder
	items  []models.FavoriteItem
	index  map[string]int
}

func NewFavorites(userID string, queue *models.SyncQueue, events *eventlog.Recorder) *Favorites {
	return &Favorites{
		userID: userID,
		queue:  queue,
		events: events,
		index:  make(map[string]int),
	}
}

// Add snapshots the item and appends it. Idempotent on item id: liking an
// already-liked item leaves exactly one record.
func (f *Favorites) Add(item *models.MenuItem) models.FavoriteItem {
	if i, ok := f.index[item.ID]; ok {
		return f.items[i]
	}

	fav := models.NewFavorite(f.userID, item, time.Now())
	f.index[item.ID] = len(f.items)
	f.items = append(f.items, fav)

	f.queue.Enqueue(&models.SyncOp{
		Type:    models.SyncUpsertFavorite,
		LocalID: fav.ItemID,
		Data:    fav,
	})
	f.events.Record(eventlog.EventFavoriteSaved, fav)

	return fav
}

// Remove unlikes the item. Removing an absent id is a no-op.
func (f *Favorites) Remove(itemID string) {
	i, ok := f.index[itemID]
	if !ok {
		return
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	delete(f.index, itemID)
	for j := i; j < len(f.items); j++ {
		f.index[f.items[j].ItemID] = j
	}

	f.queue.Enqueue(&models.SyncOp{
		Type:    models.SyncDeleteFavorite,
		LocalID: itemID,
	})
	f.events.Record(eventlog.EventFavoriteRemoved, itemID)
}

// Contains reports whether the item is liked.
func (f *Favorites) Contains(itemID string) bool {
	_, ok := f.index[itemID]
	return ok
}

// List returns the favorites in save order.
func (f *Favorites) List() []models.FavoriteItem {
	out := make([]models.FavoriteItem, len(f.items))
	copy(out, f.items)
	return out
}

// Replace swaps local state for the remote snapshot.
func (f *Favorites) Replace(items []models.FavoriteItem) {
	f.items = make([]models.FavoriteItem, len(items))
	copy(f.items, items)
	f.index = make(map[string]int, len(items))
	for i, it := range f.items {
		f.index[it.ItemID] = i
	}
}
