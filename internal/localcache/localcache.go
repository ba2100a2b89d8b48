package localcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known cache keys.
const (
	KeyProfile   = "profile"
	KeyBudget    = "budget_config"
	KeyFavorites = "favorites"
	KeyMealPlan  = "meal_plan"
	KeyDeviceID  = "device_id"
	KeyLanguage  = "language"
)

// Cache is a string-keyed durable store backed by a single JSON file. Values
// are raw JSON documents. Loaded once at startup, written through on every
// change; it is the offline fallback beside the remote store.
type Cache struct {
	path string
	data map[string]json.RawMessage
}

// Open loads the cache file, creating an empty cache when absent.
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(raw) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(raw, &c.data); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}
	return c, nil
}

func (c *Cache) flush() error {
	raw, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

// Put stores v under key and writes the file through.
func (c *Cache) Put(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache value %s: %w", key, err)
	}
	c.data[key] = raw
	return c.flush()
}

// Get decodes the value under key into v; ok is false when absent.
func (c *Cache) Get(key string, v interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode cache value %s: %w", key, err)
	}
	return true, nil
}

// Delete removes key and writes the file through.
func (c *Cache) Delete(key string) error {
	if _, ok := c.data[key]; !ok {
		return nil
	}
	delete(c.data, key)
	return c.flush()
}

// GetString returns the string stored under key, or "" when absent.
func (c *Cache) GetString(key string) string {
	var s string
	if ok, err := c.Get(key, &s); err != nil || !ok {
		return ""
	}
	return s
}
