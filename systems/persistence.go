package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-settings/components"
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/quasilyte/gdata"
)

// itemStore is the part of gdata.Manager the config store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// ConfigStore saves settings owners as one JSON item each, keyed by ConfigKey.
// A nil store loads and saves nothing.
type ConfigStore struct {
	items itemStore
}

// NewConfigStore returns a store over items.
func NewConfigStore(items itemStore) *ConfigStore {
	return &ConfigStore{items: items}
}

// DefaultConfigStore returns the gdata-backed store, or nil when persistence is unavailable.
func DefaultConfigStore() *ConfigStore {
	if gdataManager == nil {
		return nil
	}
	return NewConfigStore(gdataManager)
}

// LoadForInstance overwrites owner with its saved values. Missing data keeps the current
// values. Owners that are not UserSettings are not persisted.
func (s *ConfigStore) LoadForInstance(owner any) error {
	keyed, ok := owner.(components.UserSettings)
	if s == nil || s.items == nil || !ok {
		return nil
	}
	key := keyed.ConfigKey()

	data, err := s.items.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s settings: %v", key, err)
		return err
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil
	}

	if err := json.Unmarshal(data, owner); err != nil {
		log.Printf("Warning: Could not parse saved %s settings: %v", key, err)
		return err
	}
	return nil
}

// SaveForInstance writes owner's current values.
func (s *ConfigStore) SaveForInstance(owner any) error {
	keyed, ok := owner.(components.UserSettings)
	if s == nil || s.items == nil || !ok {
		return nil
	}
	key := keyed.ConfigKey()

	data, err := json.Marshal(owner)
	if err != nil {
		log.Printf("Warning: Could not serialize %s settings: %v", key, err)
		return err
	}

	if err := s.items.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s settings: %v", key, err)
		return err
	}
	return nil
}
