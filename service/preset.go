package service

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AnTengye/contractstudio/model"
	"github.com/google/uuid"
)

// PresetStore keeps each tenant's reusable budget line items in memory.
type PresetStore struct {
	items    map[string]*model.BudgetItem
	mu       sync.RWMutex
	maxItems int // 0 = unlimited
}

func NewPresetStore(maxItems int) *PresetStore {
	if maxItems < 0 {
		maxItems = 0
	}
	return &PresetStore{
		items:    make(map[string]*model.BudgetItem),
		maxItems: maxItems,
	}
}

// Add stores item under tenant, assigning its ID and creation time.
func (s *PresetStore) Add(tenant string, item model.BudgetItem) *model.BudgetItem {
	item.ID = uuid.New().String()
	item.Tenant = tenant
	item.Description = strings.TrimSpace(item.Description)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = &item
	s.evictOldest()
	return &item
}

// List returns the tenant's presets ordered by description.
func (s *PresetStore) List(tenant string) []*model.BudgetItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.BudgetItem, 0)
	for _, it := range s.items {
		if it.Tenant == tenant {
			result = append(result, it)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Description == result[j].Description {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].Description < result[j].Description
	})
	return result
}

func (s *PresetStore) Get(tenant, id string) (*model.BudgetItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok || it.Tenant != tenant {
		return nil, ErrNotFound
	}
	return it, nil
}

func (s *PresetStore) Delete(tenant, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok || it.Tenant != tenant {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *PresetStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// evictOldest must be called with the lock held.
func (s *PresetStore) evictOldest() {
	if s.maxItems <= 0 || len(s.items) <= s.maxItems {
		return
	}

	items := make([]*model.BudgetItem, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	for _, it := range items[:len(items)-s.maxItems] {
		slog.Info("auto-cleaning old preset", "preset_id", it.ID, "tenant", it.Tenant)
		delete(s.items, it.ID)
	}
}
