package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/AnTengye/contractstudio/config"
	"github.com/AnTengye/contractstudio/model"
)

// DocumentStore is an in-memory index of archived documents.
// The rendered files themselves live in object storage.
type DocumentStore struct {
	documents    map[string]*model.ArchivedDocument
	mu           sync.RWMutex
	maxDocuments int // Maximum documents to keep, 0 = unlimited
}

var (
	globalStore *DocumentStore
	storeOnce   sync.Once
)

// NewDocumentStore returns an empty store keeping at most maxDocuments.
func NewDocumentStore(maxDocuments int) *DocumentStore {
	if maxDocuments < 0 {
		maxDocuments = 0
	}
	return &DocumentStore{
		documents:    make(map[string]*model.ArchivedDocument),
		maxDocuments: maxDocuments,
	}
}

// InitDocumentStore initializes the global document store with configuration
func InitDocumentStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		globalStore = NewDocumentStore(cfg.MaxDocuments)
		slog.Info("document store initialized", "max_documents", globalStore.maxDocuments)
	})
}

// GetDocumentStore returns the global document store, creating one with
// default settings if InitDocumentStore was never called.
func GetDocumentStore() *DocumentStore {
	storeOnce.Do(func() {
		globalStore = NewDocumentStore(100)
	})
	return globalStore
}

// Save inserts or replaces doc and evicts the oldest documents above the
// limit. It returns the evicted documents so their objects can be removed.
func (s *DocumentStore) Save(doc *model.ArchivedDocument) []*model.ArchivedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now()
	s.documents[doc.ID] = doc

	return s.cleanupIfNeeded()
}

func (s *DocumentStore) Get(id string) *model.ArchivedDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[id]
}

// GetByTenant returns the tenant's documents, newest first.
func (s *DocumentStore) GetByTenant(tenant string) []*model.ArchivedDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.ArchivedDocument
	for _, d := range s.documents {
		if d.Tenant == tenant {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *DocumentStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
}

// cleanupIfNeeded removes oldest documents if store exceeds maxDocuments
// Must be called with lock held
func (s *DocumentStore) cleanupIfNeeded() []*model.ArchivedDocument {
	if s.maxDocuments <= 0 || len(s.documents) <= s.maxDocuments {
		return nil
	}

	docs := make([]*model.ArchivedDocument, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	removeCount := len(docs) - s.maxDocuments
	evicted := docs[:removeCount]
	for _, d := range evicted {
		slog.Info("auto-cleaning old document",
			"document_id", d.ID,
			"tenant", d.Tenant,
			"created_at", d.CreatedAt,
		)
		delete(s.documents, d.ID)
	}
	return evicted
}

// Count returns the number of documents in the store
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
