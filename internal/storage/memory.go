package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

// MemoryStore keeps the latest bank of every subtopic in memory, keyed by
// subtopic file.
type MemoryStore struct {
	mu    sync.RWMutex
	banks map[string]entities.Bank
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		banks: make(map[string]entities.Bank),
	}
}

// Save stores a copy of bank, replacing any earlier bank for the same file.
func (s *MemoryStore) Save(_ context.Context, _ entities.Run, bank entities.Bank) (string, error) {
	s.Put(bank)
	return "memory:" + bank.Subtopic.File, nil
}

// Put stores a copy of bank and returns the bank it replaced, if any.
func (s *MemoryStore) Put(bank entities.Bank) (prev entities.Bank, hadPrev bool) {
	rows := make([]entities.Row, len(bank.Rows))
	copy(rows, bank.Rows)
	bank.Rows = rows

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.banks[bank.Subtopic.File]
	s.banks[bank.Subtopic.File] = bank

	return prev, hadPrev
}

// Get retrieves the bank stored for file.
func (s *MemoryStore) Get(file string) (entities.Bank, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bank, ok := s.banks[file]
	return bank, ok
}

// Files lists the stored subtopic files in lexical order.
func (s *MemoryStore) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]string, 0, len(s.banks))
	for f := range s.banks {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
