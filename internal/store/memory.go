package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"invoicegen/internal/core"
)

// MemoryStore is a map-backed Repository for tests and ephemeral runs. Records
// round-trip through JSON exactly like the Bolt backend, so a record that
// survives the fake survives the real store too.
type MemoryStore struct {
	mu       sync.RWMutex
	clients  map[string][]byte
	invoices map[string][]byte
	receipts map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		clients:  make(map[string][]byte),
		invoices: make(map[string][]byte),
		receipts: make(map[string][]byte),
	}
}

func (s *MemoryStore) Close() error { return nil }

func memList[T any](s *MemoryStore, m map[string][]byte) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []T{}
	for id, data := range m {
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", id, err)
		}
		items = append(items, rec)
	}
	return items, nil
}

func memGet[T any](s *MemoryStore, m map[string][]byte, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := m[id]
	if !ok {
		return nil, ErrNotFound
	}
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &rec, nil
}

func memPut[T any](s *MemoryStore, m map[string][]byte, id string, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m[id] = data
	return nil
}

func (s *MemoryStore) memDelete(m map[string][]byte, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(m, id)
	return nil
}

func (s *MemoryStore) ListClients() ([]core.Client, error) {
	return memList[core.Client](s, s.clients)
}

func (s *MemoryStore) GetClient(id string) (*core.Client, error) {
	return memGet[core.Client](s, s.clients, id)
}

func (s *MemoryStore) PutClient(c core.Client) error {
	return memPut(s, s.clients, c.ID, c)
}

func (s *MemoryStore) DeleteClient(id string) error {
	return s.memDelete(s.clients, id)
}

func (s *MemoryStore) ListInvoices() ([]core.Invoice, error) {
	return memList[core.Invoice](s, s.invoices)
}

func (s *MemoryStore) GetInvoice(id string) (*core.Invoice, error) {
	return memGet[core.Invoice](s, s.invoices, id)
}

func (s *MemoryStore) PutInvoice(inv core.Invoice) error {
	return memPut(s, s.invoices, inv.ID, inv)
}

func (s *MemoryStore) DeleteInvoice(id string) error {
	return s.memDelete(s.invoices, id)
}

func (s *MemoryStore) ListReceipts() ([]core.Receipt, error) {
	return memList[core.Receipt](s, s.receipts)
}

func (s *MemoryStore) GetReceipt(id string) (*core.Receipt, error) {
	return memGet[core.Receipt](s, s.receipts, id)
}

func (s *MemoryStore) PutReceipt(rec core.Receipt) error {
	return memPut(s, s.receipts, rec.ID, rec)
}

func (s *MemoryStore) DeleteReceipt(id string) error {
	return s.memDelete(s.receipts, id)
}

// Both implementations must satisfy the Repository contract.
var (
	_ Repository = (*BoltStore)(nil)
	_ Repository = (*MemoryStore)(nil)
)
