package repo

import (
	"sync"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

// MemoryStore holds the three in-memory ledgers behind one lock so a sale
// can decrement stock and append to the sales ledger atomically.
type MemoryStore struct {
	mu sync.RWMutex

	items    []models.StockItem
	sales    []models.SaleRecord
	expenses []models.ExpenseRecord

	nextItemID    int64
	nextSaleID    int64
	nextExpenseID int64
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.Reset()
	return s
}

// Reset drops every record and restarts the id sequences.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []models.StockItem{}
	s.sales = []models.SaleRecord{}
	s.expenses = []models.ExpenseRecord{}
	s.nextItemID, s.nextSaleID, s.nextExpenseID = 1, 1, 1
}

// indexOf must be called with the lock held.
func (s *MemoryStore) indexOf(name string) int {
	for i, item := range s.items {
		if item.ProductName == name {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
