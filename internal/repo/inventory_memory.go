package repo

import (
	"context"
	"slices"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	store *MemoryStore
}

func NewInMemoryInventoryRepository(store *MemoryStore) *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{store: store}
}

// Upsert implements InventoryRepository.
func (r *InMemoryInventoryRepository) Upsert(_ context.Context, item models.StockItem) (models.StockItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if i := s.indexOf(item.ProductName); i >= 0 {
		if s.items[i].Quantity > MaxQuantity-item.Quantity {
			return models.StockItem{}, ErrQuantityOverflow
		}
		s.items[i].Quantity += item.Quantity
		s.items[i].UpdatedAt = now
		return s.items[i], nil
	}

	item.ID = s.nextItemID
	s.nextItemID++
	item.CreatedAt, item.UpdatedAt = now, now
	s.items = append(s.items, item)
	return item, nil
}

// GetAll returns a copy of every item in insertion order.
func (r *InMemoryInventoryRepository) GetAll(_ context.Context) ([]models.StockItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.items), nil
}

func (r *InMemoryInventoryRepository) GetByName(_ context.Context, name string) (models.StockItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if i := r.store.indexOf(name); i >= 0 {
		return r.store.items[i], nil
	}
	return models.StockItem{}, ErrProductNotFound
}

// Delete removes a product by name. Sales that reference it are left untouched.
func (r *InMemoryInventoryRepository) Delete(_ context.Context, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return ErrProductNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}
