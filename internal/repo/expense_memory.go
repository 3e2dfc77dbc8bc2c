package repo

import (
	"context"
	"slices"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type InMemoryExpenseRepository struct {
	store *MemoryStore
}

func NewInMemoryExpenseRepository(store *MemoryStore) *InMemoryExpenseRepository {
	return &InMemoryExpenseRepository{store: store}
}

func (r *InMemoryExpenseRepository) Create(_ context.Context, e models.ExpenseRecord) (models.ExpenseRecord, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextExpenseID
	s.nextExpenseID++
	s.expenses = append(s.expenses, e)
	return e, nil
}

func (r *InMemoryExpenseRepository) GetAll(_ context.Context) ([]models.ExpenseRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.expenses), nil
}
