package account

import (
	"sync"

	"github.com/wlsc/accounts/pkg/domain/account"
	repo "github.com/wlsc/accounts/pkg/repository/account"
)

type memoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]account.Account
}

// NewMemory creates an empty in-process account repository.
func NewMemory() repo.Repository {
	return &memoryRepository{accounts: make(map[string]account.Account)}
}

// PutIfAbsent implements account.Repository.
func (r *memoryRepository) PutIfAbsent(a account.Account) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[a.ID]; exists {
		return false
	}
	r.accounts[a.ID] = a
	return true
}

// Replace implements account.Repository.
func (r *memoryRepository) Replace(updates ...repo.Update) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updates {
		current, exists := r.accounts[u.Old.ID]
		if !exists || current != u.Old || u.New.ID != u.Old.ID {
			return u.Old.ID, false
		}
	}
	for _, u := range updates {
		r.accounts[u.New.ID] = u.New
	}
	return "", true
}

// Get implements account.Repository.
func (r *memoryRepository) Get(id string) (account.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	return a, ok
}

// Clear implements account.Repository.
func (r *memoryRepository) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.accounts)
	clear(r.accounts)
	return n
}

// Snapshot implements account.Repository.
func (r *memoryRepository) Snapshot() []account.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]account.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out
}

// Len implements account.Repository.
func (r *memoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
