package logic

import "sync"

// accountLeases tracks which accounts have a send in flight. At most one
// job per account runs at a time; a thread holds its account's lease from
// the first member until the chain stops.
type accountLeases struct {
	mu   sync.Mutex
	held map[int64]struct{}
}

func newAccountLeases() *accountLeases {
	return &accountLeases{held: make(map[int64]struct{})}
}

// TryAcquire takes the account's lease if it is free.
func (al *accountLeases) TryAcquire(accountId int64) bool {
	al.mu.Lock()
	defer al.mu.Unlock()
	if _, exists := al.held[accountId]; exists {
		return false
	}
	al.held[accountId] = struct{}{}
	return true
}

func (al *accountLeases) Release(accountId int64) {
	al.mu.Lock()
	defer al.mu.Unlock()
	delete(al.held, accountId)
}

func (al *accountLeases) HeldCount() int {
	al.mu.Lock()
	defer al.mu.Unlock()
	return len(al.held)
}
