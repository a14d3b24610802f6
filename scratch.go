package strlit

import (
	"sync"

	"github.com/google/uuid"
)

// MemScratch is an in-memory ScratchStore. Hosts that stage editable copies
// in real files can bring their own implementation; MemScratch serves
// embedded hosts and tests.
type MemScratch struct {
	mu   sync.Mutex
	docs map[string]string
}

func NewMemScratch() *MemScratch {
	return &MemScratch{docs: map[string]string{}}
}

// Create stages text under a fresh uuid handle.
func (m *MemScratch) Create(text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	handle := uuid.NewString()
	m.docs[handle] = text
	return handle, nil
}

// Delete removes the staged copy. Deleting an unknown handle is a no-op.
func (m *MemScratch) Delete(handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, handle)
	return nil
}

// Get reads a staged copy back.
func (m *MemScratch) Get(handle string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.docs[handle]
	return text, ok
}

// Len reports how many copies are staged.
func (m *MemScratch) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
