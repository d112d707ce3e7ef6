// ABOUTME: In-memory credential store for tests and ephemeral sessions
// ABOUTME: Same contract as the file store without touching the filesystem

package credentials

import "sync"

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	token string
}

// NewMemory creates an empty in-memory credential store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", false
	}
	return m.token, true
}

func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
