package testutil

import (
	"sync"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// MockFileChecker is a mock implementation of ports.FileChecker.
type MockFileChecker struct {
	ExistsFunc func(path string) bool

	mu    sync.Mutex
	calls []string
}

// Exists records the call and delegates to ExistsFunc.
func (m *MockFileChecker) Exists(path string) bool {
	m.mu.Lock()
	m.calls = append(m.calls, path)
	m.mu.Unlock()
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return false // Default behavior
}

// Calls returns the paths Exists was asked about, in call order.
func (m *MockFileChecker) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// ExistingFiles returns a MockFileChecker reporting exactly paths as present.
func ExistingFiles(paths ...string) *MockFileChecker {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return &MockFileChecker{ExistsFunc: func(path string) bool { return set[path] }}
}

var _ ports.FileChecker = (*MockFileChecker)(nil)
