package testutil

import (
	"sync"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// ModuleResolverCall records the arguments of one TryResolveModule call.
type ModuleResolverCall struct {
	CandidatePath string
	ImporterPath  string
	Options       resolution.ModuleOptions
}

// MockModuleResolver is a mock implementation of ports.ModuleResolver.
// It is safe for concurrent use.
type MockModuleResolver struct {
	TryResolveModuleFunc func(candidatePath, importerPath string, opts resolution.ModuleOptions) (string, bool)

	mu    sync.Mutex
	calls []ModuleResolverCall
}

// TryResolveModule records the call and delegates to TryResolveModuleFunc.
// Without a func it resolves nothing.
func (m *MockModuleResolver) TryResolveModule(candidatePath, importerPath string, opts resolution.ModuleOptions) (string, bool) {
	m.mu.Lock()
	m.calls = append(m.calls, ModuleResolverCall{CandidatePath: candidatePath, ImporterPath: importerPath, Options: opts})
	m.mu.Unlock()
	if m.TryResolveModuleFunc != nil {
		return m.TryResolveModuleFunc(candidatePath, importerPath, opts)
	}
	return "", false
}

// Calls returns a copy of the recorded calls.
func (m *MockModuleResolver) Calls() []ModuleResolverCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ModuleResolverCall(nil), m.calls...)
}

// Ensure MockModuleResolver satisfies the ModuleResolver interface.
var _ ports.ModuleResolver = (*MockModuleResolver)(nil)
