package hashing

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hasbyte1/go-bcrypt-compat/hashing/gocrypt"
)

// Manager is a thread-safe registry of hashers keyed by the digest engine
// behind them.
//
// Register one or more named [Hasher] implementations, nominate a default
// engine, and then call [Manager.Make] / [Manager.Check] /
// [Manager.NeedsRehash] through the Manager for all day-to-day operations.
// [Manager.CrossCheck] validates a hash against every registered engine,
// which is how independently sourced engines are kept in agreement.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterEngine, SetDefaultEngine) while
// allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	hashers map[EngineName]Hasher
	def     EngineName
}

// NewManager creates an empty Manager with the given default engine name.
// Hashers must be registered with [Manager.RegisterEngine] before any
// hashing operation is invoked through the Manager.
func NewManager(defaultEngine EngineName) *Manager {
	return &Manager{
		hashers: make(map[EngineName]Hasher),
		def:     defaultEngine,
	}
}

// NewDefaultManager creates a Manager with both built-in engines registered
// using opts (see [DefaultBcryptOptions]); opts.Engine is ignored. The
// default engine is [EngineEksblowfish].
//
//	m, err := hashing.NewDefaultManager(hashing.DefaultBcryptOptions())
//	hash, _ := m.Make("secret")
func NewDefaultManager(opts BcryptOptions) (*Manager, error) {
	m := NewManager(EngineEksblowfish)
	engines := []struct {
		name   EngineName
		engine Engine
	}{
		{EngineEksblowfish, DefaultEngine()},
		{EngineGoCrypt, gocrypt.New()},
	}
	for _, e := range engines {
		o := opts
		o.Engine = e.engine
		h, err := NewBcryptHasher(o)
		if err != nil {
			return nil, fmt.Errorf("hashing: failed to create %s hasher: %w", e.name, err)
		}
		_ = m.RegisterEngine(e.name, h)
	}
	return m, nil
}

// RegisterEngine adds or replaces a named hasher in the Manager.
// It is safe to call RegisterEngine while other goroutines are using the Manager.
func (m *Manager) RegisterEngine(name EngineName, h Hasher) error {
	if name == "" {
		return ErrEmptyEngineName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashers[name] = h
	return nil
}

// Hasher returns the [Hasher] registered under name, or [ErrEngineNotFound]
// if no such engine has been registered.
func (m *Manager) Hasher(name EngineName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEngineNotFound, name)
	}
	return h, nil
}

// SetDefaultEngine changes the engine used by [Manager.Make], [Manager.Check],
// and [Manager.NeedsRehash]. The named engine must already be registered.
func (m *Manager) SetDefaultEngine(name EngineName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hashers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterEngine first",
			ErrEngineNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultEngine returns the name of the currently configured default engine.
func (m *Manager) DefaultEngine() EngineName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasEngine reports whether an engine with the given name is registered.
func (m *Manager) HasEngine(name EngineName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.hashers[name]
	return ok
}

// Engines returns the registered engine names in lexical order.
func (m *Manager) Engines() []EngineName {
	m.mu.RLock()
	names := make([]EngineName, 0, len(m.hashers))
	for name := range m.hashers {
		names = append(names, name)
	}
	m.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Make hashes password using the default engine.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Hash(password)
}

// Check validates password against hash using the default engine. It
// returns false when no default engine is registered.
func (m *Manager) Check(password, hash string) bool {
	h, err := m.resolveDefault()
	if err != nil {
		return false
	}
	return h.Validate(password, hash)
}

// CheckWith validates password against hash using the named engine.
func (m *Manager) CheckWith(name EngineName, password, hash string) (bool, error) {
	h, err := m.Hasher(name)
	if err != nil {
		return false, err
	}
	return h.Validate(password, hash), nil
}

// CrossCheck reports whether every registered engine accepts password for
// hash. It costs one key derivation per engine and returns false for an
// empty Manager.
func (m *Manager) CrossCheck(password, hash string) bool {
	m.mu.RLock()
	hashers := make([]Hasher, 0, len(m.hashers))
	for _, h := range m.hashers {
		hashers = append(hashers, h)
	}
	m.mu.RUnlock()

	if len(hashers) == 0 {
		return false
	}
	ok := true
	for _, h := range hashers {
		// Every engine runs even after a rejection.
		ok = h.Validate(password, hash) && ok
	}
	return ok
}

// NeedsRehash reports whether hash should be re-hashed under the default
// engine's configuration.
//
// On the next successful login, callers should call [Manager.Make] and
// persist the new hash when this returns true.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info parses hash without verifying it.
func (m *Manager) Info(hash string) (Record, error) {
	return ParseRecord(hash)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default engine %q has not been registered",
			ErrEngineNotFound, m.def)
	}
	return h, nil
}
