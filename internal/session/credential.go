package session

import "sync"

// DefaultCredentialName is the slot name used when none is given.
const DefaultCredentialName = "GEMINI_API_KEY"

// CredentialSlot is a named, in-memory holder for one secret. It lives only
// as long as its owner and is safe for concurrent use.
type CredentialSlot struct {
	name string

	mu    sync.RWMutex
	value string
}

// NewCredentialSlot creates an empty slot. An empty name selects
// DefaultCredentialName.
func NewCredentialSlot(name string) *CredentialSlot {
	if name == "" {
		name = DefaultCredentialName
	}
	return &CredentialSlot{name: name}
}

// Name returns the slot's name.
func (s *CredentialSlot) Name() string {
	return s.name
}

// Get returns the stored value and whether one is present.
func (s *CredentialSlot) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.value != ""
}

// Set replaces the stored value.
func (s *CredentialSlot) Set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

// Clear removes the stored value.
func (s *CredentialSlot) Clear() {
	s.Set("")
}
