// Package domain contains the core types shared by the signing key selector.
package domain

import "fmt"

// KeyRecord is one selectable signing key
type KeyRecord struct {
	ID    string // Long key id, e.g. "3AA5C34371567BD2"
	Label string // User id, e.g. "Jane Doe <jane@example.com>"; may be empty
}

// Scope is the git configuration target a key is written to
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeGlobal
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// ParseScope converts "local" or "global" into a Scope
func ParseScope(s string) (Scope, error) {
	switch s {
	case "local", "":
		return ScopeLocal, nil
	case "global":
		return ScopeGlobal, nil
	default:
		return ScopeLocal, fmt.Errorf("invalid scope %q (want local or global)", s)
	}
}
