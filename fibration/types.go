// Package fibration declares the Fibration registry type and its
// sentinel errors. See doc.go for the package overview.
package fibration

import (
	"errors"
	"sync"

	"github.com/katalvlaran/fibra/category"
)

// Sentinel errors for orchestrator operations.
var (
	// ErrNilRegistry indicates a nil *Fibration receiver argument.
	ErrNilRegistry = errors.New("fibration: registry is nil")

	// ErrNilFibre indicates a nil fibre implementation was supplied.
	ErrNilFibre = errors.New("fibration: fibre is nil")

	// ErrNilTree indicates a nil tree where one is required.
	ErrNilTree = errors.New("fibration: tree is nil")

	// ErrEmptyTreeID indicates a tree with an empty id.
	ErrEmptyTreeID = errors.New("fibration: tree id is empty")

	// ErrTreeConflict indicates an id is already registered with a
	// different structure.
	ErrTreeConflict = errors.New("fibration: tree id registered with different structure")

	// ErrTreeNotFound indicates the requested tree id is not registered.
	ErrTreeNotFound = errors.New("fibration: tree not found")

	// ErrNodeNotFound indicates the substitution target does not occur in
	// the source tree.
	ErrNodeNotFound = errors.New("fibration: node not found in source tree")

	// ErrNoTokens indicates Parse was called with an empty token sequence.
	ErrNoTokens = errors.New("fibration: token sequence is empty")
)

// morphKey identifies a morphism by its endpoints.
type morphKey struct {
	src, dst string
}

// Fibration is the session-scoped registry of trees, morphisms, and
// annotations.
//
// It accumulates state across calls and performs no eviction; callers
// are responsible for bounding its growth. A single RWMutex guards all
// three registries because registration and annotation are
// read-modify-write operations.
type Fibration struct {
	mu sync.RWMutex

	// nextID backs minted node ids ("n1", "n2", …).
	nextID uint64

	// trees maps node id → registered tree. Every node created during a
	// parse is registered individually.
	trees map[string]*category.Node

	// morphisms maps (source id, target id) → morphism; the most recent
	// registration for a pair wins.
	morphisms map[morphKey]*category.Morphism

	// annotations maps tree id → qualified fibre key → data.
	annotations map[string]map[string]any
}

// New creates an empty Fibration registry.
// Complexity: O(1)
func New() *Fibration {
	return &Fibration{
		trees:       make(map[string]*category.Node),
		morphisms:   make(map[morphKey]*category.Morphism),
		annotations: make(map[string]map[string]any),
	}
}

// QualifiedKey builds the annotation-store key for a fibre key plus an
// instance qualifier. Multiple independent instances of the same fibre
// type may annotate one tree without clashing by choosing distinct
// qualifiers.
func QualifiedKey(fibreKey, qualifier string) string {
	if qualifier == "" {
		return fibreKey
	}

	return fibreKey + "#" + qualifier
}
