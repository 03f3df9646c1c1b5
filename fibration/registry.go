package fibration

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// freshID mints the next node id from the monotonic counter.
func (fb *Fibration) freshID() string {
	return fmt.Sprintf("n%d", atomic.AddUint64(&fb.nextID, 1))
}

// AddTree registers a tree under its root id.
//
// Re-registering the same id with an equal structure is idempotent;
// re-registering it with a different structure returns ErrTreeConflict.
// Complexity: O(V) for the structural comparison on conflict checks.
func (fb *Fibration) AddTree(t *category.Node) error {
	if fb == nil {
		return ErrNilRegistry
	}
	if t == nil {
		return ErrNilTree
	}
	if t.ID == "" {
		return ErrEmptyTreeID
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if prev, ok := fb.trees[t.ID]; ok {
		if prev.Equal(t) {
			return nil
		}

		return fmt.Errorf("%w: %q", ErrTreeConflict, t.ID)
	}
	fb.trees[t.ID] = t

	return nil
}

// Tree returns the registered tree for id, or nil when absent.
func (fb *Fibration) Tree(id string) *category.Node {
	if fb == nil {
		return nil
	}
	fb.mu.RLock()
	defer fb.mu.RUnlock()

	return fb.trees[id]
}

// AddMorphism registers a morphism keyed by its (source, target) pair,
// replacing any prior registration for that pair.
func (fb *Fibration) AddMorphism(m *category.Morphism) error {
	if fb == nil {
		return ErrNilRegistry
	}
	if m == nil {
		return category.ErrNilMorphism
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.morphisms[morphKey{src: m.SourceID, dst: m.TargetID}] = m

	return nil
}

// Morphism returns the registered morphism for the (source, target)
// pair, or nil when absent.
func (fb *Fibration) Morphism(sourceID, targetID string) *category.Morphism {
	if fb == nil {
		return nil
	}
	fb.mu.RLock()
	defer fb.mu.RUnlock()

	return fb.morphisms[morphKey{src: sourceID, dst: targetID}]
}

// Annotate stores fibre data for a tree under the plain fibre key,
// overwriting any existing entry for that exact key.
func (fb *Fibration) Annotate(treeID, fibreKey string, data any) {
	fb.AnnotateQualified(treeID, fibreKey, "", data)
}

// AnnotateQualified stores fibre data under a qualified key so multiple
// instances of the same fibre type can annotate one tree independently.
func (fb *Fibration) AnnotateQualified(treeID, fibreKey, qualifier string, data any) {
	if fb == nil {
		return
	}
	key := QualifiedKey(fibreKey, qualifier)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	entry, ok := fb.annotations[treeID]
	if !ok {
		entry = make(map[string]any)
		fb.annotations[treeID] = entry
	}
	entry[key] = data
}

// RawAnnotation returns the stored data for (tree id, qualified key)
// without type recovery. The second result reports presence.
func (fb *Fibration) RawAnnotation(treeID, qualifiedKey string) (any, bool) {
	if fb == nil {
		return nil, false
	}
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	entry, ok := fb.annotations[treeID]
	if !ok {
		return nil, false
	}
	data, ok := entry[qualifiedKey]

	return data, ok
}

// Annotation returns the typed annotation a fibre stored for a tree
// under its plain key. The second result is false when the entry is
// absent or holds data of a different type.
func Annotation[F any](fb *Fibration, treeID string, f fibre.Fibre[F]) (F, bool) {
	var zero F
	if fb == nil || f == nil {
		return zero, false
	}
	raw, ok := fb.RawAnnotation(treeID, f.Key())
	if !ok {
		return zero, false
	}
	typed, ok := raw.(F)
	if !ok {
		return zero, false
	}

	return typed, true
}

// ensureAnnotated returns the existing annotation for a node or, when
// absent, stores and returns the fibre's identity data.
func ensureAnnotated[F any](fb *Fibration, f fibre.Fibre[F], n *category.Node) F {
	if data, ok := Annotation(fb, n.ID, f); ok {
		return data
	}
	data := f.Identity(n)
	fb.Annotate(n.ID, f.Key(), data)

	return data
}
