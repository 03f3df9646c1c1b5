package fibration

import (
	"encoding/json"
	"sort"

	"github.com/katalvlaran/fibra/category"
)

// Snapshot is the generic structured view of a registry: nested
// {id,label,children} trees plus parallel morphism and annotation
// collections. It exists for inspection and visualization by a
// collaborator, not as a storage format.
type Snapshot struct {
	// Trees maps every registered node id to its tree.
	Trees map[string]*category.Node `json:"trees"`

	// Morphisms lists registered morphisms sorted by (source, target).
	Morphisms []*category.Morphism `json:"morphisms"`

	// Annotations maps tree id → qualified fibre key → data.
	Annotations map[string]map[string]any `json:"annotations"`
}

// Snapshot captures the current registry state. Trees are shared by
// reference (they are immutable); morphism and annotation collections
// are copied. The morphism list is sorted for reproducible output.
// Complexity: O(T + M log M + A)
func (fb *Fibration) Snapshot() *Snapshot {
	if fb == nil {
		return &Snapshot{
			Trees:       map[string]*category.Node{},
			Morphisms:   []*category.Morphism{},
			Annotations: map[string]map[string]any{},
		}
	}
	fb.mu.RLock()
	defer fb.mu.RUnlock()

	snap := &Snapshot{
		Trees:       make(map[string]*category.Node, len(fb.trees)),
		Morphisms:   make([]*category.Morphism, 0, len(fb.morphisms)),
		Annotations: make(map[string]map[string]any, len(fb.annotations)),
	}
	for id, t := range fb.trees {
		snap.Trees[id] = t
	}
	for _, m := range fb.morphisms {
		snap.Morphisms = append(snap.Morphisms, m)
	}
	sort.Slice(snap.Morphisms, func(i, j int) bool {
		if snap.Morphisms[i].SourceID != snap.Morphisms[j].SourceID {
			return snap.Morphisms[i].SourceID < snap.Morphisms[j].SourceID
		}

		return snap.Morphisms[i].TargetID < snap.Morphisms[j].TargetID
	})
	for id, entry := range fb.annotations {
		cp := make(map[string]any, len(entry))
		for k, v := range entry {
			cp[k] = v
		}
		snap.Annotations[id] = cp
	}

	return snap
}

// ExportJSON serializes the registry snapshot as indented JSON.
func (fb *Fibration) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(fb.Snapshot(), "", "  ")
}
