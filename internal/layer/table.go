package layer

import "fmt"

// Table is an ordered sequence of layers plus a name→index index. Order
// defines resolution priority: the LayerComposer consults the table in
// reverse, so later layers take priority over earlier ones. Layers are
// stored once, in the arena (the slice); ByName lookups go through the
// index rather than a second map of *Layer, so mutation through either
// route (index or name) always touches the same Layer value.
type Table struct {
	arena []*Layer
	index map[string]int
}

// NewTable builds a Table from layers, declared in priority order
// (lowest priority first). It rejects duplicate layer names and any
// TapToggle(ByName(s), _) control code whose s does not name a layer in
// this table — the invariant spec §3 requires, enforced once here so
// nothing downstream needs to re-check it.
func NewTable(layers []*Layer) (*Table, error) {
	index := make(map[string]int, len(layers))
	for i, l := range layers {
		if _, dup := index[l.Name()]; dup {
			return nil, fmt.Errorf("duplicate layer name %q", l.Name())
		}
		index[l.Name()] = i
	}

	t := &Table{arena: layers, index: index}

	for _, l := range layers {
		for _, ccs := range l.lookup {
			for _, cc := range ccs {
				if cc.Kind != CCTapToggle || cc.Ref.Kind != RefByName {
					continue
				}
				if _, ok := index[cc.Ref.Name]; !ok {
					return nil, fmt.Errorf("layer %q: tap-toggle references unknown layer %q", l.Name(), cc.Ref.Name)
				}
			}
		}
	}

	return t, nil
}

// Len returns the number of layers in the table.
func (t *Table) Len() int { return len(t.arena) }

// ByIndex returns the layer at position i, panicking if i is out of
// range — a consequence of an invalid LayerRef escaping construction-time
// validation, which should never happen.
func (t *Table) ByIndex(i int) *Layer { return t.arena[i] }

// ByName returns the layer called name, or ok == false if none exists.
func (t *Table) ByName(name string) (*Layer, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.arena[i], true
}

// Resolve dereferences a LayerRef against this table.
func (t *Table) Resolve(ref LayerRef) (*Layer, error) {
	switch ref.Kind {
	case RefByIndex:
		if ref.Index < 0 || ref.Index >= len(t.arena) {
			return nil, fmt.Errorf("layer index %d out of range", ref.Index)
		}
		return t.arena[ref.Index], nil
	case RefByName:
		l, ok := t.ByName(ref.Name)
		if !ok {
			return nil, fmt.Errorf("unknown layer %q", ref.Name)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("invalid layer ref")
	}
}

// Layers returns the layers in declared priority order (lowest priority
// first). Callers that need reverse (resolution) order should iterate it
// backwards, as LayerComposer does.
func (t *Table) Layers() []*Layer {
	return t.arena
}
