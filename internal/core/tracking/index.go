package tracking

import "slices"

// Index groups a table by play key once so plays can be sliced out without rescanning
// rows inside a group keep file order
type Index struct {
	keys   []Key
	groups map[Key][]Row
	rows   int
}

// NewIndex builds an index over t, a nil table yields an empty index
func NewIndex(t *Table) *Index {
	ix := &Index{groups: map[Key][]Row{}}
	if t == nil {
		return ix
	}
	ix.rows = len(t.Rows)
	for _, r := range t.Rows {
		k := r.Key()
		if _, ok := ix.groups[k]; !ok {
			ix.keys = append(ix.keys, k)
		}
		ix.groups[k] = append(ix.groups[k], r)
	}
	slices.SortFunc(ix.keys, Compare)
	return ix
}

// Rows returns the rows for k in file order, nil when the play is absent
// callers must not mutate the returned slice
func (ix *Index) Rows(k Key) []Row {
	if ix == nil {
		return nil
	}
	return ix.groups[k]
}

// Keys returns every play key in ascending order
func (ix *Index) Keys() []Key {
	if ix == nil {
		return nil
	}
	return slices.Clone(ix.keys)
}

// Len returns the total row count across all plays
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.rows
}

// Plays returns the number of distinct play keys
func (ix *Index) Plays() int {
	if ix == nil {
		return 0
	}
	return len(ix.keys)
}
