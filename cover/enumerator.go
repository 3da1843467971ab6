package cover

import "github.com/katalvlaran/dlxdeals/dlx"

// Enumerator runs the partial-cover search over a single dlx.Matrix. It
// holds no state of its own beyond the matrix reference; a given Matrix
// may be wrapped by at most one Enumerator at a time (the search mutates
// the matrix in place and is not reentrant against concurrent callers
// sharing the matrix).
type Enumerator struct {
	m *dlx.Matrix
}

// New wraps m for partial-cover enumeration.
func New(m *dlx.Matrix) *Enumerator {
	return &Enumerator{m: m}
}

// CoveringRows enumerates every partial covering of the whole matrix,
// i.e. CoveringRowsFrom(m.Header()).
func (e *Enumerator) CoveringRows() ([][]any, error) {
	return e.CoveringRowsFrom(e.m.Header())
}

// CoveringRowsFrom enumerates every partial covering reachable using only
// rows strictly downward from start, in the matrix's current attached
// order. The matrix is bit-identical before and after this call returns.
func (e *Enumerator) CoveringRowsFrom(start dlx.Node) ([][]any, error) {
	result := [][]any{{}}

	rows, err := e.m.Rows(start)
	if err != nil {
		return nil, err
	}

	for r := range rows {
		removals, err := e.detachConflicts(r)
		if err != nil {
			return nil, err
		}

		sub, err := e.CoveringRowsFrom(r)
		if err != nil {
			return nil, err
		}
		for _, covering := range sub {
			combo := make([]any, 0, len(covering)+1)
			combo = append(combo, covering...)
			combo = append(combo, r.Datum())
			result = append(result, combo)
		}

		for i := len(removals) - 1; i >= 0; i-- {
			if err := e.m.ReattachRow(removals[i]); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// detachConflicts detaches every row that shares a column with r (in the
// order encountered), then r itself, and returns the detached rows in the
// order they must be reattached (LIFO, i.e. reverse of this slice).
func (e *Enumerator) detachConflicts(r dlx.Node) ([]dlx.Node, error) {
	var removals []dlx.Node
	for x := range e.m.RowEntries(r) {
		col := x.Col()
		for y := range e.m.ColumnEntries(col) {
			conflict := y.Row()
			if conflict == r || !conflict.Inserted() {
				continue
			}
			if err := e.m.DetachRow(conflict); err != nil {
				return nil, err
			}
			removals = append(removals, conflict)
		}
	}
	if err := e.m.DetachRow(r); err != nil {
		return nil, err
	}
	removals = append(removals, r)
	return removals, nil
}
