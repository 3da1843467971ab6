package dlx

import "iter"

// Rows returns a lazy sequence of row sentinels reachable downward from
// from, excluding from itself, terminating when the walk returns to the
// header. When from is the header, this walks every currently attached
// row in construction order; when from is a row already chosen by the
// caller, this walks the rows still reachable below it — exactly the
// "rows reachable downward from start" package cover's search needs.
//
// Returns ErrForeignNode if from does not belong to m.
func (m *Matrix) Rows(from Node) (iter.Seq[Node], error) {
	if err := m.own(from); err != nil {
		return nil, err
	}
	return func(yield func(Node) bool) {
		for idx := m.nodes[from.idx].down; idx != headerIndex; idx = m.nodes[idx].down {
			if !yield(Node{m: m, idx: idx}) {
				return
			}
		}
	}, nil
}

// Cols is the horizontal dual of Rows: a lazy sequence of column
// sentinels reachable rightward from from, terminating at the header.
//
// Returns ErrForeignNode if from does not belong to m.
func (m *Matrix) Cols(from Node) (iter.Seq[Node], error) {
	if err := m.own(from); err != nil {
		return nil, err
	}
	return func(yield func(Node) bool) {
		for idx := m.nodes[from.idx].right; idx != headerIndex; idx = m.nodes[idx].right {
			if !yield(Node{m: m, idx: idx}) {
				return
			}
		}
	}, nil
}

// RowEntries yields the entries currently linked into row r's own
// horizontal ring, left to right starting just after r, until the ring
// closes back on r. Unlike Rows/Cols this never reaches the header: a
// row's ring is anchored at the row sentinel itself.
func (m *Matrix) RowEntries(r Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for idx := m.nodes[r.idx].right; idx != r.idx; idx = m.nodes[idx].right {
			if !yield(Node{m: m, idx: idx}) {
				return
			}
		}
	}
}

// ColumnEntries yields the entries currently linked into column c's own
// vertical ring, top to bottom starting just after c, until the ring
// closes back on c.
func (m *Matrix) ColumnEntries(c Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for idx := m.nodes[c.idx].down; idx != c.idx; idx = m.nodes[idx].down {
			if !yield(Node{m: m, idx: idx}) {
				return
			}
		}
	}
}
