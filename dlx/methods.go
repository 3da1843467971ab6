package dlx

// removeVertical unlinks n from whatever vertical ring it currently
// belongs to — the row-sentinel ring anchored at the header if n is a row
// sentinel, or a column's own entry ring if n is an entry — without
// touching n's own up/down pointers or anyone's left/right pointers. n's
// down pointer keeps pointing at whatever used to follow it, which is
// exactly what a later ReattachRow (or a recursive descent past n) needs.
func (m *Matrix) removeVertical(n nodeIndex) {
	up := m.nodes[n].up
	down := m.nodes[n].down
	m.nodes[up].down = down
	m.nodes[down].up = up
}

// insertVertical is the exact inverse of removeVertical: it splices n back
// between its own (unchanged) up and down neighbors.
func (m *Matrix) insertVertical(n nodeIndex) {
	up := m.nodes[n].up
	down := m.nodes[n].down
	m.nodes[up].down = n
	m.nodes[down].up = n
}

// DetachRow removes row sentinel r, and every entry currently linked into
// r's own horizontal ring, from their respective vertical rings. Horizontal
// links are left untouched, so r.Right() still walks r's entries and
// r.Down() still points at whatever row used to follow r — both needed by
// ReattachRow and by the recursive search in package cover.
func (m *Matrix) DetachRow(r Node) error {
	if err := m.own(r); err != nil {
		return err
	}
	m.removeVertical(r.idx)
	for e := m.nodes[r.idx].right; e != r.idx; e = m.nodes[e].right {
		m.removeVertical(e)
	}
	return nil
}

// ReattachRow undoes a DetachRow. A sequence of DetachRow calls must be
// reattached in LIFO order for the matrix to end up bit-identical to its
// state before the sequence began; within a single row, the order entries
// are reattached in does not matter, since a row's entries all live in
// distinct columns.
func (m *Matrix) ReattachRow(r Node) error {
	if err := m.own(r); err != nil {
		return err
	}
	m.insertVertical(r.idx)
	for e := m.nodes[r.idx].right; e != r.idx; e = m.nodes[e].right {
		m.insertVertical(e)
	}
	return nil
}
