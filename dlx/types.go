package dlx

import "fmt"

// nodeIndex is an arena offset into a Matrix's node slice. Using indices
// instead of raw pointers keeps a Matrix trivially movable and sidesteps
// any cyclic-ownership questions between nodes.
type nodeIndex int

// headerIndex is always the first node allocated for any Matrix.
const headerIndex nodeIndex = 0

// node is the arena-resident record backing every Node handle. datum
// carries a row's payload (for a row sentinel) or a column's payload (for
// a column sentinel); it is unused by entries and by the header.
type node struct {
	up, down, left, right, row, col nodeIndex
	datum                            any
}

// Node is a lightweight handle onto one node of a Matrix: a matrix
// pointer plus an arena index. Node values are comparable with == and are
// cheap to copy. A Node obtained before a call to Enumerator.CoveringRows
// (or any direct DetachRow/ReattachRow pair) must not be dereferenced
// concurrently with that call; see the package doc.
type Node struct {
	m   *Matrix
	idx nodeIndex
}

// Matrix is a Dancing Links sparse boolean matrix: rows and columns are
// circular doubly-linked rings anchored at a shared header, and at most
// one entry exists per (row, column) pair.
type Matrix struct {
	nodes []node
}

// Header returns the Matrix's root node. Header.Up/Down walk the row
// sentinels; Header.Left/Right walk the column sentinels.
func (m *Matrix) Header() Node {
	return Node{m: m, idx: headerIndex}
}

func (m *Matrix) own(n Node) error {
	if n.m != m {
		return fmt.Errorf("dlx: %w", ErrForeignNode)
	}
	return nil
}

func (m *Matrix) append(n node) nodeIndex {
	idx := nodeIndex(len(m.nodes))
	m.nodes = append(m.nodes, n)
	return idx
}

// NewMatrix builds a Matrix from a sequence of row payloads, a sequence of
// column payloads, and a predicate deciding which (row, column) cells hold
// an entry. Rows and columns are spliced into the header's rings in the
// order given; entries are created outer-over-rows, inner-over-columns, so
// each new entry is the bottom-right-most node in its row and column at
// the moment it is inserted — every splice below is O(1), giving
// O(len(rows)*len(cols)) construction time and O(rows+cols+entries) space.
//
// Returns ErrBadShape if predicate is nil or if rows or cols contains a
// nil payload.
func NewMatrix(rows []any, cols []any, predicate func(row, col any) bool) (*Matrix, error) {
	if predicate == nil {
		return nil, fmt.Errorf("dlx: new matrix: %w: predicate must not be nil", ErrBadShape)
	}
	for i, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("dlx: new matrix: %w: row %d has a nil payload", ErrBadShape, i)
		}
	}
	for j, c := range cols {
		if c == nil {
			return nil, fmt.Errorf("dlx: new matrix: %w: column %d has a nil payload", ErrBadShape, j)
		}
	}

	m := &Matrix{nodes: make([]node, 0, 1+len(rows)+len(cols))}
	m.append(node{up: headerIndex, down: headerIndex, left: headerIndex, right: headerIndex, row: headerIndex, col: headerIndex})

	rowIdx := make([]nodeIndex, len(rows))
	for i, payload := range rows {
		last := m.nodes[headerIndex].up
		idx := m.append(node{up: last, down: headerIndex, left: 0, right: 0, row: 0, col: headerIndex, datum: payload})
		m.nodes[idx].left = idx
		m.nodes[idx].right = idx
		m.nodes[idx].row = idx
		m.nodes[last].down = idx
		m.nodes[headerIndex].up = idx
		rowIdx[i] = idx
	}

	colIdx := make([]nodeIndex, len(cols))
	for j, payload := range cols {
		last := m.nodes[headerIndex].left
		idx := m.append(node{up: 0, down: 0, left: last, right: headerIndex, row: headerIndex, col: 0, datum: payload})
		m.nodes[idx].up = idx
		m.nodes[idx].down = idx
		m.nodes[idx].col = idx
		m.nodes[last].right = idx
		m.nodes[headerIndex].left = idx
		colIdx[j] = idx
	}

	for i, rowPayload := range rows {
		ri := rowIdx[i]
		for j, colPayload := range cols {
			if !predicate(rowPayload, colPayload) {
				continue
			}
			ci := colIdx[j]
			up := m.nodes[ci].up
			left := m.nodes[ri].left
			idx := m.append(node{up: up, down: ci, left: left, right: ri, row: ri, col: ci})
			m.nodes[up].down = idx
			m.nodes[ci].up = idx
			m.nodes[left].right = idx
			m.nodes[ri].left = idx
		}
	}

	return m, nil
}

// Up returns n's upward neighbor.
func (n Node) Up() Node { return Node{m: n.m, idx: n.m.nodes[n.idx].up} }

// Down returns n's downward neighbor.
func (n Node) Down() Node { return Node{m: n.m, idx: n.m.nodes[n.idx].down} }

// Left returns n's leftward neighbor.
func (n Node) Left() Node { return Node{m: n.m, idx: n.m.nodes[n.idx].left} }

// Right returns n's rightward neighbor.
func (n Node) Right() Node { return Node{m: n.m, idx: n.m.nodes[n.idx].right} }

// Row returns the row sentinel n belongs to (n itself, if n is already a
// row sentinel or the header).
func (n Node) Row() Node { return Node{m: n.m, idx: n.m.nodes[n.idx].row} }

// Col returns the column sentinel n belongs to (n itself, if n is already
// a column sentinel or the header).
func (n Node) Col() Node { return Node{m: n.m, idx: n.m.nodes[n.idx].col} }

// Datum returns the row or column payload carried by n, or nil for the
// header and for entries.
func (n Node) Datum() any { return n.m.nodes[n.idx].datum }

// IsHeader reports whether n is the Matrix's root node.
func (n Node) IsHeader() bool { return n.idx == headerIndex }

// IsRowSentinel reports whether n anchors a row's horizontal ring.
func (n Node) IsRowSentinel() bool { return n.m.nodes[n.idx].row == n.idx }

// IsColSentinel reports whether n anchors a column's vertical ring.
func (n Node) IsColSentinel() bool { return n.m.nodes[n.idx].col == n.idx }

// IsEntry reports whether n represents a true cell rather than a sentinel.
func (n Node) IsEntry() bool { return !n.IsRowSentinel() && !n.IsColSentinel() }

// Inserted reports whether all four reciprocal link invariants hold for n:
// the structural property that must be true of every node at rest between
// public operations.
func (n Node) Inserted() bool {
	nd := n.m.nodes[n.idx]
	return n.m.nodes[nd.up].down == n.idx &&
		n.m.nodes[nd.down].up == n.idx &&
		n.m.nodes[nd.left].right == n.idx &&
		n.m.nodes[nd.right].left == n.idx
}

// CheckInvariants walks every node in m's arena and asserts the link-
// reciprocity invariant holds for each one. It is a debug-only helper,
// not part of any hot path: call it between public operations, on a
// matrix that is fully at rest — a matrix with a row deliberately
// mid-detach (e.g. partway through a cover.Enumerator search) will
// correctly fail this check, since that row's reciprocity is
// intentionally broken until it is reattached.
func (m *Matrix) CheckInvariants() error {
	for idx := range m.nodes {
		n := Node{m: m, idx: nodeIndex(idx)}
		if !n.Inserted() {
			return fmt.Errorf("dlx: check invariants: node %d: %w", idx, ErrBrokenInvariant)
		}
	}

	return nil
}
