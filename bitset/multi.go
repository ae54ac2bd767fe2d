package bitset

// Multi is a stack of k fixed-width Sets, indexed by recursion depth. It is
// the scratch space an ESU-style descent needs: one row per depth for the
// extension-candidate set, one for the closed neighborhood, one for the
// exclusive-neighborhood working set, and so on.
//
// The Rust original this is modeled on (noamteyssier/memoesu) keeps all rows
// in one flat buffer and reaches for split_at_mut to hand the borrow checker
// two disjoint mutable slices for a union/difference between depths. Go has
// no such restriction — each row already has its own backing []uint64 — so
// RowPair here is just a convenience accessor, not an unsafe escape hatch.
type Multi struct {
	width int
	sets  []Set
}

// NewMulti returns a Multi with `rows` rows, each a Set over `width` bits.
func NewMulti(rows, width int) Multi {
	sets := make([]Set, rows)
	for i := range sets {
		sets[i] = New(width)
	}
	return Multi{width: width, sets: sets}
}

// Rows returns the number of rows.
func (m Multi) Rows() int { return len(m.sets) }

// Width returns the bit width of each row.
func (m Multi) Width() int { return m.width }

// Row returns the Set backing row i.
func (m Multi) Row(i int) Set { return m.sets[i] }

// RowPair returns the Sets backing rows a and b, for callers that need to
// union or subtract between two depths without a temporary copy.
func (m Multi) RowPair(a, b int) (Set, Set) { return m.sets[a], m.sets[b] }

// ClearRow zeros row i.
func (m Multi) ClearRow(i int) { m.sets[i].ClearAll() }

// ClearRange zeros rows [from, to).
func (m Multi) ClearRange(from, to int) {
	for i := from; i < to; i++ {
		m.sets[i].ClearAll()
	}
}

// SetBit sets bit pos in row i.
func (m Multi) SetBit(i, pos int) { m.sets[i].Set(pos) }

// UnionRowInto ORs row src into row dst.
func (m Multi) UnionRowInto(dst, src int) { m.sets[dst].Union(m.sets[src]) }

// DifferenceRowFrom clears from row dst every bit set in row src.
func (m Multi) DifferenceRowFrom(dst, src int) { m.sets[dst].Difference(m.sets[src]) }

// UnionExternal ORs an external Set into row i.
func (m Multi) UnionExternal(i int, other Set) { m.sets[i].Union(other) }

// DifferenceExternal clears from row i every bit set in an external Set.
func (m Multi) DifferenceExternal(i int, other Set) { m.sets[i].Difference(other) }

// CopyRow overwrites row dst with row src's contents.
func (m Multi) CopyRow(dst, src int) { m.sets[dst].CopyFrom(m.sets[src]) }

// Ones calls yield for every set bit of row i, in ascending order.
func (m Multi) Ones(i int, yield func(pos int)) {
	row := m.sets[i]
	for p := row.NextOne(0); p >= 0; p = row.NextOne(p + 1) {
		yield(p)
	}
}
