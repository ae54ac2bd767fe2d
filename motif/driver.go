// Package motif drives the ESU descent across every root vertex, turns each
// discovered subgraph into a canonical label via an external oracle, and
// accumulates counts and (optionally) per-vertex orbit-role memberships.
package motif

import (
	"fmt"

	"github.com/motifscan/motifscan/bitgraph"
	"github.com/motifscan/motifscan/canon"
	"github.com/motifscan/motifscan/walker"
)

// Driver runs ESU enumeration over a fixed graph and motif size.
type Driver struct {
	Graph  *bitgraph.BitGraph
	K      int
	Oracle canon.Oracle
	Memo   *Memo // nil disables memoization; every subgraph hits the oracle

	// labPos caches each raw key's lab/orbits arrays from the last time
	// this Driver actually ran the oracle for it, so a Memo hit in the
	// EnumerateGroups path can still report correct per-vertex positions
	// without re-invoking the oracle. It is Driver-local (not shared across
	// parallel workers) since it is a pure speed optimization, not a
	// correctness requirement — a worker that hasn't seen a raw key before
	// simply falls through to a fresh oracle call.
	labPos map[string]labPos
}

type labPos struct {
	lab    []int
	orbits []int
}

// NewDriver returns a Driver with Backtrack as its default oracle and a
// fresh Memo.
func NewDriver(g *bitgraph.BitGraph, k int) *Driver {
	return &Driver{
		Graph:  g,
		K:      k,
		Oracle: canon.Backtrack{},
		Memo:   NewMemo(),
		labPos: map[string]labPos{},
	}
}

// Enumerate runs the serial ESU driver and returns motif counts.
func (d *Driver) Enumerate() (*Result, error) {
	res := NewResult()
	if err := d.validate(); err != nil {
		return nil, err
	}
	for root := 0; root < d.Graph.N(); root++ {
		if err := d.walkRoot(root, res, nil); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// EnumerateGroups runs the serial ESU driver and returns per-vertex orbit
// membership alongside the usual counts.
func (d *Driver) EnumerateGroups() (*Result, *GroupResult, error) {
	res := NewResult()
	groups := NewGroupResult()
	if err := d.validate(); err != nil {
		return nil, nil, err
	}
	for root := 0; root < d.Graph.N(); root++ {
		if err := d.walkRoot(root, res, groups); err != nil {
			return nil, nil, err
		}
	}
	groups.Total = res.Total
	groups.NumUnique = len(res.Counts)
	return res, groups, nil
}

func (d *Driver) validate() error {
	if d.K < 2 {
		return fmt.Errorf("motif: motif size %d is below the minimum of 2: %w", d.K, bitgraph.ErrConfigInvalid)
	}
	if d.K > d.Graph.N() {
		return fmt.Errorf("motif: motif size %d exceeds graph order %d: %w", d.K, d.Graph.N(), bitgraph.ErrConfigInvalid)
	}
	return nil
}

// walkRoot runs one root's Walker to completion, canonicalizing and
// recording every emitted size-K subgraph.
func (d *Driver) walkRoot(root int, res *Result, groups *GroupResult) error {
	w := walker.New(d.Graph, d.K, root)
	for !w.IsFinished() {
		if w.IsDescending() && w.HasExtension() {
			w.Descend()
			if len(w.Subgraph()) == d.K {
				if err := d.record(w.Subgraph(), res, groups); err != nil {
					return err
				}
				w.Ascend()
			}
		} else {
			w.Ascend()
		}
	}
	return nil
}

func (d *Driver) record(members []int, res *Result, groups *GroupResult) error {
	dg := canon.Pack(d.Graph, members, d.Graph.Directed())
	rawKey := dg.RawKey()

	var key string
	memoHit := false
	if d.Memo != nil {
		if k, ok := d.Memo.Get(rawKey); ok {
			key = k
			memoHit = true
		}
	}

	var pos labPos
	if memoHit {
		pos = d.labPos[rawKey]
	}
	if !memoHit || pos.lab == nil {
		d.Oracle.Canonicalize(dg)
		if err := canon.Verify(dg); err != nil {
			return err
		}
		key = dg.Key()
		pos = labPos{lab: dg.Lab, orbits: dg.Orbits}
		if d.Memo != nil {
			d.Memo.Put(rawKey, key)
		}
		if d.labPos != nil {
			d.labPos[rawKey] = pos
		}
	}

	res.record(key, memoHit)

	if groups != nil {
		for i, v := range members {
			groups.record(v, GroupKey{Label: key, NodeLabel: pos.lab[i], Orbit: pos.orbits[i]})
		}
	}
	return nil
}
