package motif

import (
	"runtime"
	"sync"
)

// EnumerateParallel runs ESU across workers goroutines, one root vertex at a
// time pulled off a shared channel, each worker canonicalizing against the
// Driver's shared Memo but accumulating its own local Result — merged into
// one final Result only after every worker finishes. workers <= 0 defaults
// to runtime.NumCPU(), the same fallback the worker-pool pattern this is
// modeled on uses.
//
// The result is identical, map-for-map and total-for-total, to what
// Enumerate produces: both drivers visit the same roots and apply the same
// canonicalization, just in a different order, and Counts/total are
// commutative over that order.
func (d *Driver) EnumerateParallel(workers int) (*Result, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := d.Graph.N()
	roots := make(chan int, n)
	for r := 0; r < n; r++ {
		roots <- r
	}
	close(roots)

	results := make([]*Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			local := d.worker()
			res := NewResult()
			for root := range roots {
				if err := local.walkRoot(root, res, nil); err != nil {
					errs[idx] = err
					return
				}
			}
			results[idx] = res
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	final := NewResult()
	for _, r := range results {
		if r != nil {
			final.merge(r)
		}
	}
	return final, nil
}

// EnumerateGroupsParallel is EnumerateParallel's counterpart that also
// tracks per-vertex orbit-role membership.
func (d *Driver) EnumerateGroupsParallel(workers int) (*Result, *GroupResult, error) {
	if err := d.validate(); err != nil {
		return nil, nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := d.Graph.N()
	roots := make(chan int, n)
	for r := 0; r < n; r++ {
		roots <- r
	}
	close(roots)

	results := make([]*Result, workers)
	groupResults := make([]*GroupResult, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			local := d.worker()
			res := NewResult()
			groups := NewGroupResult()
			for root := range roots {
				if err := local.walkRoot(root, res, groups); err != nil {
					errs[idx] = err
					return
				}
			}
			results[idx] = res
			groupResults[idx] = groups
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	final := NewResult()
	finalGroups := NewGroupResult()
	for i := range results {
		if results[i] != nil {
			final.merge(results[i])
			finalGroups.merge(groupResults[i])
		}
	}
	finalGroups.Total = final.Total
	finalGroups.NumUnique = len(final.Counts)
	return final, finalGroups, nil
}

// worker returns a Driver sharing this Driver's graph, oracle, and Memo, but
// with its own local lab/orbit position cache — Walker state and dense
// buffers are never shared between goroutines.
func (d *Driver) worker() *Driver {
	return &Driver{
		Graph:  d.Graph,
		K:      d.K,
		Oracle: d.Oracle,
		Memo:   d.Memo,
		labPos: map[string]labPos{},
	}
}
