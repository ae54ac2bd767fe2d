package motif

// Counts maps a canonical motif key to the number of times it was observed.
type Counts map[string]uint64

// GroupKey identifies one (motif class, local position, orbit) triple a
// vertex can belong to. Both the motif-local label and the orbit id are
// kept, per this system's resolution of the "should group info carry
// lab[i] too" question: the source this was modeled on stores both, and so
// does this package.
type GroupKey struct {
	Label     string
	NodeLabel int
	Orbit     int
}

// Groups maps a vertex to the multiset of GroupKeys it participated in,
// with per-key occurrence counts.
type Groups map[int]map[GroupKey]uint64

// Result is what an enumeration run produces.
type Result struct {
	Counts        Counts
	Total         uint64
	NumDuplicates uint64
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{Counts: Counts{}}
}

func (r *Result) record(key string, isMemoHit bool) {
	r.Counts[key]++
	r.Total++
	if isMemoHit {
		r.NumDuplicates++
	}
}

func (r *Result) merge(other *Result) {
	for k, v := range other.Counts {
		r.Counts[k] += v
	}
	r.Total += other.Total
	r.NumDuplicates += other.NumDuplicates
}

// GroupResult is what an enumeration run with role-tracking produces.
type GroupResult struct {
	Groups    Groups
	Total     uint64
	NumUnique int
}

// NewGroupResult returns an empty GroupResult.
func NewGroupResult() *GroupResult {
	return &GroupResult{Groups: Groups{}}
}

func (r *GroupResult) record(vertex int, key GroupKey) {
	g, ok := r.Groups[vertex]
	if !ok {
		g = map[GroupKey]uint64{}
		r.Groups[vertex] = g
	}
	g[key]++
}

func (r *GroupResult) merge(other *GroupResult) {
	for v, classes := range other.Groups {
		g, ok := r.Groups[v]
		if !ok {
			g = map[GroupKey]uint64{}
			r.Groups[v] = g
		}
		for k, c := range classes {
			g[k] += c
		}
	}
	r.Total += other.Total
}
