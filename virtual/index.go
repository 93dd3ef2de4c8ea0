package virtual

import "math"

// offsetIndex answers cumulative-size queries over the ordered id sequence
// in O(log n).
//
// Two Fenwick trees are kept: the sum of measured sizes and the count of
// measured items. Unmeasured items are priced at query time with the
// current estimate, so a moving average never forces a rebuild:
//
//	prefix(i) = measuredSum(i) + (i - measuredCount(i)) * estimate
//
// The tree is rebuilt from the ledger only when the id sequence changes.
// Ids are expected to be unique; with duplicates only the last position of
// an id tracks later size updates.
type offsetIndex[K comparable] struct {
	ids  []K
	pos  map[K]int
	size []float64 // measured size per position, valid when has[i]
	has  []bool
	sum  []float64 // 1-based Fenwick tree of measured sizes
	cnt  []int     // 1-based Fenwick tree of measured counts
	top  int       // highest power of two <= len(ids)
}

func (x *offsetIndex[K]) len() int { return len(x.ids) }

// rebuild resets the index to ids, pulling every known size from l.
func (x *offsetIndex[K]) rebuild(ids []K, l *Ledger[K]) {
	n := len(ids)
	x.ids = ids
	x.pos = make(map[K]int, n)
	x.size = make([]float64, n)
	x.has = make([]bool, n)
	x.sum = make([]float64, n+1)
	x.cnt = make([]int, n+1)

	for i, id := range ids {
		x.pos[id] = i
		if s, ok := l.Lookup(id); ok {
			x.size[i] = s
			x.has[i] = true
			x.sum[i+1] = s
			x.cnt[i+1] = 1
		}
	}
	// Linear-time Fenwick construction.
	for i := 1; i <= n; i++ {
		if j := i + (i & -i); j <= n {
			x.sum[j] += x.sum[i]
			x.cnt[j] += x.cnt[i]
		}
	}

	x.top = 0
	if n > 0 {
		x.top = 1
		for x.top<<1 <= n {
			x.top <<= 1
		}
	}
}

// set records a measured size for id. Ids outside the sequence are ignored.
func (x *offsetIndex[K]) set(id K, size float64) {
	p, ok := x.pos[id]
	if !ok {
		return
	}
	var ds float64
	var dc int
	if x.has[p] {
		ds = size - x.size[p]
	} else {
		ds, dc = size, 1
		x.has[p] = true
	}
	x.size[p] = size
	if ds == 0 && dc == 0 {
		return
	}
	for i := p + 1; i < len(x.sum); i += i & -i {
		x.sum[i] += ds
		x.cnt[i] += dc
	}
}

// prefix returns the total size of positions [0, i).
func (x *offsetIndex[K]) prefix(i int, est float64) float64 {
	i = clamp(i, 0, len(x.ids))
	var s float64
	var c int
	for j := i; j > 0; j -= j & -j {
		s += x.sum[j]
		c += x.cnt[j]
	}
	return s + float64(i-c)*est
}

// total returns the size of the whole sequence.
func (x *offsetIndex[K]) total(est float64) float64 {
	return x.prefix(len(x.ids), est)
}

// locateEpsilon is the relative tolerance for boundary hits. Prefix sums
// taken along different tree paths drift apart by a few ulps per term, and
// the drift grows with the magnitude of the total.
const locateEpsilon = 1e-9

// locate returns the index of the item at offset. When an item starts
// exactly at offset, the first such item wins, so zero-size items are
// addressable by their own offset. Otherwise it is the item whose extent
// covers offset. Offsets past the end return len(ids).
func (x *offsetIndex[K]) locate(offset, est float64) int {
	slack := locateEpsilon * max(1, math.Abs(offset))
	if offset-slack <= 0 {
		return 0
	}
	covering := x.descend(offset+slack, est, true)
	starting := x.descend(offset-slack, est, false) + 1
	return min(covering, starting)
}

// descend returns the largest p in [0, len] with prefix(p) below limit, or
// at most limit when inclusive is set. Sizes are non-negative, so prefix is
// monotonic and one root-to-leaf walk suffices.
func (x *offsetIndex[K]) descend(limit, est float64, inclusive bool) int {
	n := len(x.ids)
	pos := 0
	var acc float64
	for step := x.top; step > 0; step >>= 1 {
		next := pos + step
		if next > n {
			continue
		}
		// Node next covers exactly step positions at this depth.
		s := acc + x.sum[next] + float64(step-x.cnt[next])*est
		if s < limit || (inclusive && s == limit) {
			pos = next
			acc = s
		}
	}
	return pos
}
