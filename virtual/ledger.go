package virtual

// Ledger stores measured item sizes keyed by identity.
//
// The average of all distinct measured sizes replaces the caller-supplied
// estimate as soon as one measurement exists. Overwriting the size of an id
// that was already measured swaps its contribution in the running total
// (subtract old, add new) so no id is counted twice. Entries are never
// evicted; ids that leave the data set keep informing the average.
type Ledger[K comparable] struct {
	sizes     map[K]float64
	total     float64
	estimated float64
}

// NewLedger returns an empty ledger that falls back to estimated until the
// first measurement is recorded.
func NewLedger[K comparable](estimated float64) *Ledger[K] {
	return &Ledger[K]{
		sizes:     make(map[K]float64),
		estimated: nonNegative(estimated),
	}
}

// RecordSize stores or overwrites the measured size of id. Negative sizes
// are recorded as zero.
func (l *Ledger[K]) RecordSize(id K, size float64) {
	size = nonNegative(size)
	if old, ok := l.sizes[id]; ok {
		l.total += size - old
	} else {
		l.total += size
	}
	l.sizes[id] = size
}

// Lookup returns the measured size of id, if any.
func (l *Ledger[K]) Lookup(id K) (float64, bool) {
	s, ok := l.sizes[id]
	return s, ok
}

// Has reports whether id has been measured.
func (l *Ledger[K]) Has(id K) bool {
	_, ok := l.sizes[id]
	return ok
}

// SizeOf returns the measured size of id or the current estimate.
func (l *Ledger[K]) SizeOf(id K) float64 {
	if s, ok := l.sizes[id]; ok {
		return s
	}
	return l.Estimate()
}

// OffsetOf sums SizeOf over ids. It is linear in len(ids); the engine uses
// its cumulative index instead on the scroll path.
func (l *Ledger[K]) OffsetOf(ids []K) float64 {
	est := l.Estimate()
	var sum float64
	for _, id := range ids {
		if s, ok := l.sizes[id]; ok {
			sum += s
		} else {
			sum += est
		}
	}
	return sum
}

// Estimate is the size assumed for unmeasured items: the running average
// once anything has been measured, the configured estimate before that.
func (l *Ledger[K]) Estimate() float64 {
	if n := len(l.sizes); n > 0 {
		return l.total / float64(n)
	}
	return l.estimated
}

// Average returns the mean of all distinct measured sizes, or 0 when
// nothing has been measured.
func (l *Ledger[K]) Average() float64 {
	if n := len(l.sizes); n > 0 {
		return l.total / float64(n)
	}
	return 0
}

// Estimated returns the caller-supplied initial estimate.
func (l *Ledger[K]) Estimated() float64 { return l.estimated }

// SetEstimated replaces the initial estimate.
func (l *Ledger[K]) SetEstimated(v float64) { l.estimated = nonNegative(v) }

// Measured returns the number of distinct measured ids.
func (l *Ledger[K]) Measured() int { return len(l.sizes) }
