package virtual

import (
	"slices"

	"github.com/miosa/osa-vlist/internal/logging"
)

// Direction is the direction of the most recent scroll movement.
type Direction int

const (
	DirectionNone   Direction = iota
	DirectionFront            // toward the first item
	DirectionBehind           // toward the last item
)

func (d Direction) String() string {
	switch d {
	case DirectionFront:
		return "front"
	case DirectionBehind:
		return "behind"
	default:
		return "none"
	}
}

// Engine converts scroll offsets into render ranges for an ordered sequence
// of item identities.
//
// The listener passed to New runs synchronously, at most once per call, and
// only when the stored Range actually changed. Config patches made through
// UpdateParam or SetUniqueIDs are stored without side effects; call
// HandleDataSourcesChange or HandleSlotSizeChange afterwards so several
// patches coalesce into one recompute.
type Engine[K comparable] struct {
	cfg       Config
	ids       []K
	ledger    *Ledger[K]
	index     offsetIndex[K]
	stale     bool
	rng       Range
	offset    float64
	direction Direction
	onChange  func(Range)
	destroyed bool
	log       logging.Logger
}

// New builds an engine for ids. The initial range for offset 0 is computed
// immediately but not reported; read it with Range.
func New[K comparable](ids []K, onChange func(Range), opts ...Option) *Engine[K] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg.normalize()

	e := &Engine[K]{
		cfg:      cfg,
		ids:      slices.Clone(ids),
		ledger:   NewLedger[K](cfg.EstimatedSize),
		onChange: onChange,
		log:      cfg.Logger,
	}
	e.index.rebuild(e.ids, e.ledger)
	e.rng = e.compute()
	return e
}

// UpdateParam applies opts to the configuration. It never recomputes the
// range and never notifies.
func (e *Engine[K]) UpdateParam(opts ...Option) {
	for _, o := range opts {
		o(&e.cfg)
	}
	e.cfg.normalize()
	e.ledger.SetEstimated(e.cfg.EstimatedSize)
	e.log = e.cfg.Logger
}

// SetUniqueIDs replaces the ordered id sequence. Like UpdateParam it only
// stores; HandleDataSourcesChange applies it.
func (e *Engine[K]) SetUniqueIDs(ids []K) {
	e.ids = slices.Clone(ids)
	e.stale = true
}

// HandleScroll recomputes the range for a new scroll offset. The offset
// includes the header region; negative offsets are treated as zero.
func (e *Engine[K]) HandleScroll(offset float64) {
	offset = nonNegative(offset)
	switch {
	case offset < e.offset:
		e.direction = DirectionFront
	case offset > e.offset:
		e.direction = DirectionBehind
	}
	e.offset = offset
	e.update(e.compute())
}

// SaveSize records the measured size of id. The window itself does not
// move; only the pads of the current range are refreshed, and the listener
// fires when they changed.
func (e *Engine[K]) SaveSize(id K, size float64) {
	size = nonNegative(size)
	if old, ok := e.ledger.Lookup(id); ok && old == size {
		return
	}
	e.ledger.RecordSize(id, size)
	if e.stale {
		return
	}
	e.index.set(id, size)

	if e.cfg.Disabled || e.rng.Empty() || e.rng.End >= e.index.len() {
		return
	}
	next := e.rng
	next.PadFront, next.PadBehind = e.pads(next.Start, next.End)
	e.update(next)
}

// HandleDataSourcesChange applies the current id sequence and recomputes
// the range from the last known scroll offset, so the window stays where
// the user was instead of jumping to the top.
func (e *Engine[K]) HandleDataSourcesChange() {
	e.refresh()
	e.update(e.compute())
}

// HandleSlotSizeChange recomputes the range after the header or footer
// size was patched.
func (e *Engine[K]) HandleSlotSizeChange() {
	e.update(e.compute())
}

// Destroy releases the listener. It is safe to call more than once.
func (e *Engine[K]) Destroy() {
	e.onChange = nil
	e.destroyed = true
}

// Range returns the current render window.
func (e *Engine[K]) Range() Range { return e.rng }

// Offset returns the scroll offset at which item index starts, header
// included. Indices are clamped to [0, len].
func (e *Engine[K]) Offset(index int) float64 {
	e.refresh()
	return e.cfg.SlotHeaderSize + e.index.prefix(index, e.ledger.Estimate())
}

// IsUpper reports whether the window starts at the first item.
func (e *Engine[K]) IsUpper() bool { return e.rng.Start == 0 }

// IsLower reports whether the window ends at the last item.
func (e *Engine[K]) IsLower() bool { return e.rng.End == len(e.ids)-1 }

// TotalSize is the best estimate of the full scrollable size: header,
// every item measured or estimated, and footer.
func (e *Engine[K]) TotalSize() float64 {
	e.refresh()
	return e.cfg.SlotHeaderSize + e.index.total(e.ledger.Estimate()) + e.cfg.SlotFooterSize
}

// ScrollOffset returns the last offset passed to HandleScroll.
func (e *Engine[K]) ScrollOffset() float64 { return e.offset }

// Direction returns the direction of the last offset change.
func (e *Engine[K]) Direction() Direction { return e.direction }

// Len returns the number of ids applied to the window.
func (e *Engine[K]) Len() int { return len(e.ids) }

// Config returns a copy of the configuration.
func (e *Engine[K]) Config() Config { return e.cfg }

// Ledger exposes the size ledger for inspection.
func (e *Engine[K]) Ledger() *Ledger[K] { return e.ledger }

// refresh rebuilds the cumulative index after the id sequence changed.
func (e *Engine[K]) refresh() {
	if !e.stale {
		return
	}
	e.index.rebuild(e.ids, e.ledger)
	e.stale = false
}

// compute derives the range for the stored offset and configuration.
func (e *Engine[K]) compute() Range {
	e.refresh()
	n := e.index.len()
	if n == 0 {
		return emptyRange()
	}
	if e.cfg.Disabled {
		return Range{Start: 0, End: n - 1}
	}

	content := nonNegative(e.offset - e.cfg.SlotHeaderSize)
	anchor := min(e.index.locate(content, e.ledger.Estimate()), n-1)

	span := e.cfg.Keeps + 2*e.cfg.Buffer
	start := max(0, anchor-e.cfg.Buffer)
	end := min(n-1, start+span-1)
	// Near the tail, pull start back so the window keeps its full span.
	if end-start+1 < span {
		start = max(0, end-span+1)
	}

	front, behind := e.pads(start, end)
	return Range{Start: start, End: end, PadFront: front, PadBehind: behind}
}

func (e *Engine[K]) pads(start, end int) (front, behind float64) {
	est := e.ledger.Estimate()
	front = e.index.prefix(start, est)
	behind = e.index.total(est) - e.index.prefix(end+1, est)
	return front, nonNegative(behind)
}

// update stores r and notifies when it differs from the current range.
func (e *Engine[K]) update(r Range) {
	if r == e.rng {
		return
	}
	e.rng = r
	e.log.Debug("range changed",
		"start", r.Start, "end", r.End,
		"pad_front", r.PadFront, "pad_behind", r.PadBehind,
		"direction", e.direction.String())
	if e.onChange != nil && !e.destroyed {
		e.onChange(r)
	}
}
