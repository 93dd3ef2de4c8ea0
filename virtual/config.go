package virtual

import (
	"math"

	"github.com/miosa/osa-vlist/internal/logging"
)

// Defaults applied by New before options run.
const (
	DefaultKeeps         = 30
	DefaultEstimatedSize = 1
)

// Config is the engine's tunable state. The ordered id sequence is kept
// apart from it because its type depends on the engine's key type; patch it
// with Engine.SetUniqueIDs.
type Config struct {
	// Keeps is the number of items rendered at once, at least 1.
	Keeps int
	// Buffer is the number of extra items rendered on each side.
	Buffer int
	// EstimatedSize is assumed for items before any has been measured.
	EstimatedSize float64
	// SlotHeaderSize and SlotFooterSize are the sizes of the regions
	// pinned before and after the items inside the scrolled content.
	SlotHeaderSize float64
	SlotFooterSize float64
	// Disabled turns windowing off: every item is in range, no padding.
	Disabled bool
	// Logger receives debug records for range changes.
	Logger logging.Logger
}

// Option patches one Config field. The same options serve New and
// Engine.UpdateParam.
type Option func(*Config)

// WithKeeps sets the number of items kept rendered.
func WithKeeps(n int) Option {
	return func(c *Config) { c.Keeps = n }
}

// WithBuffer sets the extra items rendered on each side of the viewport.
func WithBuffer(n int) Option {
	return func(c *Config) { c.Buffer = n }
}

// WithEstimatedSize sets the size assumed before anything is measured.
func WithEstimatedSize(size float64) Option {
	return func(c *Config) { c.EstimatedSize = size }
}

// WithSlotHeaderSize sets the size of the header region.
func WithSlotHeaderSize(size float64) Option {
	return func(c *Config) { c.SlotHeaderSize = size }
}

// WithSlotFooterSize sets the size of the footer region.
func WithSlotFooterSize(size float64) Option {
	return func(c *Config) { c.SlotFooterSize = size }
}

// WithDisabled turns windowing off or back on.
func WithDisabled(disabled bool) Option {
	return func(c *Config) { c.Disabled = disabled }
}

// WithLogger sets the logger. A nil logger discards.
func WithLogger(l logging.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// RecommendedBuffer is a third of keeps, rounded.
func RecommendedBuffer(keeps int) int {
	return int(math.Round(float64(keeps) / 3))
}

func defaultConfig() Config {
	return Config{
		Keeps:         DefaultKeeps,
		Buffer:        RecommendedBuffer(DefaultKeeps),
		EstimatedSize: DefaultEstimatedSize,
		Logger:        logging.Discard,
	}
}

// normalize clamps every field into its valid domain.
func (c *Config) normalize() {
	if c.Keeps < 1 {
		c.Keeps = 1
	}
	if c.Buffer < 0 {
		c.Buffer = 0
	}
	c.EstimatedSize = nonNegative(c.EstimatedSize)
	c.SlotHeaderSize = nonNegative(c.SlotHeaderSize)
	c.SlotFooterSize = nonNegative(c.SlotFooterSize)
	if c.Logger == nil {
		c.Logger = logging.Discard
	}
}
