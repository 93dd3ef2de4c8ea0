// Package virtual is the windowing core behind the terminal list.
//
// It owns two pieces of state:
//
//	Ledger: measured size per item identity, with a running average used as
//	        the estimate for items that have not been measured yet.
//	Engine: configuration, the current Range, and the conversion between a
//	        scroll offset and the contiguous slice of items to render.
//
// The package never touches the data items themselves, only their identities
// and sizes. All entry points are synchronous and normalise their input
// instead of returning errors. Nothing here is safe for concurrent use; the
// engine is meant to be driven from a single event loop.
package virtual
