// Package nonce produces strictly increasing request nonces.
package nonce

import (
	"sync/atomic"
	"time"
)

// Source hands out request nonces.
type Source interface {
	Next() int64
}

// Generator issues millisecond timestamps, bumped by one whenever the clock
// has not advanced past the previous value. Safe for concurrent use.
type Generator struct {
	last atomic.Int64
	now  func() time.Time
}

// New returns a Generator backed by the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator reading time from now.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns a nonce greater than every value previously returned.
func (g *Generator) Next() int64 {
	for {
		prev := g.last.Load()
		next := g.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}

// Last returns the most recently issued nonce, or zero.
func (g *Generator) Last() int64 {
	return g.last.Load()
}
