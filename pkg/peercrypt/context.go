package peercrypt

import (
	"crypto/rand"
	"io"
)

// Context is the handle through which every operation runs. Contexts are
// explicitly constructed and injected rather than kept in thread-local
// state, and every operation returns its error directly, so independent
// contexts share nothing and concurrent use needs no locking.
type Context struct {
	rand io.Reader
}

// Option configures a Context.
type Option func(*Context)

// WithRand overrides the secure random source used by key generation.
// Intended for tests; production contexts keep the default crypto/rand.
func WithRand(r io.Reader) Option {
	return func(c *Context) {
		c.rand = r
	}
}

// NewContext creates a Context backed by crypto/rand unless overridden.
func NewContext(opts ...Option) *Context {
	c := &Context{rand: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
