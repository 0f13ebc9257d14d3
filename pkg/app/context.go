package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Strict decoding of Microsoft tags with unknown data layouts
	StrictDecode bool

	// Timeout applied to each device call
	DefaultTimeout time.Duration

	// Destinations for results and diagnostics
	Stdout io.Writer
	Stderr io.Writer
}

// NewContext creates a new application context
func NewContext() *Context {
	return &Context{
		Context:        context.Background(),
		OutputFormat:   "table",
		DefaultTimeout: 30 * time.Second,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
}

// WithTimeout creates a context with timeout
func (c *Context) WithTimeout(timeout time.Duration) (*Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c.Context, timeout)
	newCtx := *c
	newCtx.Context = ctx
	return &newCtx, cancel
}

// WithDefaultTimeout applies DefaultTimeout, or only cancellation when it is
// zero
func (c *Context) WithDefaultTimeout() (*Context, context.CancelFunc) {
	if c.DefaultTimeout <= 0 {
		ctx, cancel := context.WithCancel(c.Context)
		newCtx := *c
		newCtx.Context = ctx
		return &newCtx, cancel
	}
	return c.WithTimeout(c.DefaultTimeout)
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	if !c.Quiet && c.Verbose {
		fmt.Fprintln(c.Stderr, message)
	}
}

// Info outputs a message unless quiet
func (c *Context) Info(message string) {
	if !c.Quiet {
		fmt.Fprintln(c.Stdout, message)
	}
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string) {
	if !c.Quiet {
		fmt.Fprintln(c.Stderr, "Error:", message)
	}
}
