// package mrtenv holds the state a compiled program keeps about itself:
// its name, its arguments, its exit status and its finalisers.
package mrtenv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"mercurylang.org/mrt/mrterr"
)

type Env struct {
	Progname   string
	Args       []string
	ExitStatus int

	mu         sync.Mutex
	finalisers []Finaliser
}

// Finaliser is run once when the program finishes.
type Finaliser = func(ctx context.Context) error

// New creates an Env from a command line, argv[0] being the program.
func New(argv []string) *Env {
	e := &Env{}
	if len(argv) > 0 {
		e.Progname = filepath.Base(argv[0])
		e.Args = append([]string{}, argv[1:]...)
	}
	return e
}

// RegisterFinaliser adds fn to the end of the finaliser list.
func (e *Env) RegisterFinaliser(fn Finaliser) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finalisers = append(e.finalisers, fn)
}

// RunFinalisers runs every registered finaliser in registration order and
// clears the list.
// A finaliser which fails, or raises a SystemError, does not prevent the
// rest from running. All of the failures are returned together.
func (e *Env) RunFinalisers(ctx context.Context) error {
	e.mu.Lock()
	fs := e.finalisers
	e.finalisers = nil
	e.mu.Unlock()

	var errs []error
	for i, fn := range fs {
		var ferr error
		if rerr := mrterr.Recover(func() { ferr = fn(ctx) }); rerr != nil {
			ferr = rerr
		}
		if ferr != nil {
			logctx.Error(ctx, "finaliser failed", zap.Int("index", i), zap.Error(ferr))
			errs = append(errs, fmt.Errorf("finaliser %d: %w", i, ferr))
			continue
		}
		logctx.Debug(ctx, "ran finaliser", zap.Int("index", i))
	}
	return errors.Join(errs...)
}

// NumFinalisers returns the number of finalisers waiting to run.
func (e *Env) NumFinalisers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.finalisers)
}
