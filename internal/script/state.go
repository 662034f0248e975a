package script

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/logging"
)

// Default limits for a script run.
const (
	DefaultExecutionTimeout = 5 * time.Second
	DefaultInstructionLimit = 1_000_000
)

// State is a sandboxed Lua state bound to one engine.
//
// gopher-lua states are not goroutine-safe; the mutex serialises runs.
type State struct {
	L *lua.LState

	mu sync.Mutex

	e      *engine.Engine
	logger *slog.Logger

	executionTimeout time.Duration
	instructionLimit int64
	instructionCount int64
	limitHit         bool

	closed bool
}

// Option configures a State.
type Option func(*State)

// WithInstructionLimit caps map calls per run. Zero or less disables the cap.
func WithInstructionLimit(limit int64) Option {
	return func(s *State) {
		s.instructionLimit = limit
	}
}

// WithExecutionTimeout bounds every run. Zero disables the timeout.
func WithExecutionTimeout(d time.Duration) Option {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithLogger sets the logger. Lua print writes to it at info level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState creates a sandboxed state with the map module bound to e.
func NewState(e *engine.Engine, opts ...Option) *State {
	s := &State{
		e:                e,
		logger:           logging.NewNop(),
		executionTimeout: DefaultExecutionTimeout,
		instructionLimit: DefaultInstructionLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "script")

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	s.installSandbox()
	s.L.SetGlobal("map", s.L.SetFuncs(s.L.NewTable(), s.mapFuncs()))
	return s
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug and package are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func (s *State) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.luaPrint))
}

func (s *State) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	s.logger.Info("script print", "msg", strings.Join(parts, "\t"))
	return 0
}

// Run executes code. name labels errors and logs.
func (s *State) Run(ctx context.Context, name, code string) error {
	return s.run(ctx, name, func() error { return s.L.DoString(code) })
}

// RunFile executes the Lua file at path.
func (s *State) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	return s.Run(ctx, path, string(code))
}

func (s *State) run(ctx context.Context, name string, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	if s.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.executionTimeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	s.instructionCount = 0
	s.limitHit = false

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script %s: lua panic: %v", name, r)
		}
	}()

	start := time.Now()
	if err := fn(); err != nil {
		s.logger.Debug("script failed", "script", name, "err", err)
		switch {
		case s.limitHit:
			return fmt.Errorf("script %s: %w", name, ErrInstructionLimit)
		case ctx.Err() != nil:
			return fmt.Errorf("script %s: %w", name, ctx.Err())
		}
		return fmt.Errorf("script %s: %w", name, err)
	}
	s.logger.Debug("script done", "script", name, "calls", s.instructionCount, "elapsed", time.Since(start))
	return nil
}

// Global returns a global variable.
func (s *State) Global(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// InstructionCount returns the map calls made by the last run.
func (s *State) InstructionCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instructionCount
}

// Close releases the Lua state. Later runs return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}

// count adds one map call and raises a Lua error past the limit.
func (s *State) count(L *lua.LState) {
	s.instructionCount++
	if s.instructionLimit > 0 && s.instructionCount > s.instructionLimit {
		s.limitHit = true
		L.RaiseError("%s", ErrInstructionLimit.Error())
	}
}
