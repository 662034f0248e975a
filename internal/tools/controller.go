package tools

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/event"
	"github.com/dshills/mapstorm/internal/logging"
)

// Change is the payload published on event.TopicToolChanged.
type Change struct {
	From string
	To   string
}

// Controller tracks the selected map tool.
type Controller struct {
	tools map[string]Tool
	order []string

	selected Tool
	alt      bool

	// Temporal mode state. last is the tool selected before any key was
	// held, prev the one selected before the latest press.
	temporal bool
	held     map[string]bool
	last     string
	prev     string

	prefab    Prefab
	hasPrefab bool

	bus    *event.Bus
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithBus publishes tool changes on bus.
func WithBus(bus *event.Bus) Option {
	return func(c *Controller) {
		c.bus = bus
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a controller with the add, select and delete
// tools registered. The add tool is selected.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		tools:  make(map[string]Tool),
		held:   make(map[string]bool),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "tools")

	c.register(addTool{c: c})
	c.register(selectTool{})
	c.register(deleteTool{})
	c.selected = c.tools[NameAdd]
	return c
}

func (c *Controller) register(t Tool) {
	if _, ok := c.tools[t.Name()]; !ok {
		c.order = append(c.order, t.Name())
	}
	c.tools[t.Name()] = t
}

// Tools returns the tools in panel order.
func (c *Controller) Tools() []Tool {
	out := make([]Tool, len(c.order))
	for i, name := range c.order {
		out[i] = c.tools[name]
	}
	return out
}

// Tool returns a tool by name.
func (c *Controller) Tool(name string) (Tool, bool) {
	t, ok := c.tools[name]
	return t, ok
}

// Selected returns the selected tool.
func (c *Controller) Selected() Tool {
	return c.selected
}

// IsSelected reports whether the named tool is selected.
func (c *Controller) IsSelected(name string) bool {
	return c.selected.Name() == name
}

// SetSelected selects the named tool and publishes the change.
func (c *Controller) SetSelected(name string) error {
	t, ok := c.tools[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if t == c.selected {
		return nil
	}

	from := c.selected.Name()
	c.selected = t
	c.logger.Debug("tool changed", "from", from, "to", name)
	if c.bus != nil {
		c.bus.Publish(event.TopicToolChanged, Change{From: from, To: name})
	}
	return nil
}

// AltBehaviour reports whether the alternative behaviour is held.
func (c *Controller) AltBehaviour() bool {
	return c.alt
}

// SetAltBehaviour sets the alternative behaviour flag.
func (c *Controller) SetAltBehaviour(alt bool) {
	c.alt = alt
}

// BeginTemporal switches to the named tool while its key is held.
// It does nothing if that tool is already selected outside temporal mode.
func (c *Controller) BeginTemporal(name string) error {
	if _, ok := c.tools[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if c.IsSelected(name) {
		if c.temporal {
			c.held[name] = true
		}
		return nil
	}
	if !c.temporal {
		c.last = c.selected.Name()
	}
	c.temporal = true
	c.held[name] = true
	c.prev = c.selected.Name()
	return c.SetSelected(name)
}

// EndTemporal releases the named tool key. The tool selected before that
// press comes back while other keys are still held; once none are, the
// tool from before temporal mode is restored. A tool picked by hand in
// the meantime is kept.
func (c *Controller) EndTemporal(name string) {
	if !c.temporal || !c.held[name] {
		return
	}
	delete(c.held, name)

	if c.prev != "" {
		if c.IsSelected(name) {
			// prev is always registered.
			_ = c.SetSelected(c.prev)
		}
		c.prev = ""
	}
	if len(c.held) > 0 {
		return
	}

	if c.IsSelected(name) {
		_ = c.SetSelected(c.last)
	}
	c.temporal = false
	c.last = ""
}

// InTemporalMode reports whether a tool key is being held.
func (c *Controller) InTemporalMode() bool {
	return c.temporal
}

// Prefab returns the object the add tool places.
func (c *Controller) Prefab() (Prefab, bool) {
	return c.prefab, c.hasPrefab
}

// SetPrefab sets the object the add tool places.
func (c *Controller) SetPrefab(typePath string, vars map[string]string) {
	c.prefab = Prefab{Type: typePath, Vars: maps.Clone(vars)}
	c.hasPrefab = true
}

// Click applies the selected tool at (x, y) with the current alt flag.
func (c *Controller) Click(e *engine.Engine, x, y int) engine.Effect {
	return c.selected.Click(e, x, y, c.alt)
}
