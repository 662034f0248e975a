package engine

import (
	"fmt"

	"github.com/dshills/mapstorm/internal/engine/grid"
)

// Command is a typed request from a UI affordance.
type Command interface {
	// Name returns the command name used in logs.
	Name() string
}

// CutCommand cuts the picked area or the focused tile.
type CutCommand struct{ X, Y int }

// CopyCommand copies the picked area or the focused tile.
type CopyCommand struct{ X, Y int }

// PasteCommand pastes the buffer at the focused tile.
type PasteCommand struct{ X, Y int }

// DeleteCommand deletes the picked area or the focused tile.
type DeleteCommand struct{ X, Y int }

// UndoCommand reverts the last edit.
type UndoCommand struct{}

// RedoCommand reapplies the last undone edit.
type RedoCommand struct{}

// DeselectCommand drops the picked area.
type DeselectCommand struct{}

// DeleteTopmostCommand removes the topmost item of Kind from the focused tile.
type DeleteTopmostCommand struct {
	X, Y int
	Kind grid.Kind
}

// DeleteItemCommand removes one item.
type DeleteItemCommand struct{ Item *grid.TileItem }

// ResetItemCommand resets one item to its type defaults.
type ResetItemCommand struct{ Item *grid.TileItem }

func (CutCommand) Name() string           { return "cut" }
func (CopyCommand) Name() string          { return "copy" }
func (PasteCommand) Name() string         { return "paste" }
func (DeleteCommand) Name() string        { return "delete" }
func (UndoCommand) Name() string          { return "undo" }
func (RedoCommand) Name() string          { return "redo" }
func (DeselectCommand) Name() string      { return "deselect" }
func (DeleteTopmostCommand) Name() string { return "delete-topmost" }
func (DeleteItemCommand) Name() string    { return "delete-item" }
func (ResetItemCommand) Name() string     { return "reset-item" }

// Dispatch runs a typed command and returns its effect.
// The error explains a command that could not run; the map is unchanged
// whenever an error is returned.
func (e *Engine) Dispatch(cmd Command) (Effect, error) {
	if err := e.check(cmd); err != nil {
		e.logger.Debug("command rejected", "command", nameOf(cmd), "err", err)
		return Effect{}, err
	}

	switch c := cmd.(type) {
	case CutCommand:
		return e.Cut(c.X, c.Y), nil
	case CopyCommand:
		return e.Copy(c.X, c.Y), nil
	case PasteCommand:
		return e.Paste(c.X, c.Y), nil
	case DeleteCommand:
		return e.Delete(c.X, c.Y), nil
	case UndoCommand:
		return e.Undo(), nil
	case RedoCommand:
		return e.Redo(), nil
	case DeselectCommand:
		return e.Depick(), nil
	case DeleteTopmostCommand:
		return e.DeleteTopmost(c.X, c.Y, c.Kind), nil
	case DeleteItemCommand:
		return e.DeleteItem(c.Item), nil
	case ResetItemCommand:
		return e.ResetItem(c.Item), nil
	}
	return Effect{}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

// check validates the preconditions the UI normally guards with the
// query surface.
func (e *Engine) check(cmd Command) error {
	switch c := cmd.(type) {
	case CutCommand:
		return e.checkFocus(c.X, c.Y)
	case CopyCommand:
		return e.checkFocus(c.X, c.Y)
	case DeleteCommand:
		return e.checkFocus(c.X, c.Y)
	case PasteCommand:
		if !e.HasTileInBuffer() {
			return ErrEmptyBuffer
		}
		if !e.m.InBounds(c.X, c.Y) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
		}
	case UndoCommand:
		if !e.HasUndoActions() {
			return ErrNothingToUndo
		}
	case RedoCommand:
		if !e.HasRedoActions() {
			return ErrNothingToRedo
		}
	case DeleteTopmostCommand:
		tile, ok := e.m.Tile(c.X, c.Y)
		if !ok {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
		}
		if tile.TopmostOf(c.Kind) == nil {
			return fmt.Errorf("%w: no %s at (%d,%d)", ErrNoItem, c.Kind, c.X, c.Y)
		}
	case DeleteItemCommand:
		if _, ok := e.tileOf(c.Item); !ok {
			return ErrItemNotPlaced
		}
	case ResetItemCommand:
		if _, ok := e.tileOf(c.Item); !ok {
			return ErrItemNotPlaced
		}
	}
	return nil
}

// checkFocus accepts any focus while tiles are picked, since the
// picked area takes precedence over the focused tile.
func (e *Engine) checkFocus(x, y int) error {
	if len(e.PickedTiles()) > 0 || e.m.InBounds(x, y) {
		return nil
	}
	return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
}

func nameOf(cmd Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return cmd.Name()
}
