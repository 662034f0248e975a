package engine

import "errors"

// Errors returned by Dispatch. The command methods themselves never fail;
// these let a UI layer log why a command did nothing.
var (
	// ErrOutOfBounds indicates the focused tile is outside the map.
	ErrOutOfBounds = errors.New("tile out of bounds")

	// ErrUnknownCommand indicates Dispatch got a command type it does not handle.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrEmptyBuffer indicates a paste with nothing copied.
	ErrEmptyBuffer = errors.New("nothing to paste")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrItemNotPlaced indicates an item command on an item that is not on the map.
	ErrItemNotPlaced = errors.New("item is not on the map")

	// ErrNoItem indicates there is no item of the requested kind on the tile.
	ErrNoItem = errors.New("no item on tile")
)
