package tools

import "errors"

var (
	// ErrUnknownTool indicates a tool name that is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrNoPrefab indicates the add tool was used before a prefab was chosen.
	ErrNoPrefab = errors.New("no prefab selected")
)
