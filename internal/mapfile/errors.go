package mapfile

import "fmt"

// ParseError represents an error while reading a map document.
type ParseError struct {
	// Path is the file that failed to parse, or "<reader>".
	Path string
	// Tile is the index of the offending entry under tiles, or -1.
	Tile int
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Tile >= 0 {
		return fmt.Sprintf("parse error in %s at tiles[%d]: %s", e.Path, e.Tile, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func tileError(tile int, format string, args ...any) *ParseError {
	return &ParseError{Path: "<reader>", Tile: tile, Message: fmt.Sprintf(format, args...)}
}
