package engine

// Effect tells the UI layer what a command changed.
type Effect struct {
	// Refresh means the map view must be redrawn.
	Refresh bool

	// RefreshInstance means the selected instance info may be stale.
	RefreshInstance bool

	// HistoryChanged means undo/redo availability may have changed.
	HistoryChanged bool
}

// None reports whether the effect asks for nothing.
func (f Effect) None() bool {
	return !f.Refresh && !f.RefreshInstance && !f.HistoryChanged
}

// Merge combines two effects.
func (f Effect) Merge(o Effect) Effect {
	return Effect{
		Refresh:         f.Refresh || o.Refresh,
		RefreshInstance: f.RefreshInstance || o.RefreshInstance,
		HistoryChanged:  f.HistoryChanged || o.HistoryChanged,
	}
}
