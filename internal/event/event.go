package event

import "time"

// Topic names a stream of notifications.
type Topic string

// Topics published by the edit core.
const (
	// TopicAll matches every topic when subscribing.
	TopicAll Topic = "*"

	// TopicMapRefresh asks the UI to redraw the map.
	TopicMapRefresh Topic = "map.refresh"

	// TopicInstanceRefresh asks the UI to refresh the selected instance info.
	TopicInstanceRefresh Topic = "instance.refresh"

	// TopicHistoryChanged reports that the undo or redo stack changed.
	TopicHistoryChanged Topic = "history.changed"

	// TopicToolChanged reports that the active map tool changed.
	TopicToolChanged Topic = "tool.changed"
)

// Event is a published notification.
type Event struct {
	Topic   Topic
	Payload any
	Time    time.Time
}

// Handler receives events.
type Handler func(Event)
