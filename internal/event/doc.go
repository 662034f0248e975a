// Package event provides the notification bus between the edit core and
// the user interface.
//
// The core publishes fire-and-forget notifications after a mutating
// command; the UI subscribes to the topics it renders:
//
//	bus := event.NewBus()
//	bus.Subscribe(event.TopicMapRefresh, func(e event.Event) {
//	    redraw()
//	})
//
// Delivery is synchronous: Publish runs every matching handler on the
// calling goroutine, in subscription order, before it returns. A handler
// that panics is recovered and logged so one broken listener cannot take
// down the session.
//
// Subscribing to TopicAll receives every event.
package event
