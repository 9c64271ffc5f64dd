package timer

// Handler is invoked once per qualifying tick event with the current
// free-running counter value. It runs on the source's event context and
// must be short and non-blocking. Returning false tells the source to
// stop delivering events.
type Handler func(ticks uint16) bool

// Source delivers periodic tick events to a single handler. Arm and
// Disarm are called only from the foreground context; the handler runs
// asynchronously between them. Disarm blocks until no further handler
// invocations are in flight.
type Source interface {
	Arm(handler Handler) error
	Disarm()
}
