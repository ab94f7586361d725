package statebox

type (
	// Reducer computes the next state from the current state and an action.
	// The zero value of S stands in for a state that has not been produced
	// yet, so a Reducer must be able to build its default from it
	Reducer[S, A any] func(S, A) S

	// Listener is called after every completed dispatch cycle
	Listener func()

	// Unsubscribe removes the registration that returned it. Calling it more
	// than once is a no-op
	Unsubscribe func()

	// Dispatch delivers an action to a Store
	Dispatch[A any] func(A)

	// Store is the surface shared by a Cell and by the Enhanced store that
	// ApplyMiddleware produces
	Store[S, A any] interface {
		GetState() S
		Dispatch(A)
		Subscribe(Listener) Unsubscribe
		ReplaceReducer(Reducer[S, A])
	}

	// Cell owns one state value, the Reducer that advances it, and the
	// Listeners observing it. It is not safe for concurrent use
	Cell[S, A any] struct {
		state     S
		reducer   Reducer[S, A]
		listeners []*registration
	}

	registration struct {
		listener Listener
		active   bool
	}
)

// NewStore creates a Cell driven by the provided Reducer. The first initial
// value, if any, becomes the starting state; otherwise the zero value of S
func NewStore[S, A any](r Reducer[S, A], initial ...S) *Cell[S, A] {
	c := &Cell[S, A]{reducer: r}
	if len(initial) > 0 {
		c.state = initial[0]
	}
	return c
}

// GetState returns the state produced by the most recent dispatch
func (c *Cell[S, _]) GetState() S {
	return c.state
}

// Dispatch runs the Reducer against the current state, stores the result,
// and then notifies the Listeners that were registered when notification
// began, in registration order. If the Reducer panics, the state is left
// untouched and no Listener is called
func (c *Cell[S, A]) Dispatch(action A) {
	c.state = c.reducer(c.state, action)
	c.notify()
}

// Subscribe registers a Listener. Each call creates a distinct registration,
// even for a Listener that is already subscribed
func (c *Cell[_, _]) Subscribe(l Listener) Unsubscribe {
	reg := &registration{
		listener: l,
		active:   true,
	}
	c.listeners = append(c.listeners, reg)

	return func() {
		if !reg.active {
			return
		}
		reg.active = false
		c.remove(reg)
	}
}

// ReplaceReducer swaps the Reducer used by subsequent dispatches. The current
// state is not recomputed and no Listener is notified
func (c *Cell[S, A]) ReplaceReducer(r Reducer[S, A]) {
	c.reducer = r
}

// Listeners returns the number of live registrations
func (c *Cell[_, _]) Listeners() int {
	return len(c.listeners)
}

func (c *Cell[_, _]) notify() {
	// the registry is copy-on-write, so this slice is a stable snapshot
	regs := c.listeners
	for _, reg := range regs {
		if reg.active {
			reg.listener()
		}
	}
}

func (c *Cell[_, _]) remove(reg *registration) {
	res := make([]*registration, 0, len(c.listeners))
	for _, r := range c.listeners {
		if r != reg {
			res = append(res, r)
		}
	}
	c.listeners = res
}
