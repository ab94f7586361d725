package statebox

type (
	// Middleware wraps a dispatch stage. Wrap receives the unwrapped Store,
	// for reading state, and the next stage of the chain. The returned
	// Dispatch may call next any number of times, transform the action
	// before forwarding it, or run logic after next returns
	Middleware[S, A any] interface {
		Wrap(store Store[S, A], next Dispatch[A]) Dispatch[A]
	}

	// MiddlewareFunc adapts a function to the Middleware interface
	MiddlewareFunc[S, A any] func(Store[S, A], Dispatch[A]) Dispatch[A]

	// Enhanced is a Store whose dispatch runs through a Middleware chain.
	// All other operations are those of the wrapped Store
	Enhanced[S, A any] struct {
		store    Store[S, A]
		dispatch Dispatch[A]
	}
)

// compile-time checks
var (
	_ Store[any, any] = (*Cell[any, any])(nil)
	_ Store[any, any] = (*Enhanced[any, any])(nil)
)

// Wrap implements Middleware
func (fn MiddlewareFunc[S, A]) Wrap(
	store Store[S, A], next Dispatch[A],
) Dispatch[A] {
	return fn(store, next)
}

// ApplyMiddleware returns a Store whose dispatch is the Middleware chain
// around the Store's own dispatch. The first Middleware is outermost and the
// Store's dispatch is innermost
func ApplyMiddleware[S, A any](
	store Store[S, A], mws ...Middleware[S, A],
) *Enhanced[S, A] {
	return &Enhanced[S, A]{
		store:    store,
		dispatch: chain(store, mws, store.Dispatch),
	}
}

func chain[S, A any](
	store Store[S, A], mws []Middleware[S, A], inner Dispatch[A],
) Dispatch[A] {
	if len(mws) == 0 {
		return inner
	}
	return mws[0].Wrap(store, chain(store, mws[1:], inner))
}

// GetState returns the wrapped Store's state
func (e *Enhanced[S, _]) GetState() S {
	return e.store.GetState()
}

// Dispatch sends the action through the Middleware chain
func (e *Enhanced[_, A]) Dispatch(action A) {
	e.dispatch(action)
}

// Subscribe registers a Listener with the wrapped Store
func (e *Enhanced[_, _]) Subscribe(l Listener) Unsubscribe {
	return e.store.Subscribe(l)
}

// ReplaceReducer swaps the wrapped Store's Reducer
func (e *Enhanced[S, A]) ReplaceReducer(r Reducer[S, A]) {
	e.store.ReplaceReducer(r)
}

// Unwrap returns the Store the Middleware chain was applied to
func (e *Enhanced[S, A]) Unwrap() Store[S, A] {
	return e.store
}
