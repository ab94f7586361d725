package statebox

import "github.com/eapache/queue"

// Serialize returns a Middleware that turns re-entrant dispatches into
// queued ones. An action dispatched through the chain while an earlier
// action is still in flight (from a Listener, say) is held until the
// outer cycle, notification included, has finished, and then runs in FIFO
// order. Dispatches that bypass the chain are not affected.
//
// If a queued cycle panics, the actions still waiting are dropped
func Serialize[S, A any]() Middleware[S, A] {
	return MiddlewareFunc[S, A](
		func(_ Store[S, A], next Dispatch[A]) Dispatch[A] {
			pending := queue.New()
			running := false

			return func(action A) {
				pending.Add(action)
				if running {
					return
				}

				running = true
				defer func() {
					for pending.Length() > 0 {
						pending.Remove()
					}
					running = false
				}()

				for pending.Length() > 0 {
					act, _ := pending.Remove().(A)
					next(act)
				}
			}
		},
	)
}
