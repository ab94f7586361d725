package statebox

import "go.uber.org/zap"

// Recoverer returns a Middleware that recovers a panic raised anywhere
// further down the chain, including in the Reducer, and reports it to handle
// as a *PanicError. A recovered Reducer panic leaves the state as it was
// before the dispatch. A nil handle logs through the global zap Logger
func Recoverer[S, A any](handle ErrorHandler) Middleware[S, A] {
	if handle == nil {
		handle = LogErrors(zap.L())
	}
	return MiddlewareFunc[S, A](
		func(_ Store[S, A], next Dispatch[A]) Dispatch[A] {
			return func(action A) {
				defer func() {
					if r := recover(); r != nil {
						handle(&PanicError{
							Value:  r,
							Action: TypeOf(action),
						})
					}
				}()
				next(action)
			}
		},
	)
}

// LogErrors returns an ErrorHandler that logs each error at error level
func LogErrors(log *zap.Logger) ErrorHandler {
	return func(err error) {
		log.Error("Dispatch failed", zap.Error(err))
	}
}
