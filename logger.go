package statebox

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger returns a Middleware that logs every dispatch cycle at the given
// level. Each cycle is tagged with a fresh dispatch_id so nested dispatches
// can be told apart. A panic escaping the rest of the chain is logged at
// error level and left to propagate
func Logger[S, A any](log *zap.Logger, lvl zapcore.Level) Middleware[S, A] {
	if log == nil {
		log = zap.NewNop()
	}
	return MiddlewareFunc[S, A](
		func(_ Store[S, A], next Dispatch[A]) Dispatch[A] {
			return func(action A) {
				l := log.With(
					zap.String("dispatch_id", uuid.NewString()),
					zap.String("action", TypeOf(action)),
				)
				l.Log(lvl, "Dispatching action")

				start := time.Now()
				done := false
				defer func() {
					duration := time.Since(start)
					if !done {
						l.Error("Dispatch aborted",
							zap.Duration("duration", duration),
						)
						return
					}
					l.Log(lvl, "Action dispatched",
						zap.Duration("duration", duration),
					)
				}()

				next(action)
				done = true
			}
		},
	)
}
