package statebox

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes a Store assembled by Configure. The built-in Middleware it
// enables wrap the dispatch chain outermost first: serialization, recovery,
// logging, metrics, and finally the caller's Middleware
type Config[S, A any] struct {
	Reducer      Reducer[S, A]
	InitialState S
	Middleware   []Middleware[S, A]

	// Logger enables the Logger Middleware when set
	Logger   *zap.Logger
	LogLevel zapcore.Level

	// Metrics enables the Instrument Middleware when set; its collectors
	// are registered under Namespace
	Metrics   prometheus.Registerer
	Namespace string

	// RecoverPanics enables the Recoverer Middleware. OnError receives the
	// recovered panics; when nil they are logged through Logger, or through
	// the global zap Logger if Logger is also nil
	RecoverPanics bool
	OnError       ErrorHandler

	// Serialize enables the Serialize Middleware
	Serialize bool
}

const (
	DefaultNamespace = "statebox"
	DefaultLogLevel  = zapcore.DebugLevel
)

// DefaultConfig returns a Config for the Reducer with every built-in
// Middleware disabled
func DefaultConfig[S, A any](r Reducer[S, A]) Config[S, A] {
	return Config[S, A]{
		Reducer:   r,
		LogLevel:  DefaultLogLevel,
		Namespace: DefaultNamespace,
	}
}

// Validate checks the Config for values Configure cannot work with
func (c Config[_, _]) Validate() error {
	if c.Reducer == nil {
		return ErrNilReducer
	}
	return nil
}

// Configure creates a Store from the Config. When no Middleware is enabled
// the result is a bare *Cell, otherwise an *Enhanced wrapping one
func Configure[S, A any](cfg Config[S, A]) (Store[S, A], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cell := NewStore(cfg.Reducer, cfg.InitialState)
	mws, err := cfg.middleware()
	if err != nil {
		return nil, err
	}
	if len(mws) == 0 {
		return cell, nil
	}
	return ApplyMiddleware[S, A](cell, mws...), nil
}

func (c Config[S, A]) middleware() ([]Middleware[S, A], error) {
	var res []Middleware[S, A]

	if c.Serialize {
		res = append(res, Serialize[S, A]())
	}

	if c.RecoverPanics {
		handle := c.OnError
		if handle == nil && c.Logger != nil {
			handle = LogErrors(c.Logger)
		}
		res = append(res, Recoverer[S, A](handle))
	}

	if c.Logger != nil {
		res = append(res, Logger[S, A](c.Logger, c.LogLevel))
	}

	if c.Metrics != nil {
		m := NewMetrics(c.Namespace)
		if err := m.Register(c.Metrics); err != nil {
			return nil, err
		}
		res = append(res, Instrument[S, A](m))
	}

	return append(res, c.Middleware...), nil
}
