package wayfind

import "github.com/rs/zerolog"

// options collects the per-call tuning knobs accepted by the engines
// that expose them (Dijkstra, DijkstraAll, DijkstraPartial, AStar). There is no config file or
// env var surface: every knob here is a parameter of a single search
// call, not deployment configuration.
type options struct {
	log zerolog.Logger
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// Option configures an optional behaviour of a search call.
type Option func(*options)

// WithLogger attaches a structured tracer that logs one debug event per
// node settled by the engine. The default is a no-op logger, so tracing
// costs nothing unless requested.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.log = logger }
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
