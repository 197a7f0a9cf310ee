package wayfind

// traceSettle logs a single node-settle event through the options'
// logger. Called from the engines' pop loop; a no-op when tracing is
// disabled since zerolog.Nop() discards the event before formatting it.
func traceSettle[N any, C any](o options, node N, cost C, parentIdx int) {
	o.log.Debug().
		Interface("node", node).
		Interface("cost", cost).
		Int("parent_idx", parentIdx).
		Msg("settle")
}
