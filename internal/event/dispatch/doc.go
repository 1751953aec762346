// Package dispatch runs registered handlers with panic containment.
//
// A dispatch pass calls many handlers in a row. If one of them panics, the
// rest of the pass should still run and the handler list must be restored.
// Executor wraps each call, recovers the panic, reports it through a
// PanicHandler and records timing.
//
// # Usage
//
//	exec := dispatch.NewExecutor(
//	    dispatch.WithPanicHandler(func(event any, err any, stack []byte) {
//	        logger.Error().Interface("panic", err).Bytes("stack", stack).Msg("handler panicked")
//	    }),
//	)
//	list.Fire(func(h KeyFunc) {
//	    exec.Execute(ev, func() { h(ev) })
//	})
//
// With WithRecover(false) panics propagate to the caller; timing is still
// recorded for calls that return normally.
package dispatch
