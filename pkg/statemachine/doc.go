// Package statemachine provides a small, thread-safe finite state machine.
//
// States and events are anything with a Name. Transitions are registered
// with functional options and may carry guards, which veto a transition,
// and actions, which run before the state changes and abort it on error.
// Transition hooks observe completed transitions, which is where callers hang
// logging or metrics.
//
//	const (
//	    Idle       = statemachine.StringState("idle")
//	    Running    = statemachine.StringState("running")
//	    Activate   = statemachine.StringEvent("activate")
//	    Deactivate = statemachine.StringEvent("deactivate")
//	)
//
//	sm := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Running, Activate,
//	        statemachine.WithAction(startTicker),
//	    ),
//	    statemachine.WithTransition(Running, Idle, Deactivate,
//	        statemachine.WithAction(stopTicker),
//	    ),
//	    statemachine.WithTransitionHook(logTransition),
//	)
//
//	if sm.CanFire(ctx, Activate, nil) {
//	    _ = sm.Fire(ctx, Activate, nil)
//	}
//
// Fire reports a missing transition with ErrNoTransitionAvailable and a guard
// veto with ErrTransitionRejected; use IsNoTransitionAvailableError and
// IsTransitionRejectedError to tell them apart.
package statemachine
