// Package notice is a generic lifecycle engine for short-lived, time-decaying
// notifications such as toasts.
//
// The engine is written once over any record type satisfying Record. It has
// three layers:
//
//   - Reduce is a pure function from (Collection, Action) to the next
//     Collection. Actions are New, Close, Tick, Pause and Continue. Unknown
//     ids are ignored; nothing in the reducer can fail.
//   - Store applies actions one at a time and notifies observers with a
//     Transition holding the previous and next collection.
//   - Scheduler owns a Store while mounted, serializes every dispatch and
//     tick through one event loop goroutine and ages the collection with a
//     single shared timer. The timer is acquired when the collection becomes
//     non-empty and released when it drains or the scheduler unmounts.
//
// UI code never touches state directly. It holds a Manager, a small copyable
// handle whose zero value is a no-op:
//
//	sched, err := notice.NewScheduler[toast.Toast, templ.Component](toast.NewHTMLRenderer(),
//	    notice.WithTickQuantum(100*time.Millisecond),
//	    notice.WithDefaultLifetime(3*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := sched.Start(ctx); err != nil {
//	    return err
//	}
//	defer sched.Stop()
//
//	m := sched.Manager()
//	id := m.Spawn(toast.New(toast.KindInfo, "Saved", "Your changes are live"))
//	m.Pause(id)
//
// Managers travel down a call tree explicitly, as a parameter or through
// WithManager and ManagerFromContext.
//
// Rendering goes through a Renderer supplied by the application. Render hands
// each live record its Handlers (close, pause on mouse enter, resume on mouse
// leave). A failing or panicking renderer skips that record and never affects
// state. Live views subscribe to Snapshot values with Scheduler.Subscribe.
package notice
