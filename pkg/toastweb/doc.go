// Package toastweb serves a toast scheduler over HTTP with chi and Datastar.
//
// Pages include the container from GET /toasts and open GET /toasts/stream
// with Datastar; every scheduler snapshot is re-rendered and patched into the
// container. The rendered toasts post back to the close, pause and resume
// endpoints on click and hover. Server code spawns toasts through a
// toast.Manager; clients may also POST JSON to /toasts:
//
//	{"kind": "error", "title": "Upload failed", "body": "Try again", "lifetime_ms": 5000}
//
//	h, err := toastweb.New(sched, toastweb.WithSpawnLimit(rate.Limit(5), 10))
//	if err != nil {
//	    return err
//	}
//	r.Mount("/", h.Router())
package toastweb
