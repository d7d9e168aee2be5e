// Package toast provides the concrete toast notification built on the notice
// engine, together with HTML and terminal renderers.
//
// A Toast carries a Kind (info, warning or error), a title, a body and
// optional extra CSS classes. Its lifetime comes from WithLifetime or from
// the scheduler default. While the countdown runs the toast reports Closing
// once ClosingWindow has passed, which renderers use for exit styling.
//
//	sched, err := notice.NewScheduler[toast.Toast, templ.Component](toast.NewHTMLRenderer(), cfg.Options()...)
//	if err != nil {
//	    return err
//	}
//	_ = sched.Start(ctx)
//
//	m := toast.NewManager(sched.Manager())
//	m.Error("Upload failed", "The file is larger than 10MB", toast.WithLifetime(5*time.Second))
//
// HTMLRenderer emits templ components whose Datastar attributes post to
// /toasts/{id}/close, /pause and /resume; Container wraps them in the
// positioned container. TerminalRenderer draws lipgloss boxes with a
// progress bar. Config loads TOAST_* variables.
package toast
