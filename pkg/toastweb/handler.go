package toastweb

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/starfederation/datastar-go/datastar"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/menu"
	"github.com/dmitrymomot/toastkit/pkg/notice"
	"github.com/dmitrymomot/toastkit/pkg/requestid"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Scheduler is the toast scheduler the handler drives.
type Scheduler = notice.Scheduler[toast.Toast, templ.Component]

// Handler exposes a toast scheduler over HTTP: a JSON endpoint to spawn
// toasts, action endpoints posted by the rendered toasts, the container
// markup and a Datastar stream that keeps the container in sync.
type Handler struct {
	sched    *Scheduler
	manager  toast.Manager
	menu     *menu.Menu
	position toast.Position
	limiter  *rate.Limiter
	validate *validator.Validate
	log      *slog.Logger
}

// New creates a Handler for sched.
func New(sched *Scheduler, opts ...Option) (*Handler, error) {
	if sched == nil {
		return nil, ErrNilScheduler
	}
	h := &Handler{
		sched:    sched,
		manager:  toast.NewManager(sched.Manager()),
		position: toast.PositionBottomRight,
		validate: newValidator(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("toastweb"))
	return h, nil
}

// Router returns the routes, relative to where they are mounted:
//
//	GET  /toasts              container markup
//	POST /toasts              spawn a toast (JSON)
//	GET  /toasts/stream       Datastar SSE stream
//	POST /toasts/{id}/close   close
//	POST /toasts/{id}/pause   pause
//	POST /toasts/{id}/resume  resume
//	GET  /menu                menu markup (WithMenu)
//	POST /menu/toggle         toggle the menu (WithMenu)
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)

	r.Route("/toasts", func(r chi.Router) {
		r.Get("/", h.container)
		r.Post("/", h.spawn)
		r.Get("/stream", h.stream)
		r.Post("/{id}/close", h.action(func(hs notice.Handlers) func() { return hs.OnClose }))
		r.Post("/{id}/pause", h.action(func(hs notice.Handlers) func() { return hs.OnMouseEnter }))
		r.Post("/{id}/resume", h.action(func(hs notice.Handlers) func() { return hs.OnMouseLeave }))
	})

	if h.menu != nil {
		r.Get("/menu", h.menuView)
		r.Post("/menu/toggle", h.menuToggle)
	}
	return r
}

func (h *Handler) container(w http.ResponseWriter, r *http.Request) {
	views, err := h.sched.Render(r.Context())
	if err != nil {
		h.log.LogAttrs(r.Context(), slog.LevelWarn, "some toasts failed to render", logger.Error(err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := toast.Container(views, h.position).Render(r.Context(), w); err != nil {
		h.log.LogAttrs(r.Context(), slog.LevelError, "container write failed", logger.Error(err))
	}
}

func (h *Handler) spawn(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, ErrRateLimited, nil)
		return
	}

	var req SpawnRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrInvalidBody, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, ErrInvalidToast, fieldErrors(err))
		return
	}

	id := h.manager.Spawn(req.Toast())
	if id == "" {
		writeError(w, http.StatusServiceUnavailable, ErrDetached, nil)
		return
	}

	h.log.LogAttrs(r.Context(), slog.LevelDebug, "toast spawned",
		logger.NoticeID(id),
		logger.Kind(toast.ParseKind(req.Kind).String()),
		logger.RequestID(requestid.FromContext(r.Context())),
	)
	writeJSON(w, http.StatusAccepted, SpawnResponse{ID: id})
}

// action answers 204 whether or not the id exists; unknown ids are no-ops.
func (h *Handler) action(pick func(notice.Handlers) func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pick(h.manager.Handlers(chi.URLParam(r, "id")))()
		w.WriteHeader(http.StatusNoContent)
	}
}

// stream patches the inside of the toast container with every snapshot
// until the client disconnects.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sse := datastar.NewSSE(w, r)
	sub := h.sched.Subscribe(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Receive(ctx):
			if !ok {
				return
			}
			views, err := h.sched.RenderCollection(ctx, msg.Data.Items)
			if err != nil {
				h.log.LogAttrs(ctx, slog.LevelWarn, "some toasts failed to render", logger.Error(err))
			}
			if err := sse.PatchElementTempl(toast.List(views),
				datastar.WithSelector("#"+toast.ContainerID),
				datastar.WithMode(datastar.ElementPatchModeInner),
			); err != nil {
				h.log.LogAttrs(ctx, slog.LevelDebug, "stream closed", logger.Error(errors.Join(ErrStreamFailure, err)))
				return
			}
		}
	}
}

func (h *Handler) menuView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.menu.Component(menu.DefaultTogglePath).Render(r.Context(), w); err != nil {
		h.log.LogAttrs(r.Context(), slog.LevelError, "menu write failed", logger.Error(err))
	}
}

func (h *Handler) menuToggle(w http.ResponseWriter, r *http.Request) {
	open := h.menu.Toggle()
	h.log.LogAttrs(r.Context(), slog.LevelDebug, "menu toggled", slog.Bool("open", open))

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(h.menu.Component(menu.DefaultTogglePath)); err != nil {
		h.log.LogAttrs(r.Context(), slog.LevelDebug, "menu patch failed", logger.Error(err))
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error, fields map[string]string) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Fields: fields})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fieldErrors maps json field names to the failed validation tag.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
