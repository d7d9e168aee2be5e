package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/menu"
	"github.com/dmitrymomot/toastkit/pkg/notice"
	"github.com/dmitrymomot/toastkit/pkg/noticemetrics"
	"github.com/dmitrymomot/toastkit/pkg/requestid"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastweb"
)

var errSchedulerDown = errors.New("toast scheduler is not mounted")

// appConfig holds the process level settings of the serve command.
type appConfig struct {
	Env              string  `env:"APP_ENV" envDefault:"development"`
	Service          string  `env:"SERVICE_NAME" envDefault:"toastkit"`
	SpawnRate        float64 `env:"SPAWN_RATE" envDefault:"10"`
	SpawnBurst       int     `env:"SPAWN_BURST" envDefault:"20"`
	MetricsNamespace string  `env:"METRICS_NAMESPACE" envDefault:"toastkit"`
}

type app struct {
	sched   *toastweb.Scheduler
	handler http.Handler
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve toasts over HTTP",
		Long:  "Start the HTTP server with the toast endpoints, the Datastar stream, Prometheus metrics and health probes. Settings come from the environment (APP_*, HTTP_*, TOAST_*).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			tcfg, err := toast.LoadConfig()
			if err != nil {
				return err
			}
			var hcfg httpserver.Config
			if err := config.Load(&hcfg, config.WithPrefix("HTTP_")); err != nil {
				return err
			}
			if addr != "" {
				hcfg.Addr = addr
			}

			log := logger.New(
				logger.WithEnvironment(cfg.Env, cfg.Service),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)

			a, err := newApp(cfg, tcfg, log)
			if err != nil {
				return err
			}

			srv := httpserver.NewFromConfig(hcfg,
				httpserver.WithLogger(log),
				httpserver.WithStartHook(func(ctx context.Context) error {
					return a.sched.Start(context.WithoutCancel(ctx))
				}),
				httpserver.WithStopHook(func(context.Context) error {
					return a.sched.Stop()
				}),
			)
			return srv.Run(cmd.Context(), a.handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

// newApp wires the scheduler, metrics, menu and routes. The scheduler is
// returned unmounted.
func newApp(cfg appConfig, tcfg toast.Config, log *slog.Logger) (*app, error) {
	sched, err := notice.NewScheduler[toast.Toast, templ.Component](
		toast.NewHTMLRenderer(),
		append(tcfg.Options(), notice.WithLogger(log))...,
	)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	sched.Observe(noticemetrics.Observer[toast.Toast](noticemetrics.New(reg, cfg.MetricsNamespace)))

	nav := menu.New(
		menu.WithLogger(log),
		menu.WithEntries(
			menu.Item("Toasts", "/"),
			menu.Section("Operations", true,
				menu.Link{Text: "Metrics", URL: "/metrics"},
				menu.Link{Text: "Health", URL: "/health/ready"},
			),
		),
	)

	opts := []toastweb.Option{
		toastweb.WithLogger(log),
		toastweb.WithPosition(tcfg.Position),
		toastweb.WithMenu(nav),
	}
	if cfg.SpawnRate > 0 {
		opts = append(opts, toastweb.WithSpawnLimit(rate.Limit(cfg.SpawnRate), cfg.SpawnBurst))
	}
	web, err := toastweb.New(sched, opts...)
	if err != nil {
		return nil, err
	}

	r := web.Router()
	r.Get("/", indexPage(nav, tcfg.Position))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if !sched.Mounted() {
			return errSchedulerDown
		}
		return nil
	}))

	return &app{sched: sched, handler: r}, nil
}

const datastarScript = `<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>`

// indexPage is the demo page: the menu plus a toast container that loads
// its stream on page load.
func indexPage(nav *menu.Menu, pos toast.Position) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
			if _, err := io.WriteString(out, `<!doctype html><html><head><meta charset="utf-8"><title>toastkit</title>`+datastarScript+`</head><body>`); err != nil {
				return err
			}
			if err := nav.Component(menu.DefaultTogglePath).Render(ctx, out); err != nil {
				return err
			}
			if _, err := io.WriteString(out, `<main data-init="@get('/toasts/stream')">`); err != nil {
				return err
			}
			if err := toast.Container(nil, pos).Render(ctx, out); err != nil {
				return err
			}
			_, err := io.WriteString(out, `</main></body></html>`)
			return err
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = page.Render(r.Context(), w)
	}
}
