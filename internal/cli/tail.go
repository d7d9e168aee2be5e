package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/notice"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

const clearScreen = "\033[H\033[2J"

type tailOptions struct {
	kind     string
	lifetime time.Duration
	quantum  time.Duration
	width    int
	redraw   bool
	verbose  bool
}

func newTailCmd() *cobra.Command {
	var opts tailOptions

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show stdin lines as terminal toasts",
		Long: `Read lines from stdin and show each one as a toast until its lifetime runs out.
A line may start with a kind, e.g. "warn: disk almost full" or "error: build failed".
The command exits once stdin is closed and every toast has expired.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", "info", "kind for lines without a kind prefix")
	f.DurationVar(&opts.lifetime, "lifetime", notice.DefaultLifetime, "toast lifetime")
	f.DurationVar(&opts.quantum, "tick", notice.DefaultTickQuantum, "countdown tick")
	f.IntVar(&opts.width, "width", toast.DefaultTerminalWidth, "toast box width")
	f.BoolVar(&opts.redraw, "redraw", false, "clear the screen and redraw on every tick")
	f.BoolVar(&opts.verbose, "verbose", false, "log scheduler events to stderr")
	return cmd
}

func runTail(ctx context.Context, in io.Reader, out, errOut io.Writer, opts tailOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := slog.New(slog.DiscardHandler)
	if opts.verbose {
		log = logger.New(logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug), logger.WithOutput(errOut))
	}

	sched, err := notice.NewScheduler[toast.Toast, string](
		toast.NewTerminalRenderer(opts.width),
		notice.WithTickQuantum(opts.quantum),
		notice.WithDefaultLifetime(opts.lifetime),
		notice.WithLogger(log),
	)
	if err != nil {
		return err
	}
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = sched.Stop() }()

	sub := sched.Subscribe(ctx)
	defer sub.Close()

	var spawned, added atomic.Int64
	sched.Observe(func(tr notice.Transition[toast.Toast]) {
		added.Add(int64(len(tr.Added())))
	})
	// every spawned toast has entered the collection and left it again
	drained := func() bool {
		return added.Load() == spawned.Load() && sched.State().IsEmpty()
	}

	eof := make(chan error, 1)
	go func() {
		m := toast.NewManager(sched.Manager())
		fallback := toast.ParseKind(opts.kind)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if kind, title, ok := parseLine(sc.Text(), fallback); ok {
				if m.Show(kind, title, "") != "" {
					spawned.Add(1)
				}
			}
		}
		eof <- sc.Err()
	}()

	var (
		inputDone bool
		shown     []string
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-eof:
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			inputDone = true
			eof = nil
			if drained() {
				return nil
			}

		case msg, ok := <-sub.Receive(ctx):
			if !ok {
				return nil
			}
			items := msg.Data.Items
			ids := items.IDs()
			if opts.redraw || !slices.Equal(ids, shown) {
				views, err := sched.RenderCollection(ctx, items)
				if err != nil {
					log.LogAttrs(ctx, slog.LevelWarn, "render failed", logger.Error(err))
				}
				if opts.redraw {
					_, _ = io.WriteString(out, clearScreen)
				}
				if len(views) > 0 {
					_, _ = fmt.Fprintln(out, toast.Stack(views))
				}
				shown = ids
			}
			if inputDone && drained() {
				return nil
			}
		}
	}
}

// parseLine splits an optional "kind:" prefix from the text. Blank lines are
// skipped.
func parseLine(line string, fallback toast.Kind) (toast.Kind, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, "", false
	}
	if prefix, rest, found := strings.Cut(line, ":"); found {
		switch strings.ToLower(strings.TrimSpace(prefix)) {
		case "info", "warn", "warning", "error", "err":
			if rest = strings.TrimSpace(rest); rest != "" {
				return toast.ParseKind(prefix), rest, true
			}
		}
	}
	return fallback, line, true
}
