package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/rebind/internal/adapter/term"
	"github.com/dshills/rebind/internal/config"
	"github.com/dshills/rebind/internal/config/bindings"
	"github.com/dshills/rebind/internal/demo"
	"github.com/dshills/rebind/internal/input/raw"
	"github.com/dshills/rebind/internal/input/remap"
	"github.com/dshills/rebind/internal/logging"
	"github.com/dshills/rebind/internal/trace"
)

// tickInterval is how often buffered input is handed to the remapper.
const tickInterval = 16 * time.Millisecond

// maxLog is the number of emitted events kept on screen.
const maxLog = 12

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Config   string
	Bindings string
	Record   string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive terminal demo",
		Long: `Run the demo game in the terminal. Keys, mouse and resize events are
remapped through the configured bindings and the emitted events are shown
live.

Tab toggles the UI layer, Escape closes it (or quits from the game layer),
Ctrl+C always quits. With --record the raw input is written to a trace that
"rebind replay" can play back.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "configuration file (TOML)")
	cmd.Flags().StringVarP(&opts.Bindings, "bindings", "b", "", "bindings file, overrides the configuration")
	cmd.Flags().StringVar(&opts.Record, "record", "", "write raw input to this trace file")

	return cmd
}

func remapOptions(retention float64) []remap.Option {
	return []remap.Option{remap.WithStateRetention(retention)}
}

// loadRunConfig reads the configuration and applies flag overrides.
func loadRunConfig(opts *RunOptions) (config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "load config", err)
	}
	if opts.Bindings != "" {
		cfg.Bindings.Path = opts.Bindings
	}
	return cfg, nil
}

func runRun(opts *RunOptions, cmd *cobra.Command) error {
	cfg, err := loadRunConfig(opts)
	if err != nil {
		return err
	}

	// The screen owns stderr while running, so logs default to discard
	// unless a file is configured.
	logCfg := opts.apply(cfg.Logging())
	if logCfg.Output == "stderr" || logCfg.Output == "stdout" {
		logCfg.Output = os.DevNull
	}
	logger, closer, err := logging.New(logCfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "open log", err)
	}
	defer closer.Close()

	res, err := loadBindings(cfg.Bindings.Path, cfg.Bindings.Format, logger)
	if err != nil {
		return err
	}

	var rec *trace.Recorder
	if opts.Record != "" {
		rec, err = trace.Create(opts.Record, "rebind run")
		if err != nil {
			return WrapExitError(ExitCommandError, "record", err)
		}
		defer rec.Close()
		logger.Info("recording", "path", opts.Record, "session", rec.Header().Session)
	}

	var reloads <-chan bindings.Reload[demo.Action, demo.ContextID]
	if cfg.Bindings.Watch && cfg.Bindings.Path != "" {
		f, err := bindingsFormat(cfg.Bindings.Path, cfg.Bindings.Format)
		if err != nil {
			return err
		}
		w, err := newLoader(logger).Watch(cfg.Bindings.Path, f, cfg.Bindings.Debounce())
		if err != nil {
			return WrapExitError(ExitCommandError, "watch bindings", err)
		}
		defer w.Close()
		reloads = w.Reloads()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return WrapExitError(ExitCommandError, "create terminal", err)
	}
	if err := screen.Init(); err != nil {
		return WrapExitError(ExitCommandError, "init terminal", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	width, height := screen.Size()
	ropts := append(remapOptions(cfg.State.Retention), remap.WithWindowSize(float64(width), float64(height)))
	sess, err := demo.NewSession(res.Contexts, logger, ropts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "register bindings", err)
	}

	l := &loop{
		screen:  screen,
		adapter: term.New(width, height),
		sess:    sess,
		rec:     rec,
		reloads: reloads,
		logger:  logger,
		source:  res.Source,
	}
	return l.run()
}

// loop is the interactive demo: it polls the terminal, batches converted
// events per tick and redraws after each tick.
type loop struct {
	screen  tcell.Screen
	adapter *term.Adapter
	sess    *demo.Session
	rec     *trace.Recorder
	reloads <-chan bindings.Reload[demo.Action, demo.ContextID]
	logger  *slog.Logger
	source  string

	batch  []raw.Event
	log    []string
	status string
}

func (l *loop) run() error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	l.draw()
	for !l.sess.Closed() {
		select {
		case ev, ok := <-events:
			if !ok {
				l.batch = append(l.batch, l.adapter.Close()...)
				events = nil
				continue
			}
			if k, isKey := ev.(*tcell.EventKey); isKey && k.Key() == tcell.KeyCtrlC {
				l.batch = append(l.batch, l.adapter.Close()...)
				continue
			}
			l.batch = append(l.batch, l.adapter.Convert(ev)...)

		case r, ok := <-l.reloads:
			if !ok {
				l.reloads = nil
				continue
			}
			l.applyReload(r)

		case <-ticker.C:
			if err := l.tick(); err != nil {
				return err
			}
		}
	}
	return l.tick()
}

func (l *loop) tick() error {
	batch := append(l.batch, l.adapter.Expire()...)
	l.batch = nil
	if len(batch) == 0 {
		return nil
	}

	if l.rec != nil {
		if err := l.rec.Record(batch); err != nil {
			return WrapExitError(ExitCommandError, "record", err)
		}
	}

	for _, ev := range l.sess.Tick(batch) {
		l.log = append(l.log, ev.String())
	}
	if n := len(l.log); n > maxLog {
		l.log = l.log[n-maxLog:]
	}
	l.draw()
	return nil
}

func (l *loop) applyReload(r bindings.Reload[demo.Action, demo.ContextID]) {
	switch {
	case r.Err != nil:
		l.status = "reload failed: " + r.Err.Error()
	default:
		if err := l.sess.Reload(r.Contexts); err != nil {
			l.status = "reload rejected: " + err.Error()
			break
		}
		l.status = fmt.Sprintf("reloaded %d contexts", len(r.Contexts))
		if len(r.Diagnostics) > 0 {
			l.status += fmt.Sprintf(", %d dropped", len(r.Diagnostics))
		}
	}
	l.logger.Info("bindings reload", "status", l.status)
	l.draw()
}

func (l *loop) draw() {
	l.screen.Clear()

	bold := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)

	y := 0
	line := func(style tcell.Style, format string, args ...any) {
		drawText(l.screen, 0, y, style, fmt.Sprintf(format, args...))
		y++
	}

	line(bold, "rebind demo  (Tab: UI layer, Esc: close, Ctrl+C: quit)")
	line(dim, "bindings: %s", l.source)

	var active []string
	for _, c := range l.sess.Remapper().ActiveContexts() {
		active = append(active, fmt.Sprintf("%v@%d", c.ID, c.Priority))
	}
	line(tcell.StyleDefault, "contexts: %s", strings.Join(active, " > "))

	var held []string
	for _, a := range l.sess.Held() {
		held = append(held, a.String())
	}
	line(tcell.StyleDefault, "held:     %s", strings.Join(held, ", "))
	line(tcell.StyleDefault, "text:     %s", l.sess.Typed())
	if l.status != "" {
		line(dim, "%s", l.status)
	}
	y++

	for _, s := range l.log {
		line(tcell.StyleDefault, "%s", s)
	}
	l.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
