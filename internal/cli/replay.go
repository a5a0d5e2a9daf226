package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/rebind/internal/demo"
	"github.com/dshills/rebind/internal/trace"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Bindings  string
	Format    string
	Retention float64
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <trace-file>",
		Short: "Feed a recorded trace through the remapper",
		Long: `Replay a trace recorded with "rebind run --record" tick by tick and print
the window and controller events each tick produced.

The demo reactions apply during replay: ToggleUI toggles the UI context and
Close ends the replay.

Examples:
  rebind replay session.jsonl
  rebind replay session.jsonl --bindings game.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Bindings, "bindings", "b", "", "bindings file (default: built-in demo bindings)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "bindings format (yaml|toml|lua); default from extension")
	cmd.Flags().Float64Var(&opts.Retention, "retention", 0, "seconds to keep released states (0 keeps them)")

	return cmd
}

func runReplay(opts *ReplayOptions, path string, cmd *cobra.Command) error {
	logger := opts.logger(cmd)

	res, err := loadBindings(opts.Bindings, opts.Format, logger)
	if err != nil {
		return err
	}

	rd, err := trace.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "open trace", err)
	}
	defer rd.Close()

	sess, err := demo.NewSession(res.Contexts, logger, remapOptions(opts.Retention)...)
	if err != nil {
		return WrapExitError(ExitCommandError, "register bindings", err)
	}

	h := rd.Header()
	printf(cmd, "session %s", h.Session)
	if h.Source != "" {
		printf(cmd, " (%s)", h.Source)
	}
	printf(cmd, ", bindings: %s\n", res.Source)

	ticks, emitted := 0, 0
	for !sess.Closed() {
		tick, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "read trace", err)
		}
		ticks++

		out := sess.Tick(tick.Events)
		emitted += len(out)
		printf(cmd, "tick %d (%d raw)\n", tick.Seq, len(tick.Events))
		for _, ev := range out {
			printf(cmd, "  %s\n", ev)
		}
	}

	if sess.Closed() {
		printf(cmd, "closed\n")
	}
	if text := sess.Typed(); text != "" {
		printf(cmd, "typed: %q\n", text)
	}
	printf(cmd, "%d ticks, %d events\n", ticks, emitted)
	return nil
}
