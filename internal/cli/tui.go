package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/coordinator"
	"github.com/tessro/dialogcoach/internal/roster"
	"github.com/tessro/dialogcoach/internal/tui"
	"github.com/tessro/dialogcoach/internal/watch"
)

var tuiWatch bool
var tuiCoach string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal user interface",
	Long:  "Launch the interactive roster screen. With --watch, edits to the roster file are picked up live.",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}
	coach, err := resolveCoach(d, tuiCoach)
	if err != nil {
		return err
	}

	opts := tui.Options{Store: coordinator.NewStore(d, augmenter(), coach.ID)}

	if tuiWatch {
		path := rosterFile()
		if path == "" {
			return fmt.Errorf("--watch needs a roster file (--roster or roster in the config)")
		}
		w, reloads, errs, err := startWatcher(path)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Reloads = reloads
		opts.ReloadErrors = errs
	}

	return tui.Run(opts)
}

// startWatcher watches path and forwards results on the returned channels.
// Sends never block the watcher; a result the TUI has not consumed yet is
// replaced by the newer one.
func startWatcher(path string) (*watch.Watcher, <-chan *roster.Dataset, <-chan error, error) {
	reloads := make(chan *roster.Dataset, 1)
	errs := make(chan error, 1)

	w, err := watch.New(path,
		func(d *roster.Dataset) { sendLatest(reloads, d) },
		func(err error) { sendLatest(errs, err) },
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("watch roster: %w", err)
	}
	w.Start()
	slog.Info("cli: watching roster", "path", w.Path())
	return w, reloads, errs, nil
}

// sendLatest puts v on a one-slot channel, dropping a stale value.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload the roster file when it changes")
	tuiCmd.Flags().StringVar(&tuiCoach, "coach", "", "coach to show first")
	rootCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload the roster file when it changes")
	rootCmd.Flags().StringVar(&tuiCoach, "coach", "", "coach to show first")
	rootCmd.AddCommand(tuiCmd)
}
