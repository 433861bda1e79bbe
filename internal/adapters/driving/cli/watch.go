package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/render"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
	"github.com/custodia-labs/clipscope/internal/logger"
)

// defaultDropDir selects the drop directory from settings.
const defaultDropDir = "default"

var (
	watchDrop    string
	watchNoPaste bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and a drop directory",
	Long: `Parses every clipboard change as a paste, and every file that lands in
the drop directory as a drop, until interrupted. On exit the history of
parsed results is printed, newest first.

Examples:
  # Watch the clipboard only
  clipscope watch

  # Also watch the configured drop directory
  clipscope watch --drop

  # Watch a specific directory and not the clipboard
  clipscope watch --drop ~/Downloads/inbox --no-paste`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDrop, "drop", "", "also watch a drop directory (default from settings)")
	watchCmd.Flags().Lookup("drop").NoOptDefVal = defaultDropDir
	watchCmd.Flags().BoolVar(&watchNoPaste, "no-paste", false, "do not watch the clipboard")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if listenerService == nil {
		return errors.New("listener service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	onResult := func(r domain.ParseResult) {
		mu.Lock()
		defer mu.Unlock()
		if err := emitResult(cmd, render.Result(r)); err != nil {
			logger.Warn("writing result: %v", err)
		}
	}

	var subs []driving.Subscription
	defer func() {
		for _, sub := range subs {
			sub.Disable()
		}
	}()

	if !watchNoPaste {
		if pasteSource == nil {
			return errors.New("paste source not configured")
		}
		sub, err := listenerService.Enable(ctx, pasteSource(), onResult)
		if err != nil {
			return fmt.Errorf("enabling paste listener: %w", err)
		}
		subs = append(subs, sub)
	}

	if watchDrop != "" {
		dir, err := resolveDropDir(watchDrop)
		if err != nil {
			return err
		}
		if dropSource == nil {
			return errors.New("drop source not configured")
		}
		sub, err := listenerService.Enable(ctx, dropSource(dir), onResult)
		if err != nil {
			return fmt.Errorf("enabling drop listener: %w", err)
		}
		subs = append(subs, sub)
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for dropped files\n", dir)
	}

	if len(subs) == 0 {
		return errors.New("nothing to watch: drop --no-paste or pass --drop")
	}

	err := waitAll(ctx, subs)

	mu.Lock()
	defer mu.Unlock()
	printHistory(cmd)
	return err
}

// waitAll blocks until ctx is done or every listener has stopped, and
// returns the first listener failure.
func waitAll(ctx context.Context, subs []driving.Subscription) error {
	var errs []error
	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return nil
		case <-sub.Done():
			if err := sub.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s listener: %w", sub.Mode(), err))
			}
		}
	}
	return errors.Join(errs...)
}

func resolveDropDir(flag string) (string, error) {
	if flag != defaultDropDir {
		return flag, nil
	}
	if settingsService == nil {
		return "", errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Watch.DropDir == "" {
		return "", errors.New("no drop directory configured: pass --drop DIR")
	}
	return settings.Watch.DropDir, nil
}

func printHistory(cmd *cobra.Command) {
	if historyService == nil {
		return
	}
	views := render.History(historyService.List())
	if f := format(); f != render.FormatText {
		if err := render.Encode(cmd.OutOrStdout(), f, views); err != nil {
			logger.Warn("writing history: %v", err)
		}
		return
	}
	cmd.Println()
	cmd.Println("History")
	cmd.Println("=======")
	render.WriteHistory(cmd.OutOrStdout(), views)
}
