package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driving"
)

// watchDebounce collects editor write bursts into one recompile.
const watchDebounce = 500 * time.Millisecond

var (
	watchAuthor string
	watchLevel  int
	watchSave   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Recompile a document whenever it changes",
	Long: `Watches a document file and recompiles it on every save, printing the
compile summary each time. Useful while drafting: structure errors and
slug collisions show up as you write.

Stops when the context is cancelled (Ctrl+C).`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchAuthor, "author", "a", "", "publishing author key")
	watchCmd.Flags().IntVarP(&watchLevel, "level", "l", 0, "parse level 2-5 (0 = configured default)")
	watchCmd.Flags().BoolVarP(&watchSave, "save", "s", false, "save compiled events on every change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory, not the file: editors typically replace the
	// file on save, which drops a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	compileOnce := func() {
		if err := recompile(cmd, path); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}

	// Initial compile so the user sees the current state immediately.
	compileOnce()
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, compileOnce)
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("Watch error: %v\n", err)
		}
	}
}

// recompile compiles the watched file once and prints the summary.
func recompile(cmd *cobra.Command, path string) error {
	text, err := readDocument(cmd, path)
	if err != nil {
		return err
	}

	result, err := publishService.Compile(cmd.Context(), driving.CompileRequest{
		Text:       text,
		AuthorKey:  watchAuthor,
		ParseLevel: watchLevel,
		Save:       watchSave,
	})
	if err != nil {
		return err
	}

	cmd.Printf("--- %s ---\n", time.Now().Format(time.TimeOnly))
	return outputCompileSummary(cmd, result)
}
