package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

var (
	eventsListJSON   bool
	eventsResolveAll bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the local event archive",
	Long: `Commands for the local archive of compiled events. The archive keeps
every version; use "events resolve" to see which version of each
coordinate is current.`,
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored event versions",
	RunE:  runEventsList,
}

var eventsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a stored event by draft ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsGet,
}

var eventsResolveCmd = &cobra.Command{
	Use:   "resolve [coordinate]",
	Short: "Resolve the current version of a coordinate",
	Long: `Resolves which stored version of a coordinate is current. The most
recently created version wins; a version without a creation time loses
to any that has one.

The coordinate format is kind:pubkey:slug, e.g.
30041:author1:my-book-introduction.

With --all, resolves every coordinate in the archive instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEventsResolve,
}

func init() {
	eventsListCmd.Flags().BoolVar(&eventsListJSON, "json", false, "output events as JSON")
	eventsResolveCmd.Flags().BoolVar(&eventsResolveAll, "all", false, "resolve every coordinate in the archive")
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsGetCmd)
	eventsCmd.AddCommand(eventsResolveCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsList(cmd *cobra.Command, _ []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	events, err := publishService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	if eventsListJSON {
		return outputEventsJSON(cmd, events)
	}

	if len(events) == 0 {
		cmd.Println("The archive is empty.")
		return nil
	}

	cmd.Printf("%d stored version(s):\n\n", len(events))
	for i := range events {
		printEventLine(cmd, &events[i])
	}
	return nil
}

func runEventsGet(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	ev, err := publishService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting event %s: %w", args[0], err)
	}

	return outputEventsJSON(cmd, []domain.Event{*ev})
}

func runEventsResolve(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	if eventsResolveAll {
		if len(args) > 0 {
			return errors.New("--all does not take a coordinate")
		}

		events, err := publishService.ResolveAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("resolving archive: %w", err)
		}

		cmd.Printf("%d coordinate(s):\n\n", len(events))
		for i := range events {
			printEventLine(cmd, &events[i])
		}
		return nil
	}

	if len(args) == 0 {
		return errors.New("coordinate required (or use --all)")
	}

	coord, err := domain.ParseCoordinate(args[0])
	if err != nil {
		return err
	}

	ev, err := publishService.Resolve(cmd.Context(), coord)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", coord, err)
	}

	return outputEventsJSON(cmd, []domain.Event{*ev})
}

// printEventLine prints a one-line archive summary for an event.
func printEventLine(cmd *cobra.Command, ev *domain.Event) {
	coord, _ := domain.CoordinateOf(ev)
	title := ev.Title()
	if title == "" {
		title = "(untitled)"
	}
	cmd.Printf("  %s  created_at=%d  %s\n", coord, ev.CreatedAt, title)
	cmd.Printf("    id: %s\n", ev.ID)
}
