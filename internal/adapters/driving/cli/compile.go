package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driving"
)

var (
	compileAuthor   string
	compileLevel    int
	compileSave     bool
	compilePreamble bool
	compileTags     []string
	compileJSON     bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a document into publication events",
	Long: `Compiles an outline document into a tree of addressable events.

The document is classified first: a document with a title line compiles
to an index event plus its sections; a document with only section
headings compiles to standalone content events (scattered notes); a
document whose body is just "index card" compiles to a single index
event.

Headings deeper than the parse level are not split into their own
events; their markup stays verbatim inside the parent's content.

Use "-" as the file to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileAuthor, "author", "a", "", "publishing author key")
	compileCmd.Flags().IntVarP(&compileLevel, "level", "l", 0, "parse level 2-5 (0 = configured default)")
	compileCmd.Flags().BoolVarP(&compileSave, "save", "s", false, "save compiled events to the local archive")
	compileCmd.Flags().BoolVar(&compilePreamble, "attach-preamble", false, "keep preamble text as index event content")
	compileCmd.Flags().StringArrayVarP(&compileTags, "tag", "t", nil, "extra tag on the index event (key=value, repeatable)")
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "output events as JSON")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	extraTags, err := parseTagFlags(compileTags)
	if err != nil {
		return err
	}

	result, err := publishService.Compile(cmd.Context(), driving.CompileRequest{
		Text:           text,
		AuthorKey:      compileAuthor,
		ParseLevel:     compileLevel,
		ExtraTags:      extraTags,
		AttachPreamble: compilePreamble,
		Save:           compileSave,
	})
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	if compileJSON {
		return outputEventsJSON(cmd, collectEvents(result))
	}

	return outputCompileSummary(cmd, result)
}

// readDocument reads the document text from a file, or stdin for "-".
func readDocument(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// parseTagFlags converts key=value flag strings into tags.
func parseTagFlags(flags []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q: expected key=value", f)
		}
		tags = append(tags, domain.Tag{key, value})
	}
	return tags, nil
}

// collectEvents flattens a compile result into one event list, index first.
func collectEvents(result *driving.CompileResult) []domain.Event {
	events := make([]domain.Event, 0, len(result.Events)+1)
	if result.Index != nil {
		events = append(events, *result.Index)
	}
	return append(events, result.Events...)
}

func outputEventsJSON(cmd *cobra.Command, events []domain.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputCompileSummary(cmd *cobra.Command, result *driving.CompileResult) error {
	events := collectEvents(result)

	cmd.Printf("Compiled %s: %d event(s)\n", result.Class, len(events))
	cmd.Println()
	for i := range events {
		ev := &events[i]
		coord, _ := domain.CoordinateOf(ev)
		title := ev.Title()
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("  [%d] %s\n", i+1, title)
		cmd.Printf("      %s\n", coord)
	}
	cmd.Println()

	for _, coord := range result.Collisions {
		cmd.Printf("Warning: duplicate coordinate %s (colliding sibling titles)\n", coord)
	}

	if result.Saved > 0 {
		cmd.Printf("Saved %d event(s) to the archive.\n", result.Saved)
	}

	return nil
}
