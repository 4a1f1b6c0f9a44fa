package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/asciidoc"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
)

var outlineLevel int

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Show a document's section hierarchy",
	Long: `Prints the section tree of a document without compiling it, with the
slug each section would receive. Useful for previewing how a document
will split before publishing.

Use "-" as the file to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().IntVarP(&outlineLevel, "level", "l", 5, "deepest heading level to show (2-5)")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	meta, body := asciidoc.Extract(text)
	docSlug := domain.NormalizeSlug(meta.Title)
	if meta.Title != "" {
		cmd.Printf("= %s  (%s)\n", meta.Title, docSlug)
	}

	printSections(cmd, asciidoc.Outline(body, outlineLevel), docSlug, 1)
	return nil
}

// printSections prints a section tree with markers and derived slugs.
func printSections(cmd *cobra.Command, sections []domain.Section, parentSlug string, depth int) {
	for _, sec := range sections {
		slug := domain.JoinSlug(parentSlug, domain.NormalizeSlug(sec.Title))
		indent := strings.Repeat("  ", depth)
		marker := strings.Repeat("=", sec.Level)
		cmd.Printf("%s%s %s  (%s)\n", indent, marker, sec.Title, slug)
		printSections(cmd, sec.Children, slug, depth+1)
	}
}
