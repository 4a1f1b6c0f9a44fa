package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check document structure without compiling",
	Long: `Runs the pre-flight structure check: a compilable document needs a
"= Title" line or at least one "== Section" heading.

Use "-" as the file to read from stdin. Exits non-zero when the
document would not compile.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	text, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	result := publishService.Validate(cmd.Context(), text)
	if !result.Valid {
		return errors.New(result.Reason)
	}

	cmd.Println("Document is valid.")
	return nil
}
