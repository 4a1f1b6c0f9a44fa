package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/adapters/driven/config/file"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/adapters/driven/storage/memory"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/services"
)

const testDocument = `= Field Notes
John Doe

== First Section

First body.

== Second Section

Second body.
`

// setupTestServices wires the commands to an in-memory archive and a
// throwaway config store. Returns a cleanup function.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldPublish := publishService
	oldConfig := configStore

	config, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	configStore = config
	publishService = services.NewPublishService(memory.NewEventStore(), config)

	return func() {
		publishService = oldPublish
		configStore = oldConfig
	}
}

// runCommand executes the root command with args, capturing output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears package-level flag values that persist between
// Execute calls.
func resetFlags() {
	verboseFlag = false
	compileAuthor = ""
	compileLevel = 0
	compileSave = false
	compilePreamble = false
	compileTags = nil
	compileJSON = false
	eventsListJSON = false
	eventsResolveAll = false
	outlineLevel = 5
	watchAuthor = ""
	watchLevel = 0
	watchSave = false
}

// writeTestDocument writes the standard test document to a temp file.
func writeTestDocument(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.adoc")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0600))
	return path
}
