package cli

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/specxtract/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/specxtract/internal/core/services"
)

// resetFlags restores every flag in the command tree to its default so
// tests do not leak state through the package-level flag variables.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args against an in-memory
// configuration and returns what was written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags(rootCmd)
	if settingsService == nil {
		SetSettingsService(services.NewSettingsService(memory.NewConfigStore()))
		t.Cleanup(func() { settingsService = nil })
	}

	return runRoot(t, args...)
}

// runRoot executes the root command without touching the settings service.
func runRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// withSettings injects an in-memory settings service seeded with values.
func withSettings(t *testing.T, values map[string]string) {
	t.Helper()

	svc := services.NewSettingsService(memory.NewConfigStore())
	for k, v := range values {
		require.NoError(t, svc.Set(k, v))
	}
	previous := settingsService
	SetSettingsService(svc)
	t.Cleanup(func() { settingsService = previous })
}

// writeDOCX writes a minimal Word document whose body has one paragraph
// per line.
func writeDOCX(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	var body bytes.Buffer
	for _, line := range lines {
		body.WriteString("<w:p><w:r><w:t>" + line + "</w:t></w:r></w:p>")
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
