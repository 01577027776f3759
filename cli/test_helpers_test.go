package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/open-feature/go-sdk/openfeature"
	"github.com/urfave/cli/v2"
)

// newTestApp keeps cli.Exit errors from reaching os.Exit so failing
// commands return their error to the test.
func newTestApp(cmds ...*cli.Command) *cli.App {
	return &cli.App{
		Commands: cmds,
		ExitErrHandler: func(c *cli.Context, err error) {
		},
	}
}

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// writeProject lays out a config file and, when flags is not empty, a flags
// file next to it. It returns the config path.
func writeProject(t *testing.T, config, flags string) string {
	t.Helper()
	dir := t.TempDir()

	flagsPath := filepath.Join(dir, "flags.yml")
	if flags != "" {
		if err := os.WriteFile(flagsPath, []byte(flags), 0644); err != nil {
			t.Fatalf("failed to write flags: %v", err)
		}
	}

	configPath := filepath.Join(dir, "moo.config.yml")
	content := "flagsFile: " + flagsPath + "\n" + config
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Cleanup(func() {
		_ = openfeature.SetProviderAndWait(openfeature.NoopProvider{})
	})
	return configPath
}

const cowsOnFlags = `
flags:
  with-cows:
    defaultVariant: cows
    variants:
      cows: true
      plain: false
  beta-banner:
    state: DISABLED
    defaultVariant: shown
    variants:
      shown: true
      hidden: false
`
