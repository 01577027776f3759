package cli

import (
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestSayCommand_DefaultsToGreeting(t *testing.T) {
	configPath := writeProject(t, "", "")
	app := newTestApp(SayCommand)

	var runErr error
	output := captureOutput(func() {
		runErr = app.Run([]string{"moo", "say", "--config", configPath})
	})

	if runErr != nil {
		t.Fatalf("expected no error, got: %v", runErr)
	}
	if !strings.Contains(output, "Hello, world!") || !strings.Contains(output, "(oo)") {
		t.Errorf("expected cow greeting, got:\n%s", output)
	}
}

func TestSayCommand_JoinsArguments(t *testing.T) {
	configPath := writeProject(t, "", "")
	app := newTestApp(SayCommand)

	output := captureOutput(func() {
		_ = app.Run([]string{"moo", "say", "--config", configPath, "feature", "flags"})
	})

	if !strings.Contains(output, "feature flags") {
		t.Errorf("expected joined text, got:\n%s", output)
	}
}

func TestSayCommand_UnknownCowFails(t *testing.T) {
	configPath := writeProject(t, "", "")
	app := newTestApp(SayCommand)

	var runErr error
	captureOutput(func() {
		runErr = app.Run([]string{"moo", "say", "--config", configPath, "--cow", "no-such-cow-file"})
	})

	exitErr, ok := runErr.(cli.ExitCoder)
	if !ok {
		t.Fatalf("expected an exit error, got: %v", runErr)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(runErr.Error(), "no-such-cow-file") {
		t.Errorf("expected cow name in error, got %q", runErr.Error())
	}
}
