package core

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/open-feature/go-sdk/openfeature"
)

type fakeFlags struct {
	value     bool
	err       error
	panicWith any
	calls     atomic.Int32
	lastKey   atomic.Value
}

func (f *fakeFlags) BooleanValue(ctx context.Context, flag string, defaultValue bool, evalCtx openfeature.EvaluationContext, options ...openfeature.Option) (bool, error) {
	f.calls.Add(1)
	f.lastKey.Store(flag)
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.err != nil {
		return defaultValue, f.err
	}
	return f.value, nil
}

var prefixRenderer = RendererFunc(func(text string) string {
	return "COW:" + text
})

const withCowsOn = `
flags:
  with-cows:
    state: ENABLED
    defaultVariant: cows
    variants:
      cows: true
      plain: false
`

const withCowsOff = `
flags:
  with-cows:
    state: ENABLED
    defaultVariant: plain
    variants:
      cows: true
      plain: false
`

func writeFlagFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "flags.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write flags file: %v", err)
	}
	return path
}

func resetFlagProvider(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = openfeature.SetProviderAndWait(openfeature.NoopProvider{})
	})
}
