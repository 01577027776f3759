package core

import (
	"context"
	"fmt"

	"github.com/open-feature/go-sdk/openfeature"
)

const FlagWithCows = "with-cows"

// FlagEvaluator is the slice of the OpenFeature client the router needs.
// *openfeature.Client satisfies it.
type FlagEvaluator interface {
	BooleanValue(ctx context.Context, flag string, defaultValue bool, evalCtx openfeature.EvaluationContext, options ...openfeature.Option) (bool, error)
}

// EvaluateBoolean resolves a boolean flag and always yields a usable value.
// On any provider failure, including a panic inside the client, it returns
// defaultValue together with an error wrapping ErrFlagEvaluationUnavailable.
func EvaluateBoolean(ctx context.Context, flags FlagEvaluator, key string, defaultValue bool) (decision bool, err error) {
	if flags == nil {
		return defaultValue, fmt.Errorf("%w: %s: no flag client", ErrFlagEvaluationUnavailable, key)
	}

	defer func() {
		if r := recover(); r != nil {
			decision = defaultValue
			err = fmt.Errorf("%w: %s: panic: %v", ErrFlagEvaluationUnavailable, key, r)
		}
	}()

	value, evalErr := flags.BooleanValue(ctx, key, defaultValue, openfeature.EvaluationContext{})
	if evalErr != nil {
		return defaultValue, fmt.Errorf("%w: %s: %v", ErrFlagEvaluationUnavailable, key, evalErr)
	}
	return value, nil
}
