package core

import "errors"

var (
	ErrFlagEvaluationUnavailable = errors.New("moo: flag evaluation unavailable")
	ErrInvalidFlagFile           = errors.New("moo: invalid flag file")
)

func IsFlagUnavailableError(err error) bool {
	return errors.Is(err, ErrFlagEvaluationUnavailable)
}
