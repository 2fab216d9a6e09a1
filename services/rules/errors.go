package rules

import (
	"errors"
	"strings"
)

// ErrNoRules marks a turf that has no availability document yet. The viewer
// turns this into its call-to-action state instead of an error banner.
var ErrNoRules = errors.New("no rules found for this turf")

// ValidationError carries every user-facing problem found in a submitted
// RulesConfig. The form stays intact for correction; nothing is persisted.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}
