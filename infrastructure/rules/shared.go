// Package rules provides the compatibility rule evaluators that implement
// the ports.Rule interface for the protobuddy compatibility engine.
//
// Each rule inspects one dimension of a (board, component) pairing:
// voltage, current, protocol support, pin budget, library availability,
// or physical fit. Rules are pure and stateless; a component that does
// not declare a requirement (no protocols, no dimensions, no libraries)
// is trivially compatible for that dimension.
package rules

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

// Common errors returned by rule constructors.
var (
	// ErrEmptyRuleName is returned when attempting to create a rule with
	// an empty name.
	ErrEmptyRuleName = errors.New("rule name cannot be empty")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// foldCaser is a package-level Unicode case folder shared by rules doing
// case-insensitive matching. This avoids creating a new caser per call.
var foldCaser = cases.Fold()
