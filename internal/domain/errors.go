package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Table errors
	ErrMsgInvalidLevel     = "tier level out of range"
	ErrMsgInvalidTableSize = "member counts must cover every tier"
	ErrMsgMemberLimit      = "member count exceeds the limit"

	// Projection errors
	ErrMsgInvalidHorizon = "projection horizon out of range"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid compensation config"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Table errors
	ErrInvalidLevel     = errors.New(ErrMsgInvalidLevel)
	ErrInvalidTableSize = errors.New(ErrMsgInvalidTableSize)
	ErrMemberLimit      = errors.New(ErrMsgMemberLimit)

	// Projection errors
	ErrInvalidHorizon = errors.New(ErrMsgInvalidHorizon)

	// Configuration errors
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
