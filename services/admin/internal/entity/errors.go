package entity

import "errors"

var (
	// ErrValidation marks a missing or malformed input field.
	ErrValidation = errors.New("validation failed")

	// ErrUniqueViolation marks a duplicate username or role name.
	ErrUniqueViolation = errors.New("already exists")

	// ErrProtectedRole marks an attempt to rename or delete a built-in role.
	ErrProtectedRole = errors.New("built-in role is protected")

	// ErrNotFound marks a reference to an absent record.
	ErrNotFound = errors.New("not found")

	// ErrAssetPipeline marks a failed avatar pipeline stage. The wrapped
	// error names the stage.
	ErrAssetPipeline = errors.New("avatar pipeline failed")
)
