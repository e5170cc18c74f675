package main

import (
	"errors"

	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

// Exit codes, one per scaffold error kind. Anything unmapped exits 1.
const (
	exitGeneric           = 1
	exitInvalidPath       = 2
	exitDuplicatePath     = 3
	exitAlreadyExists     = 4
	exitUndefinedVariable = 5
	exitIOFailure         = 6
)

func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var invalidPath *stencilerrors.InvalidPathError
	if errors.As(err, &invalidPath) {
		return exitInvalidPath
	}

	var duplicate *stencilerrors.DuplicatePathError
	if errors.As(err, &duplicate) {
		return exitDuplicatePath
	}

	var exists *stencilerrors.AlreadyExistsError
	if errors.As(err, &exists) {
		return exitAlreadyExists
	}

	var undefined *stencilerrors.UndefinedVariableError
	if errors.As(err, &undefined) {
		return exitUndefinedVariable
	}

	var ioErr *stencilerrors.IOError
	if errors.As(err, &ioErr) {
		return exitIOFailure
	}

	return exitGeneric
}
